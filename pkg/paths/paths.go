package paths

import (
	"path/filepath"
	"strings"
)

// Rule is a literal substring rewrite applied to destination paths.
// An empty Search makes the rule a no-op.
type Rule struct {
	Search  string
	Replace string
}

// IsZero reports whether the rule does nothing.
func (r Rule) IsZero() bool {
	return r.Search == ""
}

// Apply rewrites all occurrences of Search in path with Replace. The
// replacement is literal, not a pattern.
func (r Rule) Apply(path string) string {
	if r.IsZero() {
		return path
	}
	return strings.ReplaceAll(path, r.Search, r.Replace)
}

// ComputeTarget maps a source file to its destination path: the rewrite is
// applied to the full source path, the result is taken relative to
// sourceRoot and joined onto destRoot.
//
// A rewrite may introduce ".." segments that escape destRoot. The result
// is used verbatim in that case; this is the intended escape hatch for
// transformations such as mapping a "..git" sibling into a ".git" path.
func ComputeTarget(sourceFile, sourceRoot, destRoot string, rule Rule) (string, error) {
	rewritten := rule.Apply(sourceFile)

	rel, err := filepath.Rel(sourceRoot, rewritten)
	if err != nil {
		return "", err
	}
	return filepath.Join(destRoot, rel), nil
}

// ComputeLinkValue returns the path stored in the symlink at destFile.
// With relative=false it is the absolute source path. With relative=true
// it is the source path expressed relative to the link's own directory,
// so the link resolves regardless of the reader's working directory.
func ComputeLinkValue(sourceFile, destFile string, relative bool) (string, error) {
	if !relative {
		return filepath.Abs(sourceFile)
	}

	absSource, err := filepath.Abs(sourceFile)
	if err != nil {
		return "", err
	}
	absDestDir, err := filepath.Abs(filepath.Dir(destFile))
	if err != nil {
		return "", err
	}
	return filepath.Rel(absDestDir, absSource)
}

// RelativeToCwd re-expresses path relative to the given working directory.
// Used only for display when the user asked for relative paths.
func RelativeToCwd(path, cwd string) string {
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}
	return rel
}
