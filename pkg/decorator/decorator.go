package decorator

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"

	decorerr "github.com/arthur-debert/decorate/pkg/errors"
	"github.com/arthur-debert/decorate/pkg/logging"
	"github.com/arthur-debert/decorate/pkg/paths"
	"github.com/arthur-debert/decorate/pkg/types"
	"github.com/arthur-debert/decorate/pkg/ui/report"
)

// Options configures a single run.
type Options struct {
	SourceRoot string
	DestRoot   string
	Rule       paths.Rule
	// Relative selects relative link values and relative path display.
	Relative bool
	Mode     types.Mode
	Policy   types.Policy
	// Decider resolves conflicts under the ask policy. Required when
	// Policy is PolicyAsk, ignored otherwise.
	Decider types.ConflictDecider
	// Cwd is the working directory used to re-express roots for display
	// when Relative is set. Display only; discovery always uses absolute
	// paths.
	Cwd string
}

// Result summarizes a run.
type Result struct {
	Created  int
	Replaced int
	Deleted  int
	Skipped  int
	Errors   int
	// FailedAt is the destination path at which a fatal conflict stopped
	// the run, empty on normal completion.
	FailedAt string
}

// Decorator walks a source tree and materializes the link decisions.
type Decorator struct {
	fs       types.FS
	reporter *report.Reporter
	logger   zerolog.Logger
}

// New creates a Decorator using the given filesystem and reporter.
func New(filesystem types.FS, reporter *report.Reporter) *Decorator {
	return &Decorator{
		fs:       filesystem,
		reporter: reporter,
		logger:   logging.GetLogger("decorator"),
	}
}

// Run validates the options, walks the source tree and performs the
// configured mutations. A non-nil error is fatal for the run; per-file
// filesystem failures are reported, counted in Result.Errors and do not
// stop the walk.
func (d *Decorator) Run(opts Options) (*Result, error) {
	if err := d.validate(&opts); err != nil {
		return nil, err
	}

	sourceRoot, err := filepath.Abs(opts.SourceRoot)
	if err != nil {
		return nil, decorerr.Wrap(err, decorerr.ErrSourceRoot, "cannot resolve source root")
	}
	destRoot, err := filepath.Abs(opts.DestRoot)
	if err != nil {
		return nil, decorerr.Wrap(err, decorerr.ErrDestRoot, "cannot resolve destination root")
	}

	d.announceRoots(sourceRoot, destRoot, opts)

	res := &Result{}
	walkErr := d.walk(sourceRoot, sourceRoot, destRoot, opts, res)

	d.logger.Debug().
		Int("created", res.Created).
		Int("replaced", res.Replaced).
		Int("deleted", res.Deleted).
		Int("skipped", res.Skipped).
		Int("errors", res.Errors).
		Str("failedAt", res.FailedAt).
		Msg("Run finished")

	return res, walkErr
}

// validate fails fast on unusable options before any mutation. Mode and
// policy are normalized in place ("execute" becomes "replace").
func (d *Decorator) validate(opts *Options) error {
	mode, err := types.ParseMode(string(opts.Mode))
	if err != nil {
		return decorerr.Wrap(err, decorerr.ErrInvalidInput, "invalid mode")
	}
	opts.Mode = mode

	policy, err := types.ParsePolicy(string(opts.Policy))
	if err != nil {
		return decorerr.Wrap(err, decorerr.ErrInvalidInput, "invalid conflict policy")
	}
	opts.Policy = policy
	if opts.Policy == types.PolicyAsk && opts.Decider == nil {
		return decorerr.New(decorerr.ErrInvalidInput, "ask policy requires a conflict decider")
	}

	if err := d.requireDir(opts.SourceRoot); err != nil {
		return decorerr.Wrapf(err, decorerr.ErrSourceRoot, "source root %s", opts.SourceRoot)
	}
	if err := d.requireDir(opts.DestRoot); err != nil {
		return decorerr.Wrapf(err, decorerr.ErrDestRoot, "destination root %s", opts.DestRoot)
	}
	return nil
}

func (d *Decorator) requireDir(path string) error {
	info, err := d.fs.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errors.New("not a directory")
	}
	return nil
}

// announceRoots prints the roots in use. With Relative set they are shown
// relative to the working directory, matching how link values will read.
func (d *Decorator) announceRoots(sourceRoot, destRoot string, opts Options) {
	displaySource, displayDest := sourceRoot, destRoot
	if opts.Relative && opts.Cwd != "" {
		displaySource = paths.RelativeToCwd(sourceRoot, opts.Cwd)
		displayDest = paths.RelativeToCwd(destRoot, opts.Cwd)
		d.reporter.Info("Using relative paths for source and destination.")
	} else {
		d.reporter.Info("Using absolute paths for source and destination.")
	}
	d.reporter.Info("Using source root: %s", displaySource)
	d.reporter.Info("Using destination root: %s", displayDest)
}

// walk recurses through dir, processing every regular file. Directory read
// failures are reported and skipped; only a fatal conflict stops the walk.
func (d *Decorator) walk(dir, sourceRoot, destRoot string, opts Options, res *Result) error {
	entries, err := d.fs.ReadDir(dir)
	if err != nil {
		d.reporter.Error("Error reading directory %s: %v", dir, err)
		res.Errors++
		return nil
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		switch {
		case entry.IsDir():
			if err := d.walk(path, sourceRoot, destRoot, opts, res); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			if err := d.processFile(path, sourceRoot, destRoot, opts, res); err != nil {
				return err
			}
		default:
			// Symlinks and other non-regular entries are never linked.
			d.logger.Debug().Str("path", path).Msg("Skipping non-regular entry")
		}
	}
	return nil
}

// processFile runs one file through the per-file state machine. The
// returned error is non-nil only for a fatal conflict.
func (d *Decorator) processFile(sourceFile, sourceRoot, destRoot string, opts Options, res *Result) error {
	destFile, err := paths.ComputeTarget(sourceFile, sourceRoot, destRoot, opts.Rule)
	if err != nil {
		d.reporter.Error("Error computing destination for %s: %v", sourceFile, err)
		res.Errors++
		return nil
	}

	if !d.ensureDir(filepath.Dir(destFile), res) {
		return nil
	}

	exists, err := d.entryExists(destFile)
	if err != nil {
		d.reporter.Error("Error inspecting %s: %v", destFile, err)
		res.Errors++
		return nil
	}

	if exists {
		resolution, err := d.resolveConflict(destFile, opts)
		if err != nil {
			return err
		}
		switch resolution {
		case types.ResolutionFail:
			res.FailedAt = destFile
			d.reporter.Conflict(destFile)
			return decorerr.New(decorerr.ErrConflict, "destination entry already exists").
				WithDetail("path", destFile)
		case types.ResolutionSkip:
			d.reporter.Skipped(destFile)
			res.Skipped++
			return nil
		case types.ResolutionReplace:
			if err := d.fs.Remove(destFile); err != nil {
				d.reporter.Error("Error removing file %s: %v", destFile, err)
				res.Errors++
				return nil
			}
			d.reporter.Removed(destFile)
			if opts.Mode == types.ModeDelete {
				res.Deleted++
			} else {
				res.Replaced++
			}
		}
	} else if opts.Mode == types.ModeDelete {
		d.logger.Debug().Str("path", destFile).Msg("Nothing to delete")
		return nil
	}

	if opts.Mode == types.ModeCreate {
		d.createLink(sourceFile, destFile, opts, res)
	}
	return nil
}

// ensureDir creates the destination directory when missing. Failure is
// non-fatal: the file is reported and skipped, and the walk continues.
func (d *Decorator) ensureDir(dir string, res *Result) bool {
	if _, err := d.fs.Stat(dir); err == nil {
		return true
	}
	if err := d.fs.MkdirAll(dir, 0755); err != nil {
		d.reporter.Error("Error creating directory %s: %v", dir, err)
		res.Errors++
		return false
	}
	d.reporter.DirCreated(dir)
	return true
}

// entryExists reports whether anything occupies path, including a broken
// symlink, which Stat alone would miss.
func (d *Decorator) entryExists(path string) (bool, error) {
	_, err := d.fs.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// resolveConflict maps the configured policy to a per-file resolution,
// consulting the decider for the ask policy.
func (d *Decorator) resolveConflict(destFile string, opts Options) (types.Resolution, error) {
	switch opts.Policy {
	case types.PolicyFail:
		return types.ResolutionFail, nil
	case types.PolicySkip:
		return types.ResolutionSkip, nil
	case types.PolicyReplace:
		return types.ResolutionReplace, nil
	case types.PolicyAsk:
		resolution, err := opts.Decider.Decide(types.ConflictPrompt{Path: destFile, Mode: opts.Mode})
		if err != nil {
			return "", decorerr.Wrap(err, decorerr.ErrInternal, "reading conflict decision")
		}
		return resolution, nil
	}
	return "", decorerr.Newf(decorerr.ErrInvalidInput, "unhandled policy %q", opts.Policy)
}

// createLink computes the link value and places the symlink.
func (d *Decorator) createLink(sourceFile, destFile string, opts Options, res *Result) {
	linkValue, err := paths.ComputeLinkValue(sourceFile, destFile, opts.Relative)
	if err != nil {
		d.reporter.Error("Error computing link target for %s: %v", destFile, err)
		res.Errors++
		return
	}
	if err := d.fs.Symlink(linkValue, destFile); err != nil {
		d.reporter.Error("Error creating symlink: %v", err)
		res.Errors++
		return
	}
	d.reporter.Created(linkValue, destFile)
	res.Created++
}
