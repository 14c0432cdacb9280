// Package paths implements the destination-path mapping for decorate.
//
// It contains the pure path arithmetic of a run:
//
//   - Rule: a literal search/replace rewrite applied only when deriving
//     the destination path, never to the source path itself
//   - ComputeTarget: source file -> destination file mapping
//   - ComputeLinkValue: the value stored inside the symlink, either the
//     absolute source path or a path relative to the link's own directory
//
// Nothing in this package touches the filesystem; all functions operate
// on path strings so they can be tested without any setup.
package paths
