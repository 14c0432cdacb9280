// Package decorator implements the tree walk and link decisions of a
// decorate run.
//
// A Decorator walks every regular file under the source root, maps it to a
// destination path through pkg/paths, ensures the destination directory
// exists, resolves conflicts with any pre-existing destination entry per
// the configured policy, and performs the symlink or removal. The walk is
// strictly sequential; each file is visited exactly once.
//
// All filesystem access goes through types.FS and all conflict questions
// through types.ConflictDecider, so runs are fully testable without a
// terminal.
package decorator
