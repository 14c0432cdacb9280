package main

// Short messages (one-liners)
const (
	MsgRootShort = "Replicate a directory tree as symlinks"

	MsgRootLong = `decorate replicates the hierarchy of files from a source directory as
symlinks in a destination directory, preserving the original directory
structure. It can optionally replace occurrences of a search string with a
replace string when constructing destination paths, allowing
transformations such as mapping a ..git sibling into a .git path.

Arguments:
  source_root       - The root directory of the source repo
  destination_root  - The root directory of the destination repo
  search_string     - (optional) The string to search for in the file paths
  replace_string    - (optional) The string to replace search_string with

Empty directories are never replicated; only files are symlinked. Existing
entries in the destination that are not part of the source set are left
untouched.`

	MsgRootExample = `  decorate /path/to/X /path/to/Y ..git .git --relative --mode=create --on-exists=ask`

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRelative = "Create relative symlinks (default is absolute symlinks)"
	MsgFlagMode     = "Mode: 'create' or 'delete'"
	MsgFlagOnExists = "Action when a destination entry already exists: 'ask', 'fail', 'skip', 'replace' (alias 'execute')"
	MsgFlagNoColor  = "Disable colored output"

	// Status messages
	MsgComplete   = "Decorating process complete!"
	MsgIncomplete = "Operation failed! Decorating process incomplete!"

	MsgCompletionShort = "Generate shell completion script"
)
