// Package report prints per-file status lines for a decorate run.
//
// The reporter owns the output vocabulary of the tool ("Symlink created:
// ...", "Skipping file: ...") so the decorator stays free of formatting
// concerns. Color is applied only when writing to a terminal and can be
// disabled explicitly.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Reporter writes status lines to a single output stream.
type Reporter struct {
	out      io.Writer
	useColor bool
}

// New creates a Reporter writing to out. Color is enabled only when out is
// a terminal and noColor is false; NO_COLOR is honored via the color
// package's global detection.
func New(out io.Writer, noColor bool) *Reporter {
	return &Reporter{
		out:      out,
		useColor: !noColor && isTerminal(out) && !color.NoColor,
	}
}

// isTerminal reports whether the writer is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *Reporter) printf(c *color.Color, format string, args ...interface{}) {
	if r.useColor && c != nil {
		_, _ = c.Fprintf(r.out, format+"\n", args...)
		return
	}
	_, _ = fmt.Fprintf(r.out, format+"\n", args...)
}

// Info prints an uncolored informational line.
func (r *Reporter) Info(format string, args ...interface{}) {
	r.printf(nil, format, args...)
}

// Created reports a newly placed symlink.
func (r *Reporter) Created(linkValue, dest string) {
	r.printf(color.New(color.FgGreen), "Symlink created: %s -> %s", linkValue, dest)
}

// DirCreated reports a newly created destination directory.
func (r *Reporter) DirCreated(path string) {
	r.printf(nil, "Created directory: %s", path)
}

// Removed reports the removal of an existing destination entry.
func (r *Reporter) Removed(path string) {
	r.printf(color.New(color.FgYellow), "Removed existing file: %s", path)
}

// Skipped reports a file left untouched.
func (r *Reporter) Skipped(path string) {
	r.printf(color.New(color.FgYellow), "Skipping file: %s", path)
}

// Conflict reports a destination entry that already exists.
func (r *Reporter) Conflict(path string) {
	r.printf(color.New(color.FgRed), "File already exists: %s", path)
}

// Error reports a per-file failure.
func (r *Reporter) Error(format string, args ...interface{}) {
	r.printf(color.New(color.FgRed), format, args...)
}

// Success reports overall completion.
func (r *Reporter) Success(format string, args ...interface{}) {
	r.printf(color.New(color.FgGreen), format, args...)
}

// Failure reports that the run stopped before completion.
func (r *Reporter) Failure(format string, args ...interface{}) {
	r.printf(color.New(color.FgRed), format, args...)
}
