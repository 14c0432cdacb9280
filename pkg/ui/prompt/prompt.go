// Package prompt implements the interactive conflict decider used by the
// ask policy. Answers are read line by line from an injected reader so
// tests can script responses; the real CLI wires it to stdin after
// verifying stdin is a terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	decorerr "github.com/arthur-debert/decorate/pkg/errors"
	"github.com/arthur-debert/decorate/pkg/types"
)

// ConsoleDecider asks the user what to do with one conflicting file at a
// time. Unrecognized answers re-prompt; there is no remember-for-all.
type ConsoleDecider struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a ConsoleDecider reading answers from in and writing prompts
// to out.
func New(in io.Reader, out io.Writer) *ConsoleDecider {
	return &ConsoleDecider{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// NewStdin creates a ConsoleDecider bound to the process stdin/stdout.
// It fails when stdin is not a terminal, since the ask policy would
// otherwise block forever in a pipeline.
func NewStdin() (*ConsoleDecider, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return nil, decorerr.New(decorerr.ErrInvalidInput,
			"the ask policy needs an interactive terminal; use --on-exists=fail, skip or replace instead")
	}
	return New(os.Stdin, os.Stdout), nil
}

// Decide implements types.ConflictDecider.
func (d *ConsoleDecider) Decide(prompt types.ConflictPrompt) (types.Resolution, error) {
	question, executeChoices, invalid := wording(prompt.Mode)

	for {
		fmt.Fprintf(d.out, "File %s exists. %s ", prompt.Path, question)

		line, err := d.in.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("failed to read user input: %w", err)
		}
		answer := strings.ToLower(strings.TrimSpace(line))

		switch {
		case contains(executeChoices, answer):
			return types.ResolutionReplace, nil
		case answer == "s" || answer == "skip":
			return types.ResolutionSkip, nil
		case answer == "f" || answer == "fail":
			return types.ResolutionFail, nil
		}

		fmt.Fprintf(d.out, "Invalid input. %s\n", invalid)
	}
}

// wording selects the prompt vocabulary: create-mode conflicts offer
// replace, delete-mode conflicts offer delete.
func wording(mode types.Mode) (question string, executeChoices []string, invalid string) {
	if mode == types.ModeDelete {
		return "Do you want to delete (d), skip (s), or fail (f)?",
			[]string{"d", "delete"},
			"Please enter 'd' (delete), 's' (skip), or 'f' (fail)."
	}
	return "Do you want to replace (r), skip (s), or fail (f)?",
		[]string{"r", "replace"},
		"Please enter 'r' (replace), 's' (skip), or 'f' (fail)."
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
