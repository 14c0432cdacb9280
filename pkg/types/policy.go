package types

import (
	"fmt"
	"strings"
)

// Mode selects what a run does with each discovered file.
type Mode string

const (
	// ModeCreate replicates the source hierarchy as symlinks.
	ModeCreate Mode = "create"
	// ModeDelete removes previously created links instead of creating them.
	ModeDelete Mode = "delete"
)

// ValidModes lists the accepted --mode values, in display order.
var ValidModes = []Mode{ModeCreate, ModeDelete}

// ParseMode validates a --mode value.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range ValidModes {
		if m == valid {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid mode %q (valid values: %s)", s, joinModes())
}

func joinModes() string {
	parts := make([]string, len(ValidModes))
	for i, m := range ValidModes {
		parts[i] = string(m)
	}
	return strings.Join(parts, ", ")
}

// Policy governs what happens when the computed destination path already
// has an entry (file, directory, or symlink — broken symlinks included).
type Policy string

const (
	// PolicyAsk prompts interactively, once per conflicting file.
	PolicyAsk Policy = "ask"
	// PolicyFail aborts the whole run at the first conflict.
	PolicyFail Policy = "fail"
	// PolicySkip leaves the existing entry untouched and moves on.
	PolicySkip Policy = "skip"
	// PolicyReplace removes the existing entry and proceeds.
	PolicyReplace Policy = "replace"
)

// ValidPolicies lists the accepted --on-exists values, in display order.
var ValidPolicies = []Policy{PolicyAsk, PolicyFail, PolicySkip, PolicyReplace}

// ParsePolicy validates an --on-exists value. "execute" is accepted as a
// synonym for "replace" for compatibility with earlier releases.
func ParsePolicy(s string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(s)))
	if p == "execute" {
		return PolicyReplace, nil
	}
	for _, valid := range ValidPolicies {
		if p == valid {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid value for --on-exists: %q (valid values: %s, execute)", s, joinPolicies())
}

func joinPolicies() string {
	parts := make([]string, len(ValidPolicies))
	for i, p := range ValidPolicies {
		parts[i] = string(p)
	}
	return strings.Join(parts, ", ")
}

// Resolution is the outcome chosen for a single conflicting file.
type Resolution string

const (
	// ResolutionReplace removes the existing entry so the run can proceed
	// with it. In delete mode this is the "delete" answer.
	ResolutionReplace Resolution = "replace"
	// ResolutionSkip leaves the entry alone.
	ResolutionSkip Resolution = "skip"
	// ResolutionFail aborts the run.
	ResolutionFail Resolution = "fail"
)

// ConflictPrompt describes one conflict for a ConflictDecider.
type ConflictPrompt struct {
	// Path is the destination entry that already exists.
	Path string
	// Mode is the run mode, which changes the wording of interactive
	// prompts (replace vs. delete).
	Mode Mode
}

// ConflictDecider resolves conflicts under the ask policy. Implementations
// may block (console prompt) or answer deterministically (tests).
type ConflictDecider interface {
	Decide(prompt ConflictPrompt) (Resolution, error)
}

// DeciderFunc adapts a function to the ConflictDecider interface.
type DeciderFunc func(prompt ConflictPrompt) (Resolution, error)

// Decide implements ConflictDecider.
func (f DeciderFunc) Decide(prompt ConflictPrompt) (Resolution, error) {
	return f(prompt)
}
