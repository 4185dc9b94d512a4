// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package process

import "fmt"

// Action is what happened to a file.
type Action int

const (
	Unchanged Action = iota
	Inserted
	Updated
	Removed
	Skipped
	Errored
)

var actionNames = [...]string{
	Unchanged: "unchanged",
	Inserted:  "inserted",
	Updated:   "updated",
	Removed:   "removed",
	Skipped:   "skipped",
	Errored:   "errored",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Reason explains why a file was skipped.
type Reason string

const (
	UnsupportedType Reason = "unsupported-type"
	Blocklisted     Reason = "blocklisted"
	Excluded        Reason = "excluded"
	TooLarge        Reason = "too-large"
	HasBOM          Reason = "has-bom"
	NotDecodable    Reason = "not-decodable"
	UnsafePlacement Reason = "unsafe-placement"
)

// Outcome is the result of processing one file. Every processed path gets
// exactly one.
type Outcome struct {
	Path   string
	Action Action
	// Reason is set for Skipped outcomes.
	Reason Reason
	// Err is set for Errored outcomes.
	Err error
	// DryRun is set when the change was computed but not written.
	DryRun bool
}

// Changed reports whether the file was, or in a dry run would have been,
// modified.
func (o Outcome) Changed() bool {
	switch o.Action {
	case Inserted, Updated, Removed:
		return true
	}
	return false
}

// String returns the diagnostic line for o.
func (o Outcome) String() string {
	if o.DryRun && o.Changed() {
		if o.Action == Removed {
			return "Header would be removed: " + o.Path
		}
		return "Missing or incorrect header: " + o.Path
	}
	switch o.Action {
	case Unchanged:
		return "Unchanged: " + o.Path
	case Inserted:
		return "Added header: " + o.Path
	case Updated:
		return "Updated header: " + o.Path
	case Removed:
		return "Removed header: " + o.Path
	case Skipped:
		return fmt.Sprintf("Skipped (%s): %s", o.Reason, o.Path)
	case Errored:
		return fmt.Sprintf("Error: %s: %v", o.Path, o.Err)
	}
	return fmt.Sprintf("%v: %s", o.Action, o.Path)
}

func skipped(path string, r Reason) Outcome {
	return Outcome{Path: path, Action: Skipped, Reason: r}
}

func errored(path string, err error) Outcome {
	return Outcome{Path: path, Action: Errored, Err: err}
}
