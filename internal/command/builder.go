// Package command assembles the review tool's argument list for one run.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/richhaase/grib/internal/state"
)

// ErrNoBranch is returned when the current branch is unknown.
var ErrNoBranch = errors.New("current branch is required")

// Mode says whether a run creates a review or updates one.
type Mode int

const (
	// ModeNew asks the review tool to create a new review.
	ModeNew Mode = iota
	// ModeUpdate adds a diff to the branch's existing review.
	ModeUpdate
)

func (m Mode) String() string {
	if m == ModeUpdate {
		return "update"
	}
	return "new"
}

// Input is everything the builder merges into one argument list.
type Input struct {
	Branch  string
	State   *state.BranchState
	Options *state.GlobalOptions

	// ForceNew creates a new review even if the branch already has one.
	ForceNew bool
	// ParentOverride replaces the stored parent branch when non-empty.
	ParentOverride string

	// Extra holds rendered review-tool options, appended after the targets.
	Extra []string
	// Forward holds command-line arguments passed through untouched.
	Forward []string
}

// Plan is the outcome of Build.
type Plan struct {
	Args []string
	Mode Mode
	// ReviewNumber is the review being updated; zero for ModeNew.
	ReviewNumber int
}

// Build produces the ordered argument list. It stores a resolved parent
// branch back into in.State.
func Build(in Input) (Plan, error) {
	if in.Branch == "" {
		return Plan{}, ErrNoBranch
	}
	if in.State == nil {
		in.State = &state.BranchState{}
	}
	if in.Options == nil {
		in.Options = &state.GlobalOptions{}
	}

	var p Plan
	p.Args = append(p.Args, "--branch="+in.Branch)

	if in.ForceNew || !in.State.HasReview() {
		p.Mode = ModeNew
		p.Args = append(p.Args, "--guess-fields")
	} else {
		p.Mode = ModeUpdate
		p.ReviewNumber = *in.State.ReviewNumber
		p.Args = append(p.Args, "--diff-only", fmt.Sprintf("-r%d", p.ReviewNumber))
	}

	parent := in.State.Parent
	if in.ParentOverride != "" {
		parent = in.ParentOverride
	}
	if parent != "" {
		in.State.Parent = parent
		p.Args = append(p.Args, "--parent="+parent)
	}

	if in.Options.OpenBrowserEnabled() {
		p.Args = append(p.Args, "-o")
	}
	if len(in.Options.TargetPeople) > 0 {
		p.Args = append(p.Args, "--target_people="+strings.Join(in.Options.TargetPeople, ","))
	}
	if len(in.Options.TargetGroups) > 0 {
		p.Args = append(p.Args, "--target_groups="+strings.Join(in.Options.TargetGroups, ","))
	}

	p.Args = append(p.Args, in.Extra...)
	p.Args = append(p.Args, SplitWords(in.Options.Misc)...)
	p.Args = append(p.Args, in.Forward...)

	return p, nil
}

// SplitWords splits s with shell quoting rules. A string that cannot be
// split is returned as a single word.
func SplitWords(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	words, err := shellwords.Parse(s)
	if err != nil {
		return []string{s}
	}
	return words
}
