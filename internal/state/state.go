// Package state holds the per-repository grib document: review state for
// every branch plus the options shared by all branches.
package state

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// DefaultCommand is the review-posting command used when none is configured.
const DefaultCommand = "post-review"

// GribData is the persisted document, one per repository.
type GribData struct {
	Branches map[string]*BranchState `yaml:"branches"`
	Options  GlobalOptions           `yaml:"options"`
}

// BranchState is the review state of a single branch.
type BranchState struct {
	// ReviewNumber is nil until a review has been created for the branch.
	ReviewNumber *int           `yaml:"r,omitempty"`
	Parent       string         `yaml:"parent,omitempty"`
	PostReview   map[string]any `yaml:"post_review,omitempty"`
}

// GlobalOptions apply to every branch in the repository.
type GlobalOptions struct {
	OpenBrowser  *bool          `yaml:"open_browser"`
	TargetPeople []string       `yaml:"target_people"`
	TargetGroups []string       `yaml:"target_groups"`
	Misc         string         `yaml:"misc"`
	Command      string         `yaml:"command"`
	PostReview   map[string]any `yaml:"post_review"`
}

// New returns an empty document with default options.
func New() *GribData {
	d := &GribData{}
	d.ApplyDefaults()
	return d
}

// ApplyDefaults fills every unset option so the saved file lists them all.
func (d *GribData) ApplyDefaults() {
	if d.Branches == nil {
		d.Branches = make(map[string]*BranchState)
	}
	o := &d.Options
	if o.OpenBrowser == nil {
		enabled := true
		o.OpenBrowser = &enabled
	}
	if o.TargetPeople == nil {
		o.TargetPeople = []string{}
	}
	if o.TargetGroups == nil {
		o.TargetGroups = []string{}
	}
	if o.Command == "" {
		o.Command = DefaultCommand
	}
	if o.PostReview == nil {
		o.PostReview = map[string]any{}
	}
}

// Validate reports the first structural problem in the document.
func (d *GribData) Validate() error {
	for _, name := range d.BranchNames() {
		b := d.Branches[name]
		if b != nil && b.ReviewNumber != nil && *b.ReviewNumber <= 0 {
			return fmt.Errorf("branch %q: review number must be positive, got %d", name, *b.ReviewNumber)
		}
	}
	return nil
}

// Branch returns the state for name, inserting an empty entry if the branch
// has none yet. Changes to the result are saved with the document.
func (d *GribData) Branch(name string) *BranchState {
	if d.Branches == nil {
		d.Branches = make(map[string]*BranchState)
	}
	b := d.Branches[name]
	if b == nil {
		b = &BranchState{}
		d.Branches[name] = b
	}
	return b
}

// BranchNames returns the tracked branch names in sorted order.
func (d *GribData) BranchNames() []string {
	var names []string
	for name := range d.Branches {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// HasReview reports whether a review has been created for the branch.
func (b *BranchState) HasReview() bool {
	return b.ReviewNumber != nil
}

// SetReviewNumber records the review number for the branch.
func (b *BranchState) SetReviewNumber(n int) {
	b.ReviewNumber = &n
}

// UnmarshalYAML accepts the shorthand "branch: 100" for a branch whose only
// state is its review number.
func (b *BranchState) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var n int
		if err := value.Decode(&n); err != nil {
			return fmt.Errorf("invalid review number %q: %w", value.Value, err)
		}
		b.ReviewNumber = &n
		return nil
	}
	type plain BranchState
	return value.Decode((*plain)(b))
}

// OpenBrowserEnabled reports whether the review tool should open a browser.
func (o *GlobalOptions) OpenBrowserEnabled() bool {
	return o.OpenBrowser == nil || *o.OpenBrowser
}
