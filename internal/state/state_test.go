package state

import (
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	d := New()

	if len(d.Branches) != 0 {
		t.Errorf("expected no branches, got %v", d.Branches)
	}
	if !d.Options.OpenBrowserEnabled() {
		t.Error("expected open_browser to default to true")
	}
	if d.Options.TargetPeople == nil || len(d.Options.TargetPeople) != 0 {
		t.Errorf("expected empty target_people, got %#v", d.Options.TargetPeople)
	}
	if d.Options.TargetGroups == nil || len(d.Options.TargetGroups) != 0 {
		t.Errorf("expected empty target_groups, got %#v", d.Options.TargetGroups)
	}
	if d.Options.Misc != "" {
		t.Errorf("expected empty misc, got %q", d.Options.Misc)
	}
	if d.Options.Command != DefaultCommand {
		t.Errorf("Command = %q, want %q", d.Options.Command, DefaultCommand)
	}
}

func TestApplyDefaults_KeepsExplicitFalse(t *testing.T) {
	disabled := false
	d := &GribData{Options: GlobalOptions{OpenBrowser: &disabled, Misc: "--debug"}}

	d.ApplyDefaults()

	if d.Options.OpenBrowserEnabled() {
		t.Error("explicit open_browser: false must survive defaults")
	}
	if d.Options.Misc != "--debug" {
		t.Errorf("Misc = %q, want --debug", d.Options.Misc)
	}
}

func TestBranch_LazilyCreates(t *testing.T) {
	d := New()

	b := d.Branch("feature-x")
	if b == nil {
		t.Fatal("expected branch state")
	}
	if b.HasReview() {
		t.Error("new branch state must not have a review")
	}

	b.SetReviewNumber(42)
	b.Parent = "main"

	again := d.Branch("feature-x")
	if again != b {
		t.Error("expected the same branch state on second access")
	}
	if got := d.Branches["feature-x"]; got.ReviewNumber == nil || *got.ReviewNumber != 42 || got.Parent != "main" {
		t.Errorf("mutation not visible in document: %+v", got)
	}
}

func TestBranch_NilEntryReplaced(t *testing.T) {
	d := &GribData{Branches: map[string]*BranchState{"stale": nil}}

	if b := d.Branch("stale"); b == nil {
		t.Fatal("expected branch state for nil entry")
	}
	if d.Branches["stale"] == nil {
		t.Error("expected nil entry to be replaced")
	}
}

func TestValidate(t *testing.T) {
	zero, negative, ok := 0, -3, 7

	tests := []struct {
		name    string
		review  *int
		wantErr bool
	}{
		{"absent", nil, false},
		{"positive", &ok, false},
		{"zero", &zero, true},
		{"negative", &negative, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := &GribData{Branches: map[string]*BranchState{"b": {ReviewNumber: tc.review}}}
			err := d.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %t", err, tc.wantErr)
			}
		})
	}
}

func TestBranchNames_Sorted(t *testing.T) {
	d := New()
	d.Branch("zeta")
	d.Branch("alpha")
	d.Branch("mid")

	got := d.BranchNames()
	want := []string{"alpha", "mid", "zeta"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("BranchNames() = %v, want %v", got, want)
		}
	}
}
