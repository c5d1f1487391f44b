package command

import (
	"slices"
	"strings"
	"testing"

	"github.com/richhaase/grib/internal/state"

	"github.com/google/go-cmp/cmp"
)

func TestParseCLI(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want CLIArgs
	}{
		{
			name: "empty",
			args: nil,
			want: CLIArgs{Forward: []string{}},
		},
		{
			name: "force new",
			args: []string{"--new", "--publish"},
			want: CLIArgs{ForceNew: true, Forward: []string{"--publish"}},
		},
		{
			name: "parent with equals",
			args: []string{"--parent=feature-a", "--publish"},
			want: CLIArgs{Parent: "feature-a", Forward: []string{"--publish"}},
		},
		{
			name: "parent with space",
			args: []string{"--debug", "--parent", "release/1.2"},
			want: CLIArgs{Parent: "release/1.2", Forward: []string{"--debug"}},
		},
		{
			name: "quoted parent",
			args: []string{`--parent="dan-something"`},
			want: CLIArgs{Parent: "dan-something", Forward: []string{}},
		},
		{
			name: "single quoted parent",
			args: []string{"--parent", "'base_branch'"},
			want: CLIArgs{Parent: "base_branch", Forward: []string{}},
		},
		{
			name: "malformed parent is dropped",
			args: []string{"--parent=a@b", "-d"},
			want: CLIArgs{Forward: []string{"-d"}},
		},
		{
			name: "dangling parent is dropped",
			args: []string{"--parent"},
			want: CLIArgs{Forward: []string{}},
		},
		{
			name: "parent followed by a flag",
			args: []string{"--parent", "--debug"},
			want: CLIArgs{Forward: []string{"--debug"}},
		},
		{
			name: "repeated parent last wins",
			args: []string{"--parent=a", "--parent", "b"},
			want: CLIArgs{Parent: "b", Forward: []string{}},
		},
		{
			name: "malformed repeat keeps earlier value",
			args: []string{"--parent=a", "--parent=b@c"},
			want: CLIArgs{Parent: "a", Forward: []string{}},
		},
		{
			name: "parent text inside another argument",
			args: []string{"--summary=rework --parent handling"},
			want: CLIArgs{Forward: []string{"--summary=rework --parent handling"}},
		},
		{
			name: "new and parent together",
			args: []string{"--parent=main", "--new", "-d"},
			want: CLIArgs{ForceNew: true, Parent: "main", Forward: []string{"-d"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseCLI(tc.args)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ParseCLI(%q) mismatch (-want +got):\n%s", tc.args, diff)
			}
		})
	}
}

func TestParseCLI_SingleParentReachesTool(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantParent string
	}{
		{"malformed override keeps stored", []string{"--parent=feat@x"}, "main"},
		{"repeated override", []string{"--parent=a", "--parent=b"}, "b"},
		{"space form", []string{"--parent", "dev", "--debug"}, "dev"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cli := ParseCLI(tc.args)
			st := &state.BranchState{Parent: "main"}
			plan, err := Build(Input{
				Branch:         "b",
				State:          st,
				Options:        defaultOptions(),
				ParentOverride: cli.Parent,
				Forward:        cli.Forward,
			})
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}

			var parents []string
			for _, arg := range plan.Args {
				if arg == "--parent" || strings.HasPrefix(arg, "--parent=") {
					parents = append(parents, arg)
				}
			}
			want := []string{"--parent=" + tc.wantParent}
			if !slices.Equal(parents, want) {
				t.Errorf("parent args = %q, want %q (all args %q)", parents, want, plan.Args)
			}
			if st.Parent != tc.wantParent {
				t.Errorf("stored parent = %q, want %q", st.Parent, tc.wantParent)
			}
		})
	}
}
