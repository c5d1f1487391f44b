package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/richhaase/grib/internal/config"
	"github.com/richhaase/grib/internal/state"
	"github.com/richhaase/grib/internal/terminal"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle   = lipgloss.NewStyle().Bold(true)
)

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, headingStyle.Render(title))
}

func field(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-14s", label+":")), valueStyle.Render(value))
}

func listValue(v []string) string {
	if len(v) == 0 {
		return "(none)"
	}
	return strings.Join(v, ", ")
}

func orNone(v string) string {
	if v == "" {
		return "(none)"
	}
	return v
}

// renderConfig prints the options and per-branch entries of a state
// document along with the review-tool arguments they produce.
func renderConfig(w io.Writer, path string, data *state.GribData) {
	heading(w, "Options")
	field(w, "file", path)
	field(w, "command", data.Options.Command)
	field(w, "open_browser", fmt.Sprintf("%t", data.Options.OpenBrowserEnabled()))
	field(w, "target_people", listValue(data.Options.TargetPeople))
	field(w, "target_groups", listValue(data.Options.TargetGroups))
	field(w, "misc", orNone(data.Options.Misc))
	field(w, "post_review", listValue(storeArgs("options.post_review", data.Options.PostReview)))

	fmt.Fprintln(w)
	heading(w, "Branches")
	names := data.BranchNames()
	if len(names) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, name := range names {
		bs := data.Branches[name]
		review := "(new)"
		parent := ""
		var post map[string]any
		if bs != nil {
			if bs.HasReview() {
				review = fmt.Sprintf("#%d", *bs.ReviewNumber)
			}
			parent = bs.Parent
			post = bs.PostReview
		}
		fmt.Fprintf(w, "  %s\n", valueStyle.Render(name))
		field(w, "  review", review)
		field(w, "  parent", orNone(parent))
		if len(post) > 0 {
			field(w, "  post_review", listValue(storeArgs("branches."+name+".post_review", post)))
		}
	}
}

// storeArgs renders a post_review block without reporting problems with it;
// config validate is where those are surfaced.
func storeArgs(name string, values map[string]any) []string {
	s, err := config.New(name, values, terminal.Nop())
	if err != nil {
		return []string{"(invalid)"}
	}
	return s.Args()
}
