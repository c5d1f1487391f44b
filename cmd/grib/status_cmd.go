package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/richhaase/grib/internal/command"
	"github.com/richhaase/grib/internal/git"
	"github.com/richhaase/grib/internal/grib"
	"github.com/richhaase/grib/internal/terminal"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored review for the current branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := grib.New(git.Repo{}, terminal.Nop())
			s, err := app.Status()
			if err != nil {
				return err
			}
			renderStatus(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func renderStatus(w io.Writer, s grib.Status) {
	heading(w, "Branch "+s.Branch)
	field(w, "state file", s.StatePath)
	if s.Mode == command.ModeUpdate {
		field(w, "review", fmt.Sprintf("#%d", s.ReviewNumber))
	} else {
		field(w, "review", "(none)")
	}
	field(w, "parent", orNone(s.Parent))
	field(w, "next run", s.Mode.String())
}
