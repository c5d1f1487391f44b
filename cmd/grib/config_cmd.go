package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/richhaase/grib/internal/config"
	"github.com/richhaase/grib/internal/git"
	"github.com/richhaase/grib/internal/state"
	"github.com/richhaase/grib/internal/terminal"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the grib state file",
		Long:  "Show, initialize, or validate the .git/gribdata.yml file of the current repository.",
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigValidateCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the stored options and branches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := git.Repo{}.Root()
			if err != nil {
				return err
			}
			data, err := state.Load(root)
			if err != nil {
				return err
			}
			renderConfig(cmd.OutOrStdout(), state.Path(root), data)
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a state file with default options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := git.Repo{}.Root()
			if err != nil {
				return err
			}
			path := state.Path(root)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to check %s: %w", path, err)
			}

			if err := state.Save(root, state.New()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}

func newConfigValidateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the state file or a post_review options file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var warnings []string
			if file != "" {
				store, err := config.LoadFile(file, terminal.Nop())
				if err != nil {
					return err
				}
				warnings = store.Warnings()
			} else {
				root, err := git.Repo{}.Root()
				if err != nil {
					return err
				}
				data, err := state.Load(root)
				if err != nil {
					return err
				}
				warnings, err = validateOptions(data)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, w := range warnings {
				fmt.Fprintf(out, "Warning: %s\n", w)
			}
			if len(warnings) > 0 {
				fmt.Fprintln(out, "Configuration is valid (with warnings).")
			} else {
				fmt.Fprintln(out, "Configuration is valid.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Validate a standalone YAML file of post_review options")

	return cmd
}

// validateOptions collects the warnings every post_review block in data
// would produce on a run.
func validateOptions(data *state.GribData) ([]string, error) {
	global, err := config.New("options.post_review", data.Options.PostReview, terminal.Nop())
	if err != nil {
		return nil, err
	}
	warnings := global.Warnings()

	for _, name := range data.BranchNames() {
		bs := data.Branches[name]
		if bs == nil || bs.PostReview == nil {
			continue
		}
		local, err := config.New("branches."+name+".post_review", bs.PostReview, terminal.Nop())
		if err != nil {
			return nil, err
		}
		warnings = append(warnings, local.Warnings()...)
	}
	return warnings, nil
}
