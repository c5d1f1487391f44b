// Package main provides the grib command: post or update the review for the
// current git branch.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/richhaase/grib/internal/command"
	"github.com/richhaase/grib/internal/git"
	"github.com/richhaase/grib/internal/grib"
	"github.com/richhaase/grib/internal/terminal"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		var exitErr exitCodeError
		if errors.As(err, &exitErr) {
			return exitErr.code.Int()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError.Int()
	}

	return ExitSuccess.Int()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "grib [--new] [--parent=<branch>] [post-review args...]",
		Short: "Create or update the review for the current git branch",
		Long: `Create or update a review request for the current git branch.

The first run on a branch creates a new review and remembers its number in
.git/gribdata.yml. Later runs on the same branch add a new diff to that review.
Arguments grib does not recognise are passed to the review tool unchanged.

The state file also holds options shared by every branch:

  options:
    open_browser: true
    target_people: [alice, bob]
    target_groups: []
    misc: '--debug'
    command: post-review
    post_review:
      server: https://reviews.example.com

Environment:
  GRIB_LOG_LEVEL  debug, info, warn or error (default: info)
  NO_COLOR        disable colored output

Exit codes:
  0 - Review posted
  1 - Error
  130 - Interrupted`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE:               runGrib,
		SilenceUsage:       true,
		SilenceErrors:      true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Flag parsing is disabled so unknown arguments reach the review tool
	// untouched; these definitions only feed the help output.
	rootCmd.Flags().Bool("new", false, "Create a new review even if the branch already has one")
	rootCmd.Flags().String("parent", "", "Parent branch to diff against (remembered for the branch)")
	rootCmd.Flags().BoolP("help", "h", false, "Show help")

	setGroupedUsage(rootCmd)

	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func runGrib(cmd *cobra.Command, args []string) error {
	if slices.Contains(args, "--help") || slices.Contains(args, "-h") {
		return cmd.Help()
	}

	terminal.ConfigureColors()
	logger := terminal.NewLogger()
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Log("Interrupted, shutting down...", terminal.StyleWarning)
			cancel()
		case <-ctx.Done():
		}
	}()

	app := grib.New(git.Repo{}, logger)
	res, err := app.Run(ctx, args)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return exitCode(ExitInterrupted)
		}
		logger.Logf(terminal.StyleError, "Error: %v", err)
		return exitCode(ExitError)
	}

	verb := "Posted new"
	if res.Mode == command.ModeUpdate {
		verb = "Updated"
	}
	logger.Logf(terminal.StyleSuccess, "%s review #%d for %s", verb, res.ReviewNumber, res.Branch)
	return nil
}
