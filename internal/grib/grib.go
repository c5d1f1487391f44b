// Package grib wires one review run together: read the branch state, build
// the review command, run it and remember the review number.
package grib

import (
	"context"
	"fmt"

	"github.com/richhaase/grib/internal/command"
	"github.com/richhaase/grib/internal/config"
	"github.com/richhaase/grib/internal/review"
	"github.com/richhaase/grib/internal/state"
	"github.com/richhaase/grib/internal/terminal"
)

// Repo is the version-control view grib needs.
type Repo interface {
	CurrentBranch() (string, error)
	Root() (string, error)
}

// reservedKeys are review-tool options grib sets itself.
var reservedKeys = []string{"branch", "parent"}

// App runs grib against one repository.
type App struct {
	repo   Repo
	logger *terminal.Logger
}

// New creates an App.
func New(repo Repo, logger *terminal.Logger) *App {
	if logger == nil {
		logger = terminal.Nop()
	}
	return &App{repo: repo, logger: logger}
}

// Result describes a completed run.
type Result struct {
	Branch       string
	Mode         command.Mode
	ReviewNumber int
}

// Run posts or updates the review for the current branch. args are the
// command-line arguments after the program name. The state file is only
// written once the review tool has reported a review number.
func (a *App) Run(ctx context.Context, args []string) (Result, error) {
	branch, root, err := a.locate()
	if err != nil {
		return Result{}, err
	}

	data, err := state.Load(root)
	if err != nil {
		return Result{}, err
	}
	a.logger.Logf(terminal.StyleDim, "Gribdata file: %s", state.Path(root))

	cli := command.ParseCLI(args)
	a.logger.Logf(terminal.StyleDim, "force_new: %t", cli.ForceNew)

	bs := data.Branch(branch)
	extra, err := a.reviewOptions(data, branch, bs)
	if err != nil {
		return Result{}, err
	}

	plan, err := command.Build(command.Input{
		Branch:         branch,
		State:          bs,
		Options:        &data.Options,
		ForceNew:       cli.ForceNew,
		ParentOverride: cli.Parent,
		Extra:          extra,
		Forward:        cli.Forward,
	})
	if err != nil {
		return Result{}, err
	}
	if a.logger.Enabled(terminal.StyleDim) {
		for _, arg := range plan.Args {
			a.logger.Logf(terminal.StyleDim, "added argument: %s", arg)
		}
	}

	if plan.Mode == command.ModeUpdate {
		a.logger.Logf(terminal.StyleInfo, "Review #: %d", plan.ReviewNumber)
	} else {
		a.logger.Log("Review #: new review", terminal.StyleInfo)
	}

	runner := review.NewRunner(command.SplitWords(data.Options.Command), a.logger)
	res, err := runner.Run(ctx, plan.Args)
	if err != nil {
		return Result{}, err
	}
	if data.Options.OpenBrowserEnabled() {
		a.logger.Log("Browser should be opened...", terminal.StyleInfo)
	}

	bs.SetReviewNumber(res.ReviewNumber)
	if err := state.Save(root, data); err != nil {
		return Result{}, err
	}
	a.logger.Log("done.", terminal.StyleDim)

	return Result{Branch: branch, Mode: plan.Mode, ReviewNumber: res.ReviewNumber}, nil
}

func (a *App) locate() (branch, root string, err error) {
	branch, err = a.repo.CurrentBranch()
	if err != nil {
		return "", "", fmt.Errorf("cannot determine current branch: %w", err)
	}
	if branch == "" {
		return "", "", command.ErrNoBranch
	}
	root, err = a.repo.Root()
	if err != nil {
		return "", "", err
	}
	return branch, root, nil
}

// reviewOptions validates the global and per-branch post_review blocks,
// writes the normalised values back into the document and renders the
// branch block layered over the global one.
func (a *App) reviewOptions(data *state.GribData, branch string, bs *state.BranchState) ([]string, error) {
	global, err := config.New("options.post_review", data.Options.PostReview, a.logger)
	if err != nil {
		return nil, err
	}
	data.Options.PostReview = global.Map()

	if bs.PostReview == nil {
		return global.Args(reservedKeys...), nil
	}

	local, err := config.New(fmt.Sprintf("branches.%s.post_review", branch), bs.PostReview, a.logger)
	if err != nil {
		return nil, err
	}
	bs.PostReview = local.Map()

	return local.WithDefaults(global).Args(reservedKeys...), nil
}
