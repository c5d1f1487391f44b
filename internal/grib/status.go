package grib

import (
	"github.com/richhaase/grib/internal/command"
	"github.com/richhaase/grib/internal/state"
)

// Status is what a run on the current branch would start from.
type Status struct {
	Branch       string
	StatePath    string
	ReviewNumber int
	Parent       string
	Mode         command.Mode
	Data         *state.GribData
}

// Status reports the stored state of the current branch without changing
// anything on disk.
func (a *App) Status() (Status, error) {
	branch, root, err := a.locate()
	if err != nil {
		return Status{}, err
	}

	data, err := state.Load(root)
	if err != nil {
		return Status{}, err
	}

	s := Status{Branch: branch, StatePath: state.Path(root), Mode: command.ModeNew, Data: data}
	if bs, ok := data.Branches[branch]; ok && bs != nil {
		s.Parent = bs.Parent
		if bs.HasReview() {
			s.ReviewNumber = *bs.ReviewNumber
			s.Mode = command.ModeUpdate
		}
	}
	return s, nil
}
