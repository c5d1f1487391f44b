// Package review runs the review-posting tool and reads the review number
// from its output.
package review

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/richhaase/grib/internal/terminal"
)

// ErrNoReviewNumber is returned when the tool's output names no review.
var ErrNoReviewNumber = errors.New("could not find review number in output")

// reviewNumberPattern matches a run of digits bounded by spaces, optionally
// prefixed with '#', as in "Review request #77 posted".
var reviewNumberPattern = regexp.MustCompile(` #?([0-9]+) `)

// Runner executes the review tool.
type Runner struct {
	// Command is the executable followed by any leading arguments.
	Command []string
	logger  *terminal.Logger
}

// Result is the outcome of a successful run.
type Result struct {
	ReviewNumber int
	Output       string
}

// NewRunner creates a runner for command.
func NewRunner(command []string, logger *terminal.Logger) *Runner {
	if logger == nil {
		logger = terminal.Nop()
	}
	return &Runner{Command: command, logger: logger}
}

// Run executes the tool with args appended to the command and returns the
// review number it reported.
func (r *Runner) Run(ctx context.Context, args []string) (Result, error) {
	if len(r.Command) == 0 {
		return Result{}, errors.New("no review command configured")
	}

	argv := append(append([]string{}, r.Command[1:]...), args...)
	r.logger.Logf(terminal.StyleInfo, "running command:\n\t%q", strings.Join(append([]string{r.Command[0]}, argv...), " "))

	// #nosec G204 - the command comes from the repository's own grib state file.
	cmd := exec.CommandContext(ctx, r.Command[0], argv...)
	out, err := cmd.CombinedOutput()
	output := string(out)
	if err != nil {
		trimmed := strings.TrimSpace(output)
		if trimmed != "" {
			return Result{Output: output}, fmt.Errorf("%s failed: %w: %s", r.Command[0], err, trimmed)
		}
		return Result{Output: output}, fmt.Errorf("%s failed: %w", r.Command[0], err)
	}
	r.logger.Logf(terminal.StyleInfo, "%s response:\n %s", r.Command[0], output)

	n, err := ParseReviewNumber(output)
	if err != nil {
		return Result{Output: output}, err
	}
	r.logger.Logf(terminal.StyleSuccess, "Review number: %d", n)
	return Result{ReviewNumber: n, Output: output}, nil
}

// ParseReviewNumber returns the first review number in output.
func ParseReviewNumber(output string) (int, error) {
	m := reviewNumberPattern.FindStringSubmatch(output)
	if m == nil {
		return 0, ErrNoReviewNumber
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: invalid number %q", ErrNoReviewNumber, m[1])
	}
	return n, nil
}
