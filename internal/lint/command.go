// SPDX-License-Identifier: MPL-2.0

package lint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/specpush/specpush/pkg/types"
)

// CommandValidator runs an external linter. The linter is invoked as
//
//	<command...> <file> [--allow-warnings] [--use-libraries] [--private] [--sources=a,b]
//
// and its output is passed through. Exit status zero means validated.
type CommandValidator struct {
	command []string
	file    types.FilesystemPath
	sources []string
	opts    Options
	out     io.Writer
	logger  *log.Logger

	results   []Result
	validated bool
}

// NewCommandValidator creates a CommandValidator.
func NewCommandValidator(command []string, file types.FilesystemPath, sources []string, opts Options, out io.Writer, logger *log.Logger) *CommandValidator {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &CommandValidator{
		command: command,
		file:    file,
		sources: sources,
		opts:    opts,
		out:     out,
		logger:  logger,
	}
}

// Args returns the full argument vector passed to the linter.
func (v *CommandValidator) Args() []string {
	args := append([]string{}, v.command[1:]...)
	args = append(args, string(v.file))
	if v.opts.AllowWarnings {
		args = append(args, "--allow-warnings")
	}
	if v.opts.StaticLinking {
		args = append(args, "--use-libraries")
	}
	if v.opts.ExcludePrivateChecks {
		args = append(args, "--private")
	}
	if len(v.sources) > 0 {
		args = append(args, "--sources="+strings.Join(v.sources, ","))
	}
	return args
}

// Validate runs the linter.
func (v *CommandValidator) Validate(ctx context.Context) error {
	v.results = nil
	v.validated = false

	if len(v.command) == 0 {
		return errors.New("no lint command configured")
	}

	args := v.Args()
	v.logger.Debug("running external linter", "command", v.command[0], "args", args)

	cmd := exec.CommandContext(ctx, v.command[0], args...)
	cmd.Stdout = v.out
	cmd.Stderr = v.out

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		v.validated = true
	case errors.As(err, &exitErr):
		v.results = append(v.results, Result{
			Severity: SeverityError,
			Message:  fmt.Sprintf("%s exited with status %d", v.command[0], exitErr.ExitCode()),
		})
	default:
		return fmt.Errorf("failed to run lint command %q: %w", v.command[0], err)
	}
	return nil
}

// Validated reports whether the last Validate call passed.
func (v *CommandValidator) Validated() bool { return v.validated }

// Results returns the findings of the last Validate call.
func (v *CommandValidator) Results() []Result { return v.results }
