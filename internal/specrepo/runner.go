// SPDX-License-Identifier: MPL-2.0

package specrepo

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/specpush/specpush/pkg/types"
)

// DefaultGitBinary is the git client used when none is configured.
const DefaultGitBinary = "git"

type (
	// Runner runs a git subcommand against a working tree and returns its
	// combined output.
	Runner interface {
		Run(ctx context.Context, dir types.FilesystemPath, args ...string) (string, error)
	}

	// ExecRunner runs the git command-line client. The working tree is
	// passed with -C rather than by changing the process directory.
	ExecRunner struct {
		Binary string
	}

	// CommandError is returned when a git subcommand exits unsuccessfully.
	CommandError struct {
		Args   []string
		Output string
		Err    error
	}
)

// Run implements Runner.
func (r ExecRunner) Run(ctx context.Context, dir types.FilesystemPath, args ...string) (string, error) {
	binary := r.Binary
	if binary == "" {
		binary = DefaultGitBinary
	}

	full := append([]string{"-C", string(dir)}, args...)
	out, err := exec.CommandContext(ctx, binary, full...).CombinedOutput()
	output := strings.TrimSpace(string(out))
	if err != nil {
		return output, &CommandError{Args: args, Output: output, Err: err}
	}
	return output, nil
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	if e.Output != "" {
		msg += "\n" + e.Output
	}
	return msg
}

// Unwrap returns the underlying process error.
func (e *CommandError) Unwrap() error { return e.Err }
