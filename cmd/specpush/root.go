// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/specpush/specpush/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "specpush",
		Short: "Publish podspecs to git spec repos",
		Long: TitleStyle.Render("specpush") + SubtitleStyle.Render(" - publish podspecs to git spec repos") + `

specpush validates podspecs and commits each one to <name>/<version>/ in a
spec repo, a git clone kept under the repos directory, then pushes the repo.
Unchanged podspecs produce no commit.

` + SubtitleStyle.Render("Examples:") + `
  specpush push my-specs                 Publish every podspec in the current directory
  specpush push my-specs Foo.podspec     Publish a single podspec
  specpush lint                          Validate podspecs without publishing
  specpush repo add my-specs <url>       Clone a spec repo
  specpush repo list                     List spec repos`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(app.stdout)
	root.SetErr(app.stderr)

	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().StringVar(&app.configPath, "config", "", "config file (default is $HOME/.config/specpush/config.cue)")

	root.AddCommand(newPushCommand(app))
	root.AddCommand(newLintCommand(app))
	root.AddCommand(newRepoCommand(app))
	root.AddCommand(newConfigCommand(app))

	return root
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev (built from source)"
}

// Execute runs the CLI and exits the process with the resulting status.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
	)
	if err == nil {
		return
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		os.Exit(int(exitErr.Code))
	}
	os.Exit(int(types.ExitFailure))
}

// handleError prints errors that were not already reported by a command,
// such as usage errors raised by cobra.
func handleError(w io.Writer, _ fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+err.Error())
}
