// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/specpush/specpush/internal/config"
	"github.com/specpush/specpush/internal/issue"
	"github.com/specpush/specpush/internal/lint"
	"github.com/specpush/specpush/internal/publish"
	"github.com/specpush/specpush/internal/specrepo"
	"github.com/specpush/specpush/pkg/types"
)

type (
	// App is the composition root of the CLI. Command handlers read the
	// configuration through it and receive fully wired services from
	// newSession; nothing below the CLI layer reads flags or the environment.
	App struct {
		Config  config.Provider
		stdin   io.Reader
		stdout  io.Writer
		stderr  io.Writer
		getenv  func(string) string
		getwd   func() (string, error)
		homeDir func() (string, error)

		// Persistent flag values bound by the root command.
		verbose    bool
		configPath string
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config  config.Provider
		Stdin   io.Reader
		Stdout  io.Writer
		Stderr  io.Writer
		Getenv  func(string) string
		Getwd   func() (string, error)
		HomeDir func() (string, error)
	}

	// session carries the services for one command invocation, built from
	// the loaded configuration.
	session struct {
		cfg        *config.Config
		cfgPath    string
		verbose    bool
		logger     *log.Logger
		workDir    types.FilesystemPath
		resolver   *specrepo.DirResolver
		publisher  *publish.Publisher
		getenv     func(string) string
		homeDir    string
		issueStyle string
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config:  deps.Config,
		stdin:   deps.Stdin,
		stdout:  deps.Stdout,
		stderr:  deps.Stderr,
		getenv:  deps.Getenv,
		getwd:   deps.Getwd,
		homeDir: deps.HomeDir,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.stdin == nil {
		app.stdin = os.Stdin
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	if app.getenv == nil {
		app.getenv = os.Getenv
	}
	if app.getwd == nil {
		app.getwd = os.Getwd
	}
	if app.homeDir == nil {
		app.homeDir = os.UserHomeDir
	}
	return app
}

// newSession loads the configuration and wires the services every
// subcommand needs.
func (a *App) newSession(ctx context.Context) (*session, error) {
	cfg, cfgPath, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.configPath})
	if err != nil {
		return nil, err
	}

	verbose := a.verbose || cfg.UI.Verbose
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(a.stderr, log.Options{Prefix: config.AppName, Level: level})
	logger.Debug("configuration loaded", "path", cfgPath)

	home, err := a.homeDir()
	if err != nil {
		logger.Debug("home directory unavailable", "error", err)
		home = ""
	}
	wd, err := a.getwd()
	if err != nil {
		return nil, issue.WrapWithOperation(err, "determine the working directory")
	}

	lintCommand, err := cfg.LintCommand(a.getenv)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("read the lint command").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(err).
			BuildError()
	}
	editorCommand, err := cfg.EditorCommand(a.getenv)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("read the editor command").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(err).
			BuildError()
	}

	resolver := specrepo.NewDirResolver(cfg.ReposPath(home), logger,
		specrepo.WithRunner(specrepo.ExecRunner{Binary: cfg.Git.Binary}),
		specrepo.WithRemote(cfg.Git.Remote),
		specrepo.WithLogger(logger),
	)

	var editor publish.Editor
	if len(editorCommand) > 0 {
		editor = &publish.CommandEditor{
			Command: editorCommand,
			Stdin:   a.stdin,
			Stdout:  a.stdout,
			Stderr:  a.stderr,
		}
	}

	publisher := publish.New(publish.Dependencies{
		Resolver:   resolver,
		Validators: lint.NewFactory(lintCommand, a.stdout, logger),
		Editor:     editor,
		Reporter:   &styledReporter{w: a.stdout},
		Protected:  cfg.ProtectedURLs,
		Logger:     logger,
	})

	return &session{
		cfg:        cfg,
		cfgPath:    cfgPath,
		verbose:    verbose,
		logger:     logger,
		workDir:    types.FilesystemPath(wd),
		resolver:   resolver,
		publisher:  publisher,
		getenv:     a.getenv,
		homeDir:    home,
		issueStyle: glamourStyle(cfg.UI.ColorScheme),
	}, nil
}

func glamourStyle(scheme config.ColorScheme) string {
	switch scheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}
