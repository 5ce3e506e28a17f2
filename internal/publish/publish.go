// SPDX-License-Identifier: MPL-2.0

package publish

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5/util"

	"github.com/specpush/specpush/internal/lint"
	"github.com/specpush/specpush/internal/specrepo"
	"github.com/specpush/specpush/pkg/podspec"
	"github.com/specpush/specpush/pkg/types"
)

type (
	// Request describes one publication. It is built once per invocation
	// and never modified.
	Request struct {
		// Repo is the spec repo name or one of its remote URLs.
		Repo string
		// SpecPath is an explicit podspec; empty publishes every podspec in WorkingDir.
		SpecPath types.FilesystemPath
		// WorkingDir is where podspecs are discovered.
		WorkingDir types.FilesystemPath

		AllowWarnings        bool
		UseStaticLinking     bool
		ExcludePrivateChecks bool
		// Sources are the spec repos used to resolve dependencies while linting.
		Sources []string

		// LocalOnly commits without pushing.
		LocalOnly bool
		// CommitMessage, when non-empty, is used verbatim for every commit.
		CommitMessage string
		// EditMessage asks the Editor for a commit message before anything else.
		EditMessage bool
		// UseJSON stores podspecs as pretty-printed JSON.
		UseJSON bool
	}

	// Reporter receives user-facing progress.
	Reporter interface {
		// Section announces a pipeline stage.
		Section(title string)
		// Item reports the outcome for one podspec.
		Item(text string)
		// Output relays output from a git subprocess.
		Output(text string)
		// Warn reports a non-fatal problem.
		Warn(text string)
	}

	// Dependencies are the collaborators of a Publisher.
	Dependencies struct {
		Resolver specrepo.Resolver
		// Validators builds one validator per podspec file.
		Validators lint.Factory
		// Editor is used when Request.EditMessage is set; nil falls back to
		// generated messages.
		Editor   Editor
		Reporter Reporter
		// Protected lists remote URLs that may never be published to, on
		// top of specrepo.DefaultProtectedURLs.
		Protected []specrepo.GitURL
		Logger    *log.Logger
	}

	// Publisher runs publications.
	Publisher struct {
		resolver   specrepo.Resolver
		validators lint.Factory
		editor     Editor
		reporter   Reporter
		protected  []specrepo.GitURL
		logger     *log.Logger
	}

	discardReporter struct{}
)

// New creates a Publisher.
func New(deps Dependencies) *Publisher {
	p := &Publisher{
		resolver:   deps.Resolver,
		validators: deps.Validators,
		editor:     deps.Editor,
		reporter:   deps.Reporter,
		protected:  deps.Protected,
		logger:     deps.Logger,
	}
	if p.reporter == nil {
		p.reporter = discardReporter{}
	}
	if p.logger == nil {
		p.logger = log.New(io.Discard)
	}
	return p
}

// Run publishes the podspecs described by req. Every podspec is validated
// before the repo is touched; unchanged podspecs produce no commit.
func (p *Publisher) Run(ctx context.Context, req Request) error {
	message := req.CommitMessage
	if req.EditMessage {
		message = p.editMessage(ctx, message)
	}

	repo, err := p.resolve(ctx, req.Repo)
	if err != nil {
		return err
	}

	files, err := p.Validate(ctx, req)
	if err != nil {
		return err
	}
	specs, err := parseAll(files)
	if err != nil {
		return err
	}

	clean, err := repo.IsClean(ctx)
	if err != nil {
		return fmt.Errorf("failed to read the status of the `%s` repo: %w", repo.Name(), err)
	}
	if !clean {
		return &RepositoryStateError{Repo: repo.Name(), Root: repo.Root()}
	}

	p.reporter.Section(fmt.Sprintf("Updating the `%s` repo", repo.Name()))
	out, err := repo.Pull(ctx)
	if out != "" {
		p.reporter.Output(out)
	}
	if err != nil {
		p.logger.Warn("pull failed, continuing with the local state", "repo", repo.Name(), "error", err)
		p.reporter.Warn(fmt.Sprintf("failed to update the `%s` repo; publishing onto its local state", repo.Name()))
	}

	p.reporter.Section(fmt.Sprintf("Adding the %s to the `%s` repo", pluralize(len(specs), "spec"), repo.Name()))
	for _, spec := range specs {
		if err := p.publishOne(ctx, repo, spec, message, req.UseJSON); err != nil {
			return err
		}
	}

	if req.LocalOnly {
		return nil
	}

	p.reporter.Section(fmt.Sprintf("Pushing the `%s` repo", repo.Name()))
	if err := repo.Push(ctx); err != nil {
		return &RemoteError{Repo: repo.Name(), Cause: err}
	}
	return nil
}

// Validate discovers the podspecs of req and lints each of them in order,
// stopping at the first failure. It returns the discovered files.
func (p *Publisher) Validate(ctx context.Context, req Request) ([]types.FilesystemPath, error) {
	files, err := podspec.Discover(req.WorkingDir, req.SpecPath)
	if err != nil {
		return nil, &InputError{Cause: err}
	}

	p.reporter.Section(fmt.Sprintf("Validating %s", pluralize(len(files), "spec")))
	opts := lint.Options{
		AllowWarnings:        req.AllowWarnings,
		StaticLinking:        req.UseStaticLinking,
		ExcludePrivateChecks: req.ExcludePrivateChecks,
	}
	for _, file := range files {
		name := podspec.DisplayName(req.WorkingDir, file)
		v := p.validators(file, req.Sources, opts)
		if err := v.Validate(ctx); err != nil {
			return nil, &ValidationError{File: name, Cause: err}
		}
		if !v.Validated() {
			return nil, &ValidationError{File: name}
		}
		p.logger.Debug("validated", "file", name)
	}
	return files, nil
}

func (p *Publisher) editMessage(ctx context.Context, initial string) string {
	if p.editor == nil {
		p.logger.Warn("no editor available, using generated commit messages")
		return initial
	}
	text, err := p.editor.Edit(ctx, initial)
	if err != nil {
		p.logger.Warn("commit message editing failed, using generated commit messages", "error", err)
		return initial
	}
	return text
}

func (p *Publisher) resolve(ctx context.Context, name string) (specrepo.Repository, error) {
	repo, err := p.resolver.Lookup(ctx, name)
	if err != nil {
		p.logger.Debug("repo lookup failed", "repo", name, "error", err)
		return nil, &ConfigurationError{Repo: name, Cause: err}
	}

	urls, err := repo.RemoteURLs()
	if err != nil {
		return nil, &ConfigurationError{Repo: name, Cause: err}
	}
	if specrepo.IsProtected(urls, p.protected) {
		return nil, &ConfigurationError{Repo: name, Protected: true}
	}
	return repo, nil
}

func (p *Publisher) publishOne(ctx context.Context, repo specrepo.Repository, spec *podspec.Specification, message string, useJSON bool) error {
	repoFS := repo.FS()

	kind, err := ClassifyTarget(repoFS, spec)
	if err != nil {
		return err
	}
	message = ResolveCommitMessage(message, kind, spec)

	content, err := spec.Content(useJSON)
	if err != nil {
		return err
	}
	dir := spec.RelativeDir()
	if err = repoFS.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	target := path.Join(dir, spec.FileName(useJSON))
	if err = util.WriteFile(repoFS, target, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	res, err := repo.CommitIfChanged(ctx, spec.Name, message)
	if err != nil {
		return fmt.Errorf("failed to commit %s: %w", spec.Label(), err)
	}
	if res.Outcome == specrepo.NoChange {
		p.reporter.Item(fmt.Sprintf("[No change] %s: %s", spec.Name, spec.Version))
		return nil
	}
	p.reporter.Item(message)
	return nil
}

func parseAll(files []types.FilesystemPath) ([]*podspec.Specification, error) {
	specs := make([]*podspec.Specification, 0, len(files))
	for _, file := range files {
		spec, err := podspec.Parse(file)
		if err != nil {
			return nil, &InputError{Cause: err}
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}

func (discardReporter) Section(string) {}
func (discardReporter) Item(string)    {}
func (discardReporter) Output(string)  {}
func (discardReporter) Warn(string)    {}
