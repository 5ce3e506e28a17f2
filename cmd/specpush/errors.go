// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/specpush/specpush/internal/config"
	"github.com/specpush/specpush/internal/issue"
	"github.com/specpush/specpush/internal/publish"
	"github.com/specpush/specpush/internal/specrepo"
	"github.com/specpush/specpush/pkg/types"
)

// classifyError turns a domain error into an ActionableError pointing at
// the matching issue catalogue entry. Errors that already are actionable
// pass through unchanged.
func classifyError(err error, operation, resource string) *issue.ActionableError {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae
	}

	ctx := issue.NewErrorContext().WithOperation(operation).WithResource(resource).Wrap(err)

	var cfgErr *publish.ConfigurationError
	switch {
	case errors.As(err, &cfgErr) && cfgErr.Protected:
		ctx.WithIssue(issue.ProtectedRepoId).
			WithSuggestion(fmt.Sprintf("Run '%s' to publish to the master spec repo", publish.TrunkPushCommand))
	case errors.Is(err, publish.ErrConfiguration):
		ctx.WithIssue(issue.RepoNotFoundId).
			WithSuggestion("Run 'specpush repo list' to see the configured spec repos").
			WithSuggestion(fmt.Sprintf("Run 'specpush repo add %s <url>' to add it", resource))
	case errors.Is(err, publish.ErrInput):
		ctx.WithIssue(issue.SpecNotFoundId).
			WithSuggestion("Run from the directory containing the podspec, or pass its path")
	case errors.Is(err, publish.ErrValidation):
		ctx.WithIssue(issue.SpecInvalidId).
			WithSuggestion("Run 'specpush lint' to see every finding")
	case errors.Is(err, publish.ErrRepositoryState):
		ctx.WithIssue(issue.RepoNotCleanId).
			WithSuggestion("Commit, stash or discard the changes in the spec repo")
	case errors.Is(err, publish.ErrRemote):
		ctx.WithIssue(issue.PushFailedId).
			WithSuggestion("Check that your git client can push to the remote")
	case errors.Is(err, specrepo.ErrRepoExists):
		ctx.WithIssue(issue.RepoExistsId).
			WithSuggestion("Pick another name or remove the existing clone")
	case errors.Is(err, specrepo.ErrRepoNotFound):
		ctx.WithIssue(issue.RepoNotFoundId)
	}
	return ctx.Build()
}

// fail reports err on stderr and wraps it in an ExitError. The catalogue
// guidance is rendered in verbose mode. s is nil when the configuration
// could not be loaded.
func (a *App) fail(s *session, err error, operation, resource string) error {
	ae := classifyError(err, operation, resource)
	verbose := a.verbose || (s != nil && s.verbose)
	style := glamourStyle(config.ColorSchemeAuto)
	if s != nil {
		style = s.issueStyle
	}

	fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+ae.Format(verbose))
	if verbose && ae.Issue != 0 {
		if is := issue.Get(ae.Issue); is != nil {
			if out, renderErr := is.Render(style); renderErr == nil {
				fmt.Fprint(a.stderr, out)
			}
		}
	}
	return &ExitError{Code: types.ExitFailure}
}
