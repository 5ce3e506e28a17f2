// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specpush/specpush/internal/specrepo"
)

func newRepoCommand(app *App) *cobra.Command {
	repoCmd := &cobra.Command{
		Use:   "repo",
		Short: "Manage spec repos",
		Long: `Manage spec repos.

Spec repos are git clones kept directly under the repos directory
(repos_dir in the config file, ~/.specpush/repos by default).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	repoCmd.AddCommand(newRepoListCommand(app), newRepoAddCommand(app))
	return repoCmd
}

func newRepoListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List spec repos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newSession(cmd.Context())
			if err != nil {
				return app.fail(nil, err, "load configuration", app.configPath)
			}

			repos, err := s.resolver.List(cmd.Context())
			if err != nil {
				return app.fail(s, err, "list spec repos", string(s.resolver.Dir()))
			}
			if len(repos) == 0 {
				fmt.Fprintf(app.stdout, "No spec repos in %s\n", CmdStyle.Render(string(s.resolver.Dir())))
				return nil
			}

			for _, repo := range repos {
				printRepo(app, s, repo)
			}
			return nil
		},
	}
}

func printRepo(app *App, s *session, repo specrepo.Repository) {
	urls, err := repo.RemoteURLs()
	if err != nil {
		s.logger.Debug("failed to read remotes", "repo", repo.Name(), "error", err)
	}
	branch, err := repo.Branch()
	if err != nil {
		branch = "-"
	}

	name := TitleStyle.Render(repo.Name())
	if specrepo.IsProtected(urls, s.cfg.ProtectedURLs) {
		name += " " + protectedBadgeStyle.Render("(protected)")
	}
	remotes := make([]string, len(urls))
	for i, u := range urls {
		remotes[i] = u.String()
	}

	fmt.Fprintln(app.stdout, name)
	fmt.Fprintf(app.stdout, "  %s %s\n", SubtitleStyle.Render("Path:  "), CmdStyle.Render(string(repo.Root())))
	fmt.Fprintf(app.stdout, "  %s %s\n", SubtitleStyle.Render("Remote:"), strings.Join(remotes, ", "))
	fmt.Fprintf(app.stdout, "  %s %s\n\n", SubtitleStyle.Render("Branch:"), branch)
}

func newRepoAddCommand(app *App) *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "add <NAME> <URL>",
		Short: "Clone a spec repo into the repos directory",
		Example: `  specpush repo add my-specs https://git.example.com/my-specs.git
  specpush repo add my-specs git@git.example.com:my-specs.git --branch main`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newSession(cmd.Context())
			if err != nil {
				return app.fail(nil, err, "load configuration", app.configPath)
			}

			url := specrepo.GitURL(args[1])
			fmt.Fprintf(app.stdout, "%s\n", TitleStyle.Render(fmt.Sprintf("Cloning spec repo `%s` from `%s`", args[0], url)))
			repo, err := s.resolver.Clone(cmd.Context(), specrepo.CloneOptions{
				Name:   args[0],
				URL:    url,
				Branch: branch,
				Auth:   specrepo.DetectAuth(url, s.getenv, s.homeDir),
			})
			if err != nil {
				return app.fail(s, err, "add spec repo", args[0])
			}

			fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("Added"), CmdStyle.Render(string(repo.Root())))
			return nil
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "", "clone only this branch")
	return cmd
}
