// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/specpush/specpush/internal/publish"
)

func newLintCommand(app *App) *cobra.Command {
	var lf lintFlags

	cmd := &cobra.Command{
		Use:   "lint [SPEC]",
		Short: "Validate podspecs without publishing them",
		Long: `Validate podspecs without publishing them.

Runs the same validation as 'specpush push': SPEC, or every *.podspec and
*.podspec.json file in the current directory, is linted in order and the
first failure stops the run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newSession(cmd.Context())
			if err != nil {
				return app.fail(nil, err, "load configuration", app.configPath)
			}

			req := publish.Request{
				WorkingDir:           s.workDir,
				AllowWarnings:        lf.allowWarnings,
				UseStaticLinking:     lf.useStaticLinking,
				ExcludePrivateChecks: lf.excludePrivateChecks,
				Sources:              lf.sources,
			}
			if len(args) == 1 {
				req.SpecPath = resolveSpecPath(s.workDir, args[0])
			}

			files, err := s.publisher.Validate(cmd.Context(), req)
			if err != nil {
				return app.fail(s, err, "lint specs", string(req.SpecPath))
			}
			fmt.Fprintf(app.stdout, "\n%s\n", SuccessStyle.Render(fmt.Sprintf("%d podspec(s) passed validation", len(files))))
			return nil
		},
	}

	lf.register(cmd)
	return cmd
}
