// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/specpush/specpush/internal/publish"
	"github.com/specpush/specpush/pkg/types"
)

// editMessageValue is what --commit-message takes when given without a value.
const editMessageValue = "@editor"

type (
	// lintFlags are the validation flags shared by push and lint.
	lintFlags struct {
		allowWarnings        bool
		useStaticLinking     bool
		excludePrivateChecks bool
		sources              []string
	}

	// commitMessageFlag is --commit-message[=MSG]. Present without a value,
	// or with an empty one, it asks for the message in an editor.
	commitMessageFlag struct {
		message string
		edit    bool
	}
)

func (f *commitMessageFlag) String() string { return f.message }
func (f *commitMessageFlag) Type() string   { return "string" }

func (f *commitMessageFlag) Set(s string) error {
	if s == editMessageValue || strings.TrimSpace(s) == "" {
		f.message, f.edit = "", true
		return nil
	}
	f.message, f.edit = s, false
	return nil
}

func (l *lintFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVar(&l.allowWarnings, "allow-warnings", false, "allow warnings when linting")
	flags.BoolVar(&l.useStaticLinking, "use-static-linking", false, "lint as if the pod were linked statically")
	flags.BoolVar(&l.excludePrivateChecks, "exclude-private-checks", false, "skip checks that only apply to public pods")
	flags.StringSliceVar(&l.sources, "sources", nil, "spec repos used to resolve dependencies while linting (comma-separated)")
}

func newPushCommand(app *App) *cobra.Command {
	var (
		lf        lintFlags
		message   commitMessageFlag
		localOnly bool
		useJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "push <REPO> [SPEC]",
		Short: "Validate podspecs and publish them to a spec repo",
		Long: `Validate podspecs and publish them to a spec repo.

REPO is the name of a spec repo under the repos directory, or one of its
remote URLs. SPEC is a podspec file; without it every *.podspec and
*.podspec.json file in the current directory is published.

Every podspec must validate before anything is written. Each one is then
stored at <name>/<version>/ in the repo and committed only if it changed.
Commit messages are "[Add]", "[Update]" or "[Fix]" followed by the pod name
and version, unless --commit-message is given.`,
		Example: `  specpush push my-specs
  specpush push my-specs Foo.podspec --allow-warnings
  specpush push my-specs --commit-message="Release 1.2" --local-only
  specpush push my-specs --commit-message    # write the message in $EDITOR`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newSession(cmd.Context())
			if err != nil {
				return app.fail(nil, err, "load configuration", app.configPath)
			}

			req := publish.Request{
				Repo:                 args[0],
				WorkingDir:           s.workDir,
				AllowWarnings:        lf.allowWarnings,
				UseStaticLinking:     lf.useStaticLinking,
				ExcludePrivateChecks: lf.excludePrivateChecks,
				Sources:              lf.sources,
				LocalOnly:            localOnly,
				CommitMessage:        message.message,
				EditMessage:          message.edit,
				UseJSON:              useJSON,
			}
			if len(args) == 2 {
				req.SpecPath = resolveSpecPath(s.workDir, args[1])
			}

			if err := s.publisher.Run(cmd.Context(), req); err != nil {
				return app.fail(s, err, "push specs", args[0])
			}
			return nil
		},
	}

	lf.register(cmd)
	flags := cmd.Flags()
	flags.BoolVar(&localOnly, "local-only", false, "commit to the local spec repo without pushing")
	flags.BoolVar(&useJSON, "use-json", false, "store podspecs as JSON")
	flags.Var(&message, "commit-message", "commit message for every podspec; without a value, opens the editor")
	flags.Lookup("commit-message").NoOptDefVal = editMessageValue

	return cmd
}

// resolveSpecPath makes a podspec argument absolute against the working directory.
func resolveSpecPath(workDir types.FilesystemPath, arg string) types.FilesystemPath {
	p := types.FilesystemPath(arg)
	if p.IsAbs() {
		return p
	}
	return workDir.Join(arg)
}
