// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

// Id identifies a catalogue entry.
type Id int

const (
	SpecNotFoundId Id = iota + 1
	SpecInvalidId
	RepoNotFoundId
	ProtectedRepoId
	RepoNotCleanId
	RepoExistsId
	PushFailedId
	ConfigLoadFailedId
)

type (
	// MarkdownMsg is catalogue guidance in Markdown.
	MarkdownMsg string

	// HttpLink is a documentation URL.
	HttpLink string

	// Issue is a known problem with remediation guidance.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
		extLinks []HttpLink
	}
)

func (i *Issue) Id() Id { return i.id }

func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

func (i *Issue) DocLinks() []HttpLink { return slices.Clone(i.docLinks) }

func (i *Issue) ExtLinks() []HttpLink { return slices.Clone(i.extLinks) }

// Render renders the guidance for the terminal. stylePath is a glamour
// style name ("auto", "dark", "light", "notty") or a JSON style file.
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range append(i.DocLinks(), i.extLinks...) {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	specNotFoundIssue = &Issue{
		id: SpecNotFoundId,
		mdMsg: `
# No podspec to publish!

Either the podspec you named does not exist, or the current directory holds
no ` + "`*.podspec`" + ` or ` + "`*.podspec.json`" + ` files.

## Things you can try:
- Run from the directory that holds your podspec
- Name the podspec explicitly:
~~~
$ specpush push my-specs path/to/Foo.podspec
~~~`,
	}

	specInvalidIssue = &Issue{
		id: SpecInvalidId,
		mdMsg: `
# A podspec does not validate!

Nothing was written to the spec repo: every podspec must validate before any
of them is published.

## Things you can try:
- Run the linter on its own to see every finding:
~~~
$ specpush lint Foo.podspec
~~~
- Allow warnings if only warnings are reported:
~~~
$ specpush push my-specs --allow-warnings
~~~
- Skip the checks that only matter for public pods:
~~~
$ specpush push my-specs --exclude-private-checks
~~~`,
	}

	repoNotFoundIssue = &Issue{
		id: RepoNotFoundId,
		mdMsg: `
# Spec repo not found!

Spec repos are git clones kept in the repos directory (` + "`repos_dir`" + ` in the
config file). A repo can be named by its directory name or by any of its
remote URLs.

## Things you can try:
- List the repos that are set up:
~~~
$ specpush repo list
~~~
- Add the repo:
~~~
$ specpush repo add my-specs https://git.example.com/my-specs.git
~~~`,
	}

	protectedRepoIssue = &Issue{
		id: ProtectedRepoId,
		mdMsg: `
# Refusing to push to the public master spec repo!

The public master spec repo only accepts podspecs through trunk. Direct
pushes are always rejected.

## Things you can try:
- Publish with ` + "`pod trunk push`" + ` instead
- Push to your own private spec repo`,
	}

	repoNotCleanIssue = &Issue{
		id: RepoNotCleanId,
		mdMsg: `
# The spec repo has uncommitted changes!

Publishing commits into the spec repo, so its working tree must be clean first.

## Things you can try:
- Inspect the changes:
~~~
$ git -C <repo path> status
~~~
- Commit, stash or discard them, then publish again`,
	}

	repoExistsIssue = &Issue{
		id: RepoExistsId,
		mdMsg: `
# A spec repo with that name already exists!

## Things you can try:
- Pick another name
- Check the existing repo:
~~~
$ specpush repo list
~~~`,
	}

	pushFailedIssue = &Issue{
		id: PushFailedId,
		mdMsg: `
# Pushing the spec repo failed!

Your podspecs were committed locally but did not reach the remote. Pushing
uses your own git client and its credentials.

## Things you can try:
- Check that you can push by hand:
~~~
$ git -C <repo path> push
~~~
- Pull, resolve any conflict and push again
- Use ` + "`--local-only`" + ` to commit without pushing`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load the configuration!

## Things you can try:
- Check the CUE syntax of your config file
- Print the effective configuration:
~~~
$ specpush config show
~~~

## Example config file:
~~~cue
repos_dir: "~/.specpush/repos"
editor:    "vim"
git: {
	remote: "origin"
}
~~~`,
	}

	issues = map[Id]*Issue{
		specNotFoundIssue.Id():     specNotFoundIssue,
		specInvalidIssue.Id():      specInvalidIssue,
		repoNotFoundIssue.Id():     repoNotFoundIssue,
		protectedRepoIssue.Id():    protectedRepoIssue,
		repoNotCleanIssue.Id():     repoNotCleanIssue,
		repoExistsIssue.Id():       repoExistsIssue,
		pushFailedIssue.Id():       pushFailedIssue,
		configLoadFailedIssue.Id(): configLoadFailedIssue,
	}
)

// Values returns every catalogue entry ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

// Get returns the entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
