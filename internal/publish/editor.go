// SPDX-License-Identifier: MPL-2.0

package publish

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// commitTemplate is shown to the user when the commit message is edited.
const commitTemplate = `
# Please enter the commit message for the spec(s) being published.
# Lines starting with '#' will be ignored. Leave the message empty to use
# the generated [Add], [Update] or [Fix] message.
`

// ErrNoEditor is returned by CommandEditor when no editor command is set.
var ErrNoEditor = errors.New("no editor configured (set $EDITOR or `editor` in the config file)")

type (
	// Editor obtains a commit message interactively.
	Editor interface {
		// Edit returns the edited text with comment lines removed and
		// surrounding whitespace trimmed.
		Edit(ctx context.Context, initial string) (string, error)
	}

	// CommandEditor opens a temporary file in an external editor process.
	CommandEditor struct {
		// Command is the editor argv; the file path is appended.
		Command []string
		Stdin   io.Reader
		Stdout  io.Writer
		Stderr  io.Writer
		// TempDir holds the message file; empty uses the system default.
		TempDir string
	}
)

// Edit implements Editor.
func (e *CommandEditor) Edit(ctx context.Context, initial string) (string, error) {
	if len(e.Command) == 0 {
		return "", ErrNoEditor
	}

	f, err := os.CreateTemp(e.TempDir, "COMMIT_EDITMSG-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create commit message file: %w", err)
	}
	path := f.Name()
	defer func() { _ = os.Remove(path) }()

	_, err = f.WriteString(initial + commitTemplate)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", fmt.Errorf("failed to write commit message file: %w", err)
	}

	args := append(append([]string{}, e.Command[1:]...), path)
	cmd := exec.CommandContext(ctx, e.Command[0], args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if err = cmd.Run(); err != nil {
		return "", fmt.Errorf("editor %s failed: %w", e.Command[0], err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read commit message file: %w", err)
	}
	return StripComments(string(data)), nil
}

// StripComments drops lines starting with '#' and trims the result.
func StripComments(text string) string {
	var b strings.Builder
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return strings.TrimSpace(b.String())
}
