// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"
)

// styledReporter prints publication progress to the terminal.
type styledReporter struct {
	w io.Writer
}

func (r *styledReporter) Section(title string) {
	fmt.Fprintf(r.w, "\n%s\n", TitleStyle.Render(title))
}

func (r *styledReporter) Item(text string) {
	style := SuccessStyle
	if strings.HasPrefix(text, "[No change]") {
		style = SubtitleStyle
	}
	fmt.Fprintf(r.w, " - %s\n", style.Render(text))
}

func (r *styledReporter) Output(text string) {
	for line := range strings.SplitSeq(strings.TrimRight(text, "\n"), "\n") {
		fmt.Fprintf(r.w, "   %s\n", VerboseStyle.Render(line))
	}
}

func (r *styledReporter) Warn(text string) {
	fmt.Fprintf(r.w, "%s %s\n", WarningStyle.Render("[!]"), text)
}
