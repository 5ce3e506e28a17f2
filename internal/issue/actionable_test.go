// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	cause := errors.New("no such directory")
	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{"operation only", &ActionableError{Operation: "push specs"}, "failed to push specs"},
		{"with resource", &ActionableError{Operation: "push specs", Resource: "acme"}, "failed to push specs: acme"},
		{"with cause", &ActionableError{Operation: "push specs", Resource: "acme", Cause: cause}, "failed to push specs: acme: no such directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel")
	err := WrapWithOperation(fmt.Errorf("layer: %w", sentinel), "load configuration")
	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should find the wrapped sentinel")
	}
	if WrapWithOperation(nil, "anything") != nil {
		t.Error("WrapWithOperation(nil) should return nil")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	inner := errors.New("permission denied")
	err := NewErrorContext().
		WithOperation("clone spec repo").
		WithResource("acme").
		WithSuggestion("Check your credentials").
		WithSuggestion("Try an SSH URL").
		Wrap(fmt.Errorf("auth: %w", inner)).
		Build()

	short := err.Format(false)
	if !strings.Contains(short, "  • Check your credentials") || !strings.Contains(short, "  • Try an SSH URL") {
		t.Errorf("Format(false) missing suggestions:\n%s", short)
	}
	if strings.Contains(short, "Error chain") {
		t.Error("Format(false) should not include the error chain")
	}

	long := err.Format(true)
	if !strings.Contains(long, "1. auth: permission denied") || !strings.Contains(long, "2. permission denied") {
		t.Errorf("Format(true) missing chain:\n%s", long)
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build() without operation should be nil")
	}
	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want untyped nil", err)
	}

	ctx := NewErrorContext().WithOperation("push specs").WithIssue(PushFailedId).WithSuggestion("a")
	first := ctx.Build()
	ctx.WithSuggestion("b")
	if len(first.Suggestions) != 1 {
		t.Errorf("built error shares suggestions with its builder: %v", first.Suggestions)
	}
	if first.Issue != PushFailedId {
		t.Errorf("Issue = %d, want %d", first.Issue, PushFailedId)
	}

	var ae *ActionableError
	if !errors.As(ctx.BuildError(), &ae) || !ae.HasSuggestions() {
		t.Error("BuildError() should produce an *ActionableError with suggestions")
	}
}
