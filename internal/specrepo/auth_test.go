// SPDX-License-Identifier: MPL-2.0

package specrepo

import (
	"testing"

	"github.com/go-git/go-git/v5/plumbing/transport/http"
)

func TestDetectAuth_HTTPTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		env      map[string]string
		wantUser string
		wantPass string
	}{
		{"github", map[string]string{"GITHUB_TOKEN": "gh", "GIT_TOKEN": "generic"}, "x-access-token", "gh"},
		{"gitlab", map[string]string{"GITLAB_TOKEN": "gl"}, "gitlab-ci-token", "gl"},
		{"generic", map[string]string{"GIT_TOKEN": "generic"}, "git", "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			getenv := func(k string) string { return tt.env[k] }
			auth := DetectAuth("https://example.com/acme/Specs.git", getenv, "")
			basic, ok := auth.(*http.BasicAuth)
			if !ok {
				t.Fatalf("DetectAuth() = %T, want *http.BasicAuth", auth)
			}
			if basic.Username != tt.wantUser || basic.Password != tt.wantPass {
				t.Errorf("BasicAuth = %s:%s, want %s:%s", basic.Username, basic.Password, tt.wantUser, tt.wantPass)
			}
		})
	}
}

func TestDetectAuth_Anonymous(t *testing.T) {
	t.Parallel()

	none := func(string) string { return "" }
	if auth := DetectAuth("https://example.com/acme/Specs.git", none, ""); auth != nil {
		t.Errorf("DetectAuth() = %v, want nil without tokens", auth)
	}
	// SSH URLs never fall back to HTTP tokens.
	tokens := func(string) string { return "secret" }
	if auth := DetectAuth("git@example.com:acme/Specs.git", tokens, t.TempDir()); auth != nil {
		t.Errorf("DetectAuth() = %v, want nil without SSH keys", auth)
	}
}
