// SPDX-License-Identifier: MPL-2.0

package specrepo

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"
)

type tokenSource struct {
	envVar   string
	username string
}

var httpTokenSources = []tokenSource{
	{envVar: "GITHUB_TOKEN", username: "x-access-token"},
	{envVar: "GITLAB_TOKEN", username: "gitlab-ci-token"},
	{envVar: "GIT_TOKEN", username: "git"},
}

var sshKeyNames = []string{"id_ed25519", "id_rsa", "id_ecdsa"}

// DetectAuth picks clone credentials for url. SSH URLs use the first
// loadable key in homeDir/.ssh; HTTP(S) URLs use a token from the first set
// environment variable among GITHUB_TOKEN, GITLAB_TOKEN and GIT_TOKEN.
// A nil result means anonymous access, which is enough for public repos.
func DetectAuth(url GitURL, getenv func(string) string, homeDir string) transport.AuthMethod {
	if url.IsSSH() {
		return trySSHAuth(homeDir)
	}
	return tryHTTPAuth(getenv)
}

func trySSHAuth(homeDir string) transport.AuthMethod {
	if homeDir == "" {
		return nil
	}

	for _, name := range sshKeyNames {
		keyPath := filepath.Join(homeDir, ".ssh", name)
		if _, err := os.Stat(keyPath); err != nil {
			continue
		}
		if auth, err := ssh.NewPublicKeysFromFile("git", keyPath, ""); err == nil {
			return auth
		}
	}

	return nil
}

func tryHTTPAuth(getenv func(string) string) transport.AuthMethod {
	if getenv == nil {
		return nil
	}

	for _, src := range httpTokenSources {
		if token := getenv(src.envVar); token != "" {
			return &http.BasicAuth{Username: src.username, Password: token}
		}
	}

	return nil
}
