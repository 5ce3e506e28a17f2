// SPDX-License-Identifier: MPL-2.0

// Package specrepo gives access to spec repos: local git clones of a podspec
// index kept under a common repos directory.
//
// Local operations (status, staging, commits, remotes) go through go-git.
// Network operations (pull, push) shell out to the user's git client through
// a Runner so that its credential configuration applies unchanged.
package specrepo
