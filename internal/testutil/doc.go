// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Besides the filesystem helpers (MustMkdirAll, MustWriteFile) it builds
// on-disk spec repo fixtures with go-git (InitGitRepo, LastCommitMessage) so
// tests never depend on a git binary or on the user's git configuration.
package testutil
