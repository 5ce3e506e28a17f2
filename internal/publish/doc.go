// SPDX-License-Identifier: MPL-2.0

// Package publish implements the podspec publication pipeline: it guards the
// target spec repo, validates every podspec, writes each one to
// <name>/<version>/ in the repo, commits only real changes and pushes.
//
// Nothing in the repository is touched until every podspec has validated.
package publish
