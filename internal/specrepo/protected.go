// SPDX-License-Identifier: MPL-2.0

package specrepo

import "slices"

// DefaultProtectedURLs are the canonical URLs of the public master spec repo.
// Publishing there goes through trunk, never through a local push.
var DefaultProtectedURLs = []GitURL{
	"https://github.com/CocoaPods/Specs.git",
	"http://github.com/CocoaPods/Specs.git",
}

// IsProtected reports whether any of remotes is one of DefaultProtectedURLs
// or of extra. The canonical URLs are always checked; extra only adds to them.
// Matching is case-insensitive and ignores a trailing slash or ".git".
func IsProtected(remotes, extra []GitURL) bool {
	for _, remote := range remotes {
		if slices.ContainsFunc(DefaultProtectedURLs, remote.Equal) || slices.ContainsFunc(extra, remote.Equal) {
			return true
		}
	}
	return false
}
