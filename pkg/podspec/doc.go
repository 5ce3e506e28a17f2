// SPDX-License-Identifier: MPL-2.0

// Package podspec reads podspec descriptors: discovery of podspec files in a
// directory, decoding against the embedded CUE schema, and the path layout a
// podspec takes inside a spec repo.
//
// Two on-disk variants are recognised:
//
//   - Foo.podspec       the authored form, written in CUE
//   - Foo.podspec.json  the serialized form, plain JSON
//
// Both decode through the same schema since JSON is valid CUE.
package podspec
