// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides the shared CUE decoding flow used for podspecs and
// the specpush configuration file.
//
// Every CUE document specpush reads goes through the same three steps:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify it with a schema definition
//  3. Validate and decode into a Go value
//
// # Usage
//
//	//go:embed podspec_schema.cue
//	var schema []byte
//
//	result, err := cueutil.Decode[Specification](
//	    schema,
//	    data,
//	    "#Podspec",
//	    cueutil.WithFilename("Foo.podspec"),
//	    cueutil.WithConcrete(true),
//	)
//	if err != nil {
//	    return nil, err // message carries the JSON path of the offending field
//	}
//	return result.Value, nil
//
// JSON is a subset of CUE, so `.podspec.json` files decode through the same path.
package cueutil
