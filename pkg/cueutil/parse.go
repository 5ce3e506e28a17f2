// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Result holds a decoded document together with its unified CUE value.
type Result[T any] struct {
	// Value is the decoded Go value.
	Value *T

	// Unified is the schema-unified CUE value. Callers use it to re-encode the
	// document (for example as JSON) without losing fields the Go type ignores.
	Unified cue.Value
}

// Decode compiles schema, unifies data with the definition at schemaPath,
// validates the result and decodes it into T.
func Decode[T any](schema, data []byte, schemaPath string, opts ...Option) (*Result[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	filename := o.filename
	if filename == "" {
		filename = "<input>"
	}

	if err := CheckFileSize(data, o.maxFileSize, filename); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return nil, FormatError(userValue.Err(), filename)
	}

	root := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if root.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, root.Err())
	}

	unified := root.Unify(userValue)

	var validateOpts []cue.Option
	if o.concrete {
		validateOpts = append(validateOpts, cue.Concrete(true))
	}
	if err := unified.Validate(validateOpts...); err != nil {
		return nil, FormatError(err, filename)
	}

	var value T
	if err := unified.Decode(&value); err != nil {
		return nil, FormatError(err, filename)
	}

	return &Result[T]{Value: &value, Unified: unified}, nil
}
