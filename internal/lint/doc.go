// SPDX-License-Identifier: MPL-2.0

// Package lint validates podspecs before they are published.
//
// A Validator is bound to one podspec file and the dependency sources it may
// resolve against. Validate reports internal failures (the file could not be
// read or decoded, the external linter could not be started) as errors;
// lint findings are collected as Results and summarised by Validated.
//
// Two validators are provided: SchemaValidator runs the built-in structural
// checks, CommandValidator delegates to an external linter command.
package lint
