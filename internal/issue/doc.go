// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and a catalogue of known problems
// with Markdown remediation guidance, rendered for the terminal with glamour.
package issue
