// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the specpush command-line interface.
package cmd
