// SPDX-License-Identifier: MPL-2.0

// Package config handles specpush configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/specpush/config.cue (or the XDG equivalent on
// Linux, ~/Library/Application Support/specpush/config.cue on macOS and
// %APPDATA%\specpush\config.cue on Windows). Every key can be overridden with a
// SPECPUSH_-prefixed environment variable, dots replaced by underscores
// (SPECPUSH_GIT_REMOTE).
//
// Config files are validated against the embedded CUE schema (config_schema.cue).
package config
