// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/specpush/specpush/cmd/specpush"

func main() {
	cmd.Execute()
}
