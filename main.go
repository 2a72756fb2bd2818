// SPDX-License-Identifier: MPL-2.0

package main

import cmd "ambuild-cli/cmd/ambuild"

func main() {
	cmd.Execute()
}
