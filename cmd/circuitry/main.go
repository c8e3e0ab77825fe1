// SPDX-License-Identifier: MIT

// Command circuitry derives nets from grid circuit layouts and solves linear
// equation systems described in HCL scenario files.
package main

import "github.com/katalvlaran/circuitry/cmd/circuitry/cmd"

func main() {
	cmd.Execute()
}
