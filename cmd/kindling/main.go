// SPDX-License-Identifier: MPL-2.0

// Command kindling is a bootstrap launcher: it compiles the source tree
// anchored next to its own executable and runs the program's entry function
// inside the same process, with no separate build step.
package main

func main() {
	Execute()
}
