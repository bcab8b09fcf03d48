// SPDX-License-Identifier: MIT
// Command vf3 runs the (sub)graph isomorphism engine over a pattern/target
// file pair, or generates synthetic test graphs (see `vf3 generate --help`).
package main

import "github.com/vf3go/vf3/cmd/vf3/cmd"

func main() {
	cmd.Execute()
}
