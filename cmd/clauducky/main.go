// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/subcreation/clauducky/cmd/clauducky/commands"
	"github.com/subcreation/clauducky/cmd/clauducky/internal/clierr"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(clierr.ExitCodeOf(err))
	}
}
