// Command hearthctl manages the hearth database from the command line.
package main

import (
	"os"

	"hearth/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
