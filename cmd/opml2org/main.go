// Command opml2org converts an OPML outline read from stdin into Org mode text.
package main

import (
	"os"

	"github.com/fjglira/opml2org/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
