// blockrm - Marker Block Remover
//
// blockrm deletes a marker-delimited block of lines from a markup file and
// rewrites the file in place.
package main

import (
	"os"

	"github.com/ccollicutt/blockrm/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
