package main

import (
	"os"

	"github.com/arthur-debert/desks/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
