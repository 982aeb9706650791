package main

import (
	"os"

	"github.com/dshills/empathic/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
