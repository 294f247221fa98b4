package main

import (
	"os"

	"github.com/Torinad2/EZ-Pass/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
