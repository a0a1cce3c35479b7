package main

import (
	"os"

	"daytrace/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
