package main

import (
	"os"

	"github.com/Ning0612/ecorp/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
