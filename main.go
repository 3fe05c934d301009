package main

import (
	"os"

	"imgconv/internal/cli"
)

func main() {
	if err := cli.RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
