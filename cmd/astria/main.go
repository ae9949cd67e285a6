package main

import (
	"fmt"
	"os"

	"github.com/astria-api/astria-go/cmd/astria/commands"
)

var (
	commit = "none"
	date   = "unknown"
)

func main() {
	rootCmd := commands.NewRootCommand(commit, date)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
