package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/root"
)

func main() {
	cmd := root.NewCmdRoot()
	if err := cmd.Execute(); err != nil {
		_, _ = color.New(color.FgRed).Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
}
