package main

//go:generate go build -o=../../bin/random

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRandomCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRandomCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "random",
		Short:        "random is a tool to generate various random values.",
		SilenceUsage: true,
	}
	cmd.AddCommand(newCmdUnusedPort())
	cmd.AddCommand(newCmdPackages())
	return cmd
}
