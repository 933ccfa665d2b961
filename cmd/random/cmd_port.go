package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Yandex-Practicum/go-ftracker/internal/random"
)

func newCmdUnusedPort() *cobra.Command {
	return &cobra.Command{
		Use:   "unused-port",
		Short: "finds and returns random unused port number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			port, err := random.UnusedPort()
			if err != nil {
				return fmt.Errorf("cannot find unused port: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), port)
			return err
		},
	}
}
