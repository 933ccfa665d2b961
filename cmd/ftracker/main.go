package main

//go:generate go build -o=../../bin/ftracker

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Yandex-Practicum/go-ftracker/internal/config"
	"github.com/Yandex-Practicum/go-ftracker/internal/log"
)

func main() {
	command, err := NewFtrackerCommand()
	if err != nil {
		os.Stderr.WriteString("ftracker: " + err.Error() + "\n")
		os.Exit(2)
	}
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewFtrackerCommand builds the root command. Without a subcommand it
// behaves as "report".
func NewFtrackerCommand() (*cobra.Command, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	logLevel := cfg.LogLevel
	report := NewCmdReport(cfg)

	cmd := &cobra.Command{
		Use:   "ftracker",
		Short: "ftracker calculates distance, speed and calories of a training.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zap.ReplaceGlobals(log.InitLog(log.Level(logLevel)))
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
		RunE:         report.RunE,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "Log level (debug, info, warn, error).")
	// report flags are accepted by the root command as well
	cmd.Flags().AddFlagSet(report.Flags())

	cmd.AddCommand(report)
	cmd.AddCommand(NewCmdServe(cfg))
	return cmd, nil
}
