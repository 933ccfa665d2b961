package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/Yandex-Practicum/go-ftracker/internal/api"
	"github.com/Yandex-Practicum/go-ftracker/internal/config"
	httptransport "github.com/Yandex-Practicum/go-ftracker/internal/transport/http"
)

type ServeOptions struct {
	Address         string
	MaxConnections  int
	ShutdownTimeout time.Duration
}

func DefaultServeOptions(cfg *config.Config) *ServeOptions {
	return &ServeOptions{
		Address:         cfg.Address,
		MaxConnections:  cfg.MaxConnections,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}
}

func NewCmdServe(cfg *config.Config) *cobra.Command {
	o := DefaultServeOptions(cfg)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve training reports over HTTP.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(args); err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return o.Run(ctx)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *ServeOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Address, "address", "a", o.Address, "Address to listen on.")
	fs.IntVar(&o.MaxConnections, "max-connections", o.MaxConnections, "Maximum number of simultaneous connections, 0 for no limit.")
	fs.DurationVar(&o.ShutdownTimeout, "shutdown-timeout", o.ShutdownTimeout, "Time to wait for in-flight requests on shutdown.")
}

func (o *ServeOptions) Validate(args []string) error {
	if o.Address == "" {
		return fmt.Errorf("address must not be empty")
	}
	if o.MaxConnections < 0 {
		return fmt.Errorf("max-connections must not be negative")
	}
	return nil
}

func (o *ServeOptions) Run(ctx context.Context) error {
	cfg := httptransport.ServerConfig{
		Address:         o.Address,
		MaxConnections:  o.MaxConnections,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: o.ShutdownTimeout,
	}

	ln, err := httptransport.Listen(cfg)
	if err != nil {
		return fmt.Errorf("creating listener: %w", err)
	}

	router := httptransport.NewRouter(zap.L(), api.NewHandler().RegisterRoutes)
	srv := httptransport.NewServer(cfg, router)
	return httptransport.Run(ctx, srv, ln, cfg.ShutdownTimeout)
}
