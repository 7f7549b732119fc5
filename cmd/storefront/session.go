package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LokeshReddy2201/FUTURE-FS-03/session"
)

func newSessionCmd(a *app) *cobra.Command {
	var events bool
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Read cart and browsing commands from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := session.Config{
				Catalog:     a.catalog,
				DefaultSort: a.sort,
				Logger:      a.logger,
				Out:         cmd.OutOrStdout(),
			}
			if events {
				cfg.Events = session.EventLogger(cmd.ErrOrStderr())
			}
			s := session.New(cfg)
			a.logger.Info("session started", zap.String("cart_id", s.Cart.ID()))
			fmt.Fprintln(cmd.OutOrStdout(), "Type 'help' for commands.")

			err := s.Run(cmd.Context(), cmd.InOrStdin())
			a.logger.Info("session ended",
				zap.String("cart_id", s.Cart.ID()),
				zap.Int64("items", s.Cart.TotalCount()),
				zap.Int64("total", s.Cart.TotalPrice()))
			return err
		},
	}
	cmd.Flags().BoolVar(&events, "events", false, "print every cart event to stderr")
	return cmd
}
