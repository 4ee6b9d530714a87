package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/clubpro-dev/qistadmin/internal/logger"
	"github.com/clubpro-dev/qistadmin/internal/sandbox"
)

func newDemoCmd() *cobra.Command {
	var (
		addr   string
		secret string
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the in-memory demo backend",
		Long: `Starts an in-memory Admin API with seeded data so the console can be
tried without a real backend. Nothing is persisted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := sandbox.New(secret)
			fmt.Fprintf(cmd.OutOrStdout(), "demo backend on %s\n", addr)
			fmt.Fprintf(cmd.OutOrStdout(), "login with %s / %s\n", sandbox.DemoEmail, sandbox.DemoPassword)
			logger.L.Info("demo backend starting", "addr", addr)
			hs := &http.Server{
				Addr:              addr,
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}
			return hs.ListenAndServe()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8880", "listen address")
	cmd.Flags().StringVar(&secret, "secret", "qistadmin-demo", "JWT signing secret")
	return cmd
}
