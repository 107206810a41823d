package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hamed0406/smokeprobe/internal/stub"
)

func newStubCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stub",
		Short: "Serve a local stand-in for the candidate tracking endpoint",
		Long: `Serves POST /api/candidate-auth/track-view/{id} until interrupted, so
"smokeprobe track" has something to talk to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = a.cfg.StubAddr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return stub.NewServer(a.log).ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default $STUB_ADDR or 127.0.0.1:3001)")
	return cmd
}
