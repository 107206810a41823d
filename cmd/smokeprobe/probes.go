package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hamed0406/smokeprobe/internal/probe"
)

func (a *app) completionProbe() probe.Prober {
	return probe.NewCompletionProbe(a.cfg.APIKey, a.cfg.Model, a.cfg.Prompt, a.cfg.ProviderURL)
}

func (a *app) trackingProbe() probe.Prober {
	return probe.NewTrackingProbe(a.cfg.EndpointURL, a.cfg.Payload)
}

// completion probe
func newCompletionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "completion",
		Short: "Send one prompt to the Gemini API and print the reply",
		Long: `Reads the credential from GEMINI_API_KEY, falling back to GOOGLE_API_KEY.
Without a credential nothing is sent.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			res := probe.NewRunner(a.log, a.completionProbe()).Run(cmd.Context())
			probe.Report(a.stdout, res[0])
		},
	}
}

// track probe
func newTrackCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "track",
		Short: "POST a manual track-view event to the local candidate service",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			a.log.Info("track_request",
				zap.String("url", a.cfg.EndpointURL),
				zap.Int("candidate_id", a.cfg.Payload.CandidateID),
				zap.String("interaction_type", a.cfg.Payload.InteractionType),
			)
			res := probe.NewRunner(a.log, a.trackingProbe()).Run(cmd.Context())
			probe.Report(a.stdout, res[0])
		},
	}
}

func newAllCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every probe once, one after another",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			results := probe.NewRunner(a.log, a.completionProbe(), a.trackingProbe()).Run(cmd.Context())
			for _, res := range results {
				fmt.Fprintf(a.stdout, "== %s ==\n", res.Probe)
				probe.Report(a.stdout, res)
			}
			if err := probe.Combined(results); err != nil {
				a.log.Warn("probes_failed",
					zap.Int("failed", len(multierr.Errors(err))),
					zap.Int("total", len(results)),
					zap.Error(err),
				)
				return
			}
			a.log.Info("probes_ok", zap.Int("total", len(results)))
		},
	}
}
