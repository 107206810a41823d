package main

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hamed0406/smokeprobe/internal/config"
)

func newPreflightCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preflight",
		Short: "Show the resolved configuration without calling anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return preflight(a)
		},
	}
}

func preflight(a *app) error {
	warn := func(msg string) { fmt.Fprintln(a.stdout, "⚠", msg) }
	ok := func(msg string) { fmt.Fprintln(a.stdout, "✔", msg) }
	cfg := a.cfg

	if cfg.APIKey == "" {
		warn("no credential found in " + strings.Join(config.CredentialEnvVars, " or ") + "; completion will not call the provider.")
	} else {
		ok("credential present (" + mask(cfg.APIKey) + ")")
	}

	ok("model=" + cfg.Model)
	if cfg.ProviderURL != "" {
		ok("provider base URL=" + cfg.ProviderURL)
	}

	if _, err := url.ParseRequestURI(cfg.EndpointURL); err != nil {
		return fmt.Errorf("tracking endpoint %q: %w", cfg.EndpointURL, err)
	}
	ok("track target=" + cfg.EndpointURL)

	if cfg.StubAddr == "" {
		return errors.New("stub address is empty")
	}
	ok("stub addr=" + cfg.StubAddr)
	ok("log dir=" + cfg.LogDir)

	ok("preflight passed")
	return nil
}

// mask keeps the first and last two characters of a secret.
func mask(secret string) string {
	if len(secret) <= 6 {
		return strings.Repeat("*", len(secret))
	}
	return secret[:2] + strings.Repeat("*", len(secret)-4) + secret[len(secret)-2:]
}
