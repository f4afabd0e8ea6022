package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/baharkarakas/accounts-backend/internal/auth"
	"github.com/baharkarakas/accounts-backend/internal/config"
)

// newTokenCmd mints an access token with the configured shared secret, for local testing
// against a running API. Production tokens come from the identity provider.
func newTokenCmd() *cobra.Command {
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token <account-id>",
		Short: "Print a signed access token for an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := uuid.Validate(args[0]); err != nil {
				return fmt.Errorf("account id: %w", err)
			}
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if cfg.Env == "prod" {
				return fmt.Errorf("token minting is disabled in prod")
			}
			tok, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer).Issue(args[0], ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 15*time.Minute, "token lifetime")
	return cmd
}
