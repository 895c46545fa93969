package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-assistant/pkg/jwt"
)

func newTokenCmd(a *app) *cobra.Command {
	var (
		subject string
		scopes  []string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the HTTP API",
		Long: `Token signs a service token with JWT_SECRET. Without --scopes the token
carries every scope (` + "transcripts:read, transcripts:write, analyses:write" + `).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager := jwt.NewManager(a.cfg.JWT.Secret, a.cfg.JWT.Issuer, a.cfg.JWT.Expiry)
			token, err := manager.GenerateServiceToken(subject, scopes)
			if err != nil {
				return err
			}
			a.logger.Info("token issued",
				zap.String("subject", subject),
				zap.Strings("scopes", scopes),
				zap.Duration("expiry", manager.GetExpiry()),
			)
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "client id the token is issued to")
	cmd.Flags().StringSliceVar(&scopes, "scopes", nil, "comma separated scopes")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
