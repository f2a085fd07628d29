package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/boxdrop-backend/internal/auth"
)

var tokenUser string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an access token for a user id (development only)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		userID, err := uuid.Parse(tokenUser)
		if err != nil {
			return fmt.Errorf("--user: %w", err)
		}

		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}

		token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL).
			GenerateAccessToken(userID)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUser, "user", "", "user id (uuid) placed in the token subject")
	_ = tokenCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(tokenCmd)
}
