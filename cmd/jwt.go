package main

import (
	"context"
	"fmt"
	"time"

	"a11yscanner/internal/api/handler/v1handler"
	"a11yscanner/internal/config"
	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that generates a signed RS256 JWT
// for a given subject (user ID), capabilities and TTL using the configured private key.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			subject, _ := cmd.Flags().GetString("subject")
			TTL, _ := cmd.Flags().GetDuration("ttl")
			rawCaps, _ := cmd.Flags().GetStringSlice("capability")

			caps := make([]domain.Capability, 0, len(rawCaps))
			for _, c := range rawCaps {
				capability := domain.Capability(c)
				if capability != domain.CapabilityEditPosts && capability != domain.CapabilityManageOptions {
					logger.Fatal(context.Background(), "unknown capability", zap.String("capability", c))
				}
				caps = append(caps, capability)
			}

			key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.JWT.PrivateKey))
			if err != nil {
				logger.Fatal(context.Background(), "could not parse RSA private key", zap.Error(err))
			}

			claims := v1handler.Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   subject,
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(TTL)),
					IssuedAt:  jwt.NewNumericDate(time.Now()),
					NotBefore: jwt.NewNumericDate(time.Now()),
				},
				Capabilities: caps,
			}
			token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
			signed, err := token.SignedString(key)
			if err != nil {
				logger.Fatal(context.Background(), "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (e.g., user ID)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	cmd.Flags().StringSlice("capability", []string{string(domain.CapabilityManageOptions)},
		"Granted capabilities: edit_posts, manage_options")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
