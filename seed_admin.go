package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"rozgaar-gb-server/config"
	"rozgaar-gb-server/services"
)

// seedAdmin makes sure the configured admin account exists and carries the
// admin flag. Without ADMIN_EMAIL nothing is seeded.
func seedAdmin(auth *services.AuthService, cfg config.AdminConfig, log *zap.Logger) error {
	if cfg.Email == "" {
		log.Warn("ADMIN_EMAIL is not set; admin routes are reachable only through the metadata flag")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := auth.EnsureAdmin(ctx, cfg.Email, cfg.Password); err != nil {
		return err
	}
	log.Info("admin account ready", zap.String("email", cfg.Email))
	return nil
}
