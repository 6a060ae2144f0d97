package auth

import (
	"log/slog"

	"menumaster/config"
	"menumaster/internal/domain/constants"
	"menumaster/internal/domain/service"

	"github.com/pkg/errors"
)

// NewPasswordHasher selects the hasher named by auth.passwordHashing.
func NewPasswordHasher(cfg *config.Config, logger *slog.Logger) (service.PasswordHasher, error) {
	scheme := constants.PasswordHashingPlain
	cost := 0
	if cfg.Auth != nil {
		if cfg.Auth.PasswordHashing != "" {
			scheme = cfg.Auth.PasswordHashing
		}
		cost = cfg.Auth.BcryptCost
	}

	switch scheme {
	case constants.PasswordHashingPlain:
		logger.Warn("Passwords are stored in plain text", slog.String("auth.passwordHashing", scheme))

		return NewPlainHasher(), nil
	case constants.PasswordHashingBcrypt:
		return NewBcryptHasher(cost), nil
	default:
		return nil, errors.Errorf("unknown password hashing scheme: %s", scheme)
	}
}
