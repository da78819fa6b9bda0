package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aussiebroadwan/barcommun/pkg/jwtx"
)

// LoadVerificationKeys builds the key set and verifier for access tokens.
//
// The service never signs tokens. It trusts one issuer whose PEM encoded
// public key (Ed25519, P-256 or RSA) is read from cfg.PublicKeyFile and
// registered under cfg.KeyID.
func LoadVerificationKeys(cfg Config, logger *slog.Logger) (*jwtx.KeySet, jwtx.Verifier, error) {
	data, err := os.ReadFile(cfg.PublicKeyFile)
	if err != nil {
		return nil, nil, fmt.Errorf("read public key: %w", err)
	}

	keys := jwtx.NewKeySet()
	if err := keys.AddPEM(cfg.KeyID, data); err != nil {
		return nil, nil, fmt.Errorf("load public key: %w", err)
	}

	logger.Info("token verification key loaded",
		"kid", cfg.KeyID,
		"issuer", cfg.Issuer,
		"audience", cfg.Audience,
	)

	verifier := jwtx.NewVerifier(keys, jwtx.VerifyOptions{
		Issuer:   cfg.Issuer,
		Audience: cfg.Audience,
		Leeway:   cfg.TokenLeeway,
	})
	return keys, verifier, nil
}
