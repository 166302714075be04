// Package secrets resolves credentials either from environment variables or
// from Azure Key Vault.
package secrets

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
)

type Source string

const (
	SourceEnvironment Source = "environment"
	SourceVault       Source = "vault"
)

// SecretGetter fetches one named secret from a backing store.
type SecretGetter interface {
	GetSecret(ctx context.Context, name string) (string, error)
}

// Provider reads secrets from the configured source. In vault mode an
// explicitly set environment variable still wins, so operators can override
// a single value without touching the vault.
type Provider struct {
	source Source
	vault  SecretGetter
	logger *zap.Logger
}

func NewEnvironmentProvider(logger *zap.Logger) *Provider {
	return &Provider{source: SourceEnvironment, logger: logger}
}

func NewVaultProvider(vault SecretGetter, logger *zap.Logger) (*Provider, error) {
	if vault == nil {
		return nil, fmt.Errorf("vault client is required for source %q", SourceVault)
	}
	return &Provider{source: SourceVault, vault: vault, logger: logger}, nil
}

func (p *Provider) Source() Source { return p.source }

func (p *Provider) GetSecretOrEnv(ctx context.Context, secretName, envName string) (string, error) {
	if v := os.Getenv(envName); v != "" {
		p.logger.Debug("Using environment variable override", zap.String("env_name", envName))
		return v, nil
	}
	if p.source != SourceVault {
		return "", fmt.Errorf("environment variable '%s' not set", envName)
	}
	return p.vault.GetSecret(ctx, secretName)
}

// Resolve overwrites *dst with the secret when one is found and leaves it
// untouched otherwise.
func (p *Provider) Resolve(ctx context.Context, dst *string, secretName, envName string) {
	v, err := p.GetSecretOrEnv(ctx, secretName, envName)
	if err != nil {
		p.logger.Debug("Secret not resolved, keeping configured value",
			zap.String("secret_name", secretName),
			zap.Error(err),
		)
		return
	}
	if v != "" {
		*dst = v
	}
}
