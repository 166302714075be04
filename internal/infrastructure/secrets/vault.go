package secrets

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"
	"go.uber.org/zap"
)

type cachedSecret struct {
	value     string
	expiresAt time.Time
}

// VaultClient wraps the Key Vault secrets client with a small TTL cache.
type VaultClient struct {
	client   *azsecrets.Client
	logger   *zap.Logger
	mu       sync.Mutex
	cache    map[string]cachedSecret
	cacheTTL time.Duration
}

var _ SecretGetter = (*VaultClient)(nil)

// NewVaultClient authenticates with DefaultAzureCredential (env vars, managed
// identity or the az CLI login).
func NewVaultClient(vaultName string, cacheTTL time.Duration, logger *zap.Logger) (*VaultClient, error) {
	if vaultName == "" {
		return nil, fmt.Errorf("vault name is required")
	}
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure credential: %w", err)
	}
	vaultURL := fmt.Sprintf("https://%s.vault.azure.net/", vaultName)
	client, err := azsecrets.NewClient(vaultURL, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Key Vault client: %w", err)
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	logger.Info("Azure Key Vault client initialized", zap.String("vault_url", vaultURL))
	return &VaultClient{client: client, logger: logger, cache: map[string]cachedSecret{}, cacheTTL: cacheTTL}, nil
}

func (v *VaultClient) GetSecret(ctx context.Context, name string) (string, error) {
	v.mu.Lock()
	if c, ok := v.cache[name]; ok && time.Now().Before(c.expiresAt) {
		v.mu.Unlock()
		return c.value, nil
	}
	v.mu.Unlock()

	resp, err := v.client.GetSecret(ctx, name, "", nil)
	if err != nil {
		v.logger.Error("Failed to get secret from Key Vault", zap.String("secret_name", name), zap.Error(err))
		return "", fmt.Errorf("failed to get secret '%s': %w", name, err)
	}
	if resp.Value == nil {
		return "", fmt.Errorf("secret '%s' has no value", name)
	}

	v.mu.Lock()
	v.cache[name] = cachedSecret{value: *resp.Value, expiresAt: time.Now().Add(v.cacheTTL)}
	v.mu.Unlock()
	return *resp.Value, nil
}
