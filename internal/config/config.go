// Package config loads application settings from .env, an optional
// config.json and environment variables, in increasing order of precedence.
package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"clientportal/internal/infrastructure/secrets"
)

type Config struct {
	App       AppConfig
	Logging   LoggingConfig
	Server    ServerConfig
	DynamoDB  DynamoDBConfig
	Store     StoreConfig
	Payments  PaymentsConfig
	CRM       CRMConfig
	Auth      AuthConfig
	Storage   StorageConfig
	Secrets   SecretsConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        int
	// BaseURL is the public origin used to build links sent to clients.
	BaseURL string
}

type LoggingConfig struct {
	Level  string
	Format string
}

type ServerConfig struct {
	ReadTimeout   int
	WriteTimeout  int
	EnableSwagger bool
}

type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	Table           string
	AccessKeyID     string
	SecretAccessKey string
}

type StoreConfig struct {
	// Backend is "dynamodb" or "memory".
	Backend string
}

type PaymentsConfig struct {
	AccessToken   string
	WebhookSecret string
	Currency      string
	Mock          bool
}

type CRMConfig struct {
	BaseURL    string
	APIKey     string
	LocationID string
	Timeout    int
}

type AuthConfig struct {
	AdminPassword  string
	TeamPassword   string
	CookieSecret   string
	CookieTTLHours int
	SecureCookies  bool
}

type StorageConfig struct {
	Mode             string
	LocalBasePath    string
	ConnectionString string
	Container        string
	MaxUploadSizeMB  int64
}

type SecretsConfig struct {
	Source       string
	KeyVaultName string
	CacheTTL     int
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerMinute int
}

type CORSConfig struct {
	AllowedOrigins []string
}

func (s *ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

func (s *ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

func (c *CRMConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

func (a *AuthConfig) CookieTTL() time.Duration {
	return time.Duration(a.CookieTTLHours) * time.Hour
}

// Load reads configuration without contacting any secret store.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Names shared with the AWS and MercadoPago tooling.
	if cfg.DynamoDB.Region == "" {
		cfg.DynamoDB.Region = v.GetString("AWS_REGION")
	}
	if cfg.DynamoDB.Endpoint == "" {
		cfg.DynamoDB.Endpoint = v.GetString("DYNAMODB_ENDPOINT")
	}
	if cfg.Payments.AccessToken == "" {
		cfg.Payments.AccessToken = v.GetString("MERCADOPAGO_ACCESS_TOKEN")
	}
	if cfg.Secrets.KeyVaultName == "" {
		cfg.Secrets.KeyVaultName = v.GetString("AZURE_KEY_VAULT_NAME")
	}
	if isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")) {
		cfg.Payments.Mock = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadWithSecrets loads configuration and, when secrets.source is "vault",
// replaces credentials with values held in Azure Key Vault.
func LoadWithSecrets(ctx context.Context, logger *zap.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if secrets.Source(cfg.Secrets.Source) != secrets.SourceVault {
		logger.Info("Using environment variables for secrets", zap.String("environment", cfg.App.Environment))
		return cfg, nil
	}
	if cfg.Secrets.KeyVaultName == "" {
		return nil, fmt.Errorf("AZURE_KEY_VAULT_NAME is required when secrets.source=vault")
	}

	vault, err := secrets.NewVaultClient(cfg.Secrets.KeyVaultName, time.Duration(cfg.Secrets.CacheTTL)*time.Second, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize secrets provider: %w", err)
	}
	provider, err := secrets.NewVaultProvider(vault, logger)
	if err != nil {
		return nil, err
	}
	ApplySecrets(ctx, cfg, provider)
	logger.Info("Secrets loaded from vault", zap.String("key_vault_name", cfg.Secrets.KeyVaultName))
	return cfg, nil
}

// ApplySecrets resolves every credential field through provider.
func ApplySecrets(ctx context.Context, cfg *Config, provider *secrets.Provider) {
	provider.Resolve(ctx, &cfg.Auth.AdminPassword, "admin-password", "AUTH_ADMINPASSWORD")
	provider.Resolve(ctx, &cfg.Auth.TeamPassword, "team-password", "AUTH_TEAMPASSWORD")
	provider.Resolve(ctx, &cfg.Auth.CookieSecret, "cookie-secret", "AUTH_COOKIESECRET")
	provider.Resolve(ctx, &cfg.Payments.AccessToken, "mercadopago-access-token", "MERCADOPAGO_ACCESS_TOKEN")
	provider.Resolve(ctx, &cfg.Payments.WebhookSecret, "mercadopago-webhook-secret", "PAYMENTS_WEBHOOKSECRET")
	provider.Resolve(ctx, &cfg.CRM.APIKey, "crm-api-key", "CRM_APIKEY")
	provider.Resolve(ctx, &cfg.Storage.ConnectionString, "storage-connection-string", "STORAGE_CONNECTIONSTRING")
	provider.Resolve(ctx, &cfg.DynamoDB.AccessKeyID, "aws-access-key-id", "AWS_ACCESS_KEY_ID")
	provider.Resolve(ctx, &cfg.DynamoDB.SecretAccessKey, "aws-secret-access-key", "AWS_SECRET_ACCESS_KEY")
}

func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid app.port %d", c.App.Port)
	}
	switch c.Store.Backend {
	case "dynamodb", "memory":
	default:
		return fmt.Errorf("invalid store.backend %q (want dynamodb or memory)", c.Store.Backend)
	}
	switch c.Storage.Mode {
	case "local", "azure":
	default:
		return fmt.Errorf("invalid storage.mode %q (want local or azure)", c.Storage.Mode)
	}
	switch secrets.Source(c.Secrets.Source) {
	case secrets.SourceEnvironment, secrets.SourceVault:
	default:
		return fmt.Errorf("invalid secrets.source %q", c.Secrets.Source)
	}
	return nil
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "Client Portal API")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.baseURL", "http://localhost:3000")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("server.readTimeout", 30)
	v.SetDefault("server.writeTimeout", 30)
	v.SetDefault("server.enableSwagger", true)

	v.SetDefault("dynamodb.region", "")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.table", "client_portal")
	v.SetDefault("dynamodb.accessKeyID", "")
	v.SetDefault("dynamodb.secretAccessKey", "")

	v.SetDefault("store.backend", "dynamodb")

	v.SetDefault("payments.accessToken", "")
	v.SetDefault("payments.webhookSecret", "")
	v.SetDefault("payments.currency", "BRL")
	v.SetDefault("payments.mock", false)

	v.SetDefault("crm.baseURL", "")
	v.SetDefault("crm.apiKey", "")
	v.SetDefault("crm.locationID", "")
	v.SetDefault("crm.timeout", 10)

	v.SetDefault("auth.adminPassword", "")
	v.SetDefault("auth.teamPassword", "")
	v.SetDefault("auth.cookieSecret", "")
	v.SetDefault("auth.cookieTTLHours", 24)
	v.SetDefault("auth.secureCookies", false)

	v.SetDefault("storage.mode", "local")
	v.SetDefault("storage.localBasePath", "./storage")
	v.SetDefault("storage.connectionString", "")
	v.SetDefault("storage.container", "portal-content")
	v.SetDefault("storage.maxUploadSizeMB", 25)

	v.SetDefault("secrets.source", "environment")
	v.SetDefault("secrets.keyVaultName", "")
	v.SetDefault("secrets.cacheTTL", 300)

	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.requestsPerMinute", 120)

	v.SetDefault("cors.allowedOrigins", []string{"http://localhost:3000"})
}
