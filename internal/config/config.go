package config

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

// The memory storage driver keeps orders in process memory. Nothing but the
// tests creates orders there, so LoadConfig refuses it in production.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	EnvProduction = "production"

	SandboxHost    = "https://api.sandbox.paynow.pl"
	ProductionHost = "https://api.paynow.pl"
)

type Config struct {
	Primary  Primary        `koanf:"primary"`
	Server   ServerConfig   `koanf:"server"`
	Storage  StorageConfig  `koanf:"storage"`
	Database DatabaseConfig `koanf:"database" validate:"-"`
	Gateway  GatewayConfig  `koanf:"gateway"`
	Shop     ShopConfig     `koanf:"shop"`
	Retry    RetryConfig    `koanf:"retry"`
	Logger   LoggerConfig   `koanf:"logger"`
	Worker   WorkerConfig   `koanf:"worker"`
}

type WorkerConfig struct {
	Interval   time.Duration `koanf:"interval" validate:"required"`
	BatchSize  int           `koanf:"batch_size" validate:"required"`
	StaleAfter time.Duration `koanf:"stale_after" validate:"required"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

type StorageConfig struct {
	Driver string `koanf:"driver" validate:"required,oneof=postgres memory"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

// GatewayConfig holds the paynow merchant credentials for both environments
// and the transaction options.
type GatewayConfig struct {
	APIKey              string        `koanf:"api_key"`
	APISignature        string        `koanf:"api_signature"`
	SandboxAPIKey       string        `koanf:"sandbox_api_key"`
	SandboxAPISignature string        `koanf:"sandbox_api_signature"`
	UseSandbox          bool          `koanf:"use_sandbox"`
	BaseURL             string        `koanf:"base_url"`
	Timeout             time.Duration `koanf:"timeout" validate:"required"`
	ValidityMinutes     int           `koanf:"validity_minutes" validate:"min=0"`
	SendCart            bool          `koanf:"send_cart"`
	Level0              bool          `koanf:"level0"`
	ConfigureShopURLs   bool          `koanf:"configure_shop_urls"`
}

// ShopConfig locates the storefront pages customers are sent back to and the
// public address of this service.
type ShopConfig struct {
	PublicURL  string `koanf:"public_url" validate:"required,url"`
	CartURL    string `koanf:"cart_url" validate:"required"`
	SuccessURL string `koanf:"success_url" validate:"required"`
	FailureURL string `koanf:"failure_url" validate:"required"`
}

type RetryConfig struct {
	BaseDelay  time.Duration `koanf:"base_delay"`
	MaxRetries int32         `koanf:"max_retries"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=json text"`
}

var defaults = map[string]any{
	"primary.env":                 "development",
	"storage.driver":              StorageDriverPostgres,
	"gateway.use_sandbox":         true,
	"gateway.timeout":             "10s",
	"shop.cart_url":               "/checkout/cart",
	"shop.success_url":            "/checkout/onepage/success",
	"shop.failure_url":            "/checkout/onepage/failure",
	"retry.base_delay":            "500ms",
	"retry.max_retries":           3,
	"logger.level":                "info",
	"logger.format":               "json",
	"worker.interval":             "1m",
	"worker.batch_size":           50,
	"worker.stale_after":          "15m",
	"server.read_timeout":         "15s",
	"server.write_timeout":        "15s",
	"server.idle_timeout":         "60s",
	"database.ssl_mode":           "disable",
	"database.max_open_conns":     10,
	"database.max_idle_conns":     2,
	"database.conn_max_lifetime":  "1h",
	"database.conn_max_idle_time": "30m",
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		logger.Error("failed to load config defaults", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider("PAYNOW_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "PAYNOW_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	if mainConfig.Storage.Driver == StorageDriverMemory && mainConfig.Primary.Env == EnvProduction {
		err := errors.New("memory storage driver is for development and tests only")
		logger.Error("storage config validation failed", "error", err)
		return nil, err
	}

	if mainConfig.Storage.Driver == StorageDriverPostgres {
		if err := validate.Struct(mainConfig.Database); err != nil {
			logger.Error("database config validation failed", "error", err)
			return nil, err
		}
	}

	if err := mainConfig.Gateway.check(); err != nil {
		logger.Error("gateway config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

func (c *GatewayConfig) check() error {
	if c.ActiveAPIKey() == "" {
		return errors.New("api key for the selected paynow environment is required")
	}
	if c.SignatureKey() == "" {
		return errors.New("api signature for the selected paynow environment is required")
	}
	return nil
}

// Host returns the paynow API host for the selected environment.
func (c *GatewayConfig) Host() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	if c.UseSandbox {
		return SandboxHost
	}
	return ProductionHost
}

func (c *GatewayConfig) ActiveAPIKey() string {
	if c.UseSandbox {
		return c.SandboxAPIKey
	}
	return c.APIKey
}

// SignatureKey returns the merchant signature key for the selected environment.
func (c *GatewayConfig) SignatureKey() string {
	if c.UseSandbox {
		return c.SandboxAPISignature
	}
	return c.APISignature
}

// ValiditySeconds converts the configured validity to seconds. Values outside
// 1..1440 minutes disable expiry.
func (c *GatewayConfig) ValiditySeconds() int {
	if c.ValidityMinutes < 1 || c.ValidityMinutes > 1440 {
		return 0
	}
	return c.ValidityMinutes * 60
}

func (c *ShopConfig) ContinueURL() string     { return c.endpoint("/paynow/complete") }
func (c *ShopConfig) NotificationURL() string { return c.endpoint("/paynow/notify") }
func (c *ShopConfig) RetryURL() string        { return c.endpoint("/paynow/retry") }
func (c *ShopConfig) CancelURL() string       { return c.endpoint("/paynow/cancel") }

// CartPage, SuccessPage and FailurePage resolve the storefront pages. Paths
// are taken relative to the public URL; absolute URLs are used as is.
func (c *ShopConfig) CartPage() string    { return c.page(c.CartURL) }
func (c *ShopConfig) SuccessPage() string { return c.page(c.SuccessURL) }
func (c *ShopConfig) FailurePage() string { return c.page(c.FailureURL) }

func (c *ShopConfig) page(target string) string {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return target
	}
	return c.endpoint("/" + strings.TrimLeft(target, "/"))
}

func (c *ShopConfig) endpoint(path string) string {
	return strings.TrimRight(c.PublicURL, "/") + path
}
