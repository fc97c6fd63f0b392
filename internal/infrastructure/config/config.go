package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Log         LogConfig         `mapstructure:"log"`
	AWS         AWSConfig         `mapstructure:"aws"`
	Tables      TablesConfig      `mapstructure:"tables"`
	Redis       RedisConfig       `mapstructure:"redis"`
	MinIO       MinIOConfig       `mapstructure:"minio"`
	MercadoPago MercadoPagoConfig `mapstructure:"mercadopago"`
	Pricing     PricingConfig     `mapstructure:"pricing"`
}

type ServerConfig struct {
	Port    string `mapstructure:"port"`
	GinMode string `mapstructure:"gin_mode"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type AWSConfig struct {
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"access_key_id"`
	SecretAccessKey  string `mapstructure:"secret_access_key"`
	DynamoDBEndpoint string `mapstructure:"dynamodb_endpoint"`
}

type TablesConfig struct {
	Proposals     string `mapstructure:"proposals"`
	Configuration string `mapstructure:"configuration"`
	Payments      string `mapstructure:"payments"`
}

type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	AnalysisTTL  time.Duration `mapstructure:"analysis_ttl"`
	WorksheetTTL time.Duration `mapstructure:"worksheet_ttl"`
}

type MinIOConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

type MercadoPagoConfig struct {
	AccessToken     string `mapstructure:"access_token"`
	Mock            bool   `mapstructure:"mock"`
	TestPayerEmail  string `mapstructure:"test_payer_email"`
	TestPayerUserID string `mapstructure:"test_payer_user_id"`
}

// PricingConfig holds the calculator rates. Tax rates are fractions; ICMS
// rates are percentages.
type PricingConfig struct {
	SalesTaxRate     float64 `mapstructure:"sales_tax_rate"`
	RentalTaxRate    float64 `mapstructure:"rental_tax_rate"`
	ServiceTaxRate   float64 `mapstructure:"service_tax_rate"`
	OriginICMSRate   float64 `mapstructure:"origin_icms_rate"`
	FallbackICMSRate float64 `mapstructure:"fallback_icms_rate"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.gin_mode", "debug")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")
	v.SetDefault("aws.dynamodb_endpoint", "")

	v.SetDefault("tables.proposals", "proposals")
	v.SetDefault("tables.configuration", "configuration")
	v.SetDefault("tables.payments", "proposal_payments")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.analysis_ttl", 24*time.Hour)
	v.SetDefault("redis.worksheet_ttl", 7*24*time.Hour)

	v.SetDefault("minio.enabled", false)
	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.access_key", "minioadmin")
	v.SetDefault("minio.secret_key", "minioadmin")
	v.SetDefault("minio.bucket", "editais")
	v.SetDefault("minio.use_ssl", false)

	v.SetDefault("mercadopago.access_token", "")
	v.SetDefault("mercadopago.mock", false)
	v.SetDefault("mercadopago.test_payer_email", "")
	v.SetDefault("mercadopago.test_payer_user_id", "")

	v.SetDefault("pricing.sales_tax_rate", 0.15)
	v.SetDefault("pricing.rental_tax_rate", 0.15)
	v.SetDefault("pricing.service_tax_rate", 0.11)
	v.SetDefault("pricing.origin_icms_rate", 12.0)
	v.SetDefault("pricing.fallback_icms_rate", 7.0)
}

// Load reads .env, an optional config.toml (from ./config or .) and the
// environment, in increasing precedence. Environment keys are the upper-cased
// config keys with dots replaced by underscores, e.g. REDIS_ADDR.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	configName := "config"
	if name := os.Getenv("CONFIG_NAME"); name != "" {
		configName = name
	}
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		logrus.Debug("[config] no config file found; using defaults and environment")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	applyLegacyEnv(cfg)
	return cfg, nil
}

// applyLegacyEnv honours the variable names used by earlier deployments.
func applyLegacyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("DYNAMODB_ENDPOINT"); v != "" {
		cfg.AWS.DynamoDBEndpoint = v
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK"))) {
	case "1", "true", "yes", "on", "mock":
		cfg.MercadoPago.Mock = true
	}
}
