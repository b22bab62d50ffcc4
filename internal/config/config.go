package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// InvoiceCascade policies for customer deletion. "keep" is the legacy
// behavior: invoices stay behind referencing a customer that no longer
// exists.
const (
	CascadeKeep   = "keep"
	CascadeDelete = "cascade"
	CascadeBlock  = "block"
)

type Config struct {
	Server struct {
		Port               int      `mapstructure:"port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
		CorsAllowedMethods []string `mapstructure:"cors_allowed_methods"`
		CorsAllowedHeaders []string `mapstructure:"cors_allowed_headers"`
	} `mapstructure:"server"`

	Data struct {
		Dir string `mapstructure:"dir"`
	} `mapstructure:"data"`

	Ledger struct {
		InvoiceCascade string `mapstructure:"invoice_cascade"`
	} `mapstructure:"ledger"`

	OpenAI struct {
		APIKey string `mapstructure:"api_key"`
		Model  string `mapstructure:"model"`
	} `mapstructure:"openai"`

	Redis struct {
		Addr        string `mapstructure:"addr"`
		Password    string `mapstructure:"password"`
		StatsTTLSec int    `mapstructure:"stats_ttl_sec"`
	} `mapstructure:"redis"`
}

func Load() *Config {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")

	// Auto bind environment variables
	v.AutomaticEnv()

	// Set sensible defaults (binary works without config file)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("server.cors_allowed_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("server.cors_allowed_headers", []string{"Content-Type"})
	v.SetDefault("data.dir", "data")
	v.SetDefault("ledger.invoice_cascade", CascadeKeep)
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.stats_ttl_sec", 60)

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		log.Printf("[Config] No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("config unmarshal error: %v", err)
	}

	// Environment overrides for the common knobs
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		cfg.Data.Dir = dir
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.OpenAI.APIKey = key
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}

	switch cfg.Ledger.InvoiceCascade {
	case CascadeKeep, CascadeDelete, CascadeBlock:
	default:
		log.Printf("[Config] Unknown ledger.invoice_cascade %q, using %q", cfg.Ledger.InvoiceCascade, CascadeKeep)
		cfg.Ledger.InvoiceCascade = CascadeKeep
	}

	return &cfg
}
