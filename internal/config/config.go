package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"
)

type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Auth     AuthConfig
	Checkout CheckoutConfig
}

type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type StorageConfig struct {
	Dir string `env:"STORAGE_DIR" envDefault:"./data"`
}

type AuthConfig struct {
	// SimulatedLatency mimics the round trip of a real auth backend.
	SimulatedLatency time.Duration `env:"AUTH_SIMULATED_LATENCY" envDefault:"1s"`
	DefaultAvatar    string        `env:"AUTH_DEFAULT_AVATAR" envDefault:"https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-4.0.3&auto=format&fit=crop&w=200&q=80"`
}

type CheckoutConfig struct {
	FreeShippingOver string `env:"CHECKOUT_FREE_SHIPPING_OVER" envDefault:"50"`
	FlatShipping     string `env:"CHECKOUT_FLAT_SHIPPING" envDefault:"5.99"`
	TaxRate          string `env:"CHECKOUT_TAX_RATE" envDefault:"0.08"`
}

func (c CheckoutConfig) FreeShippingThreshold() decimal.Decimal {
	return decimal.RequireFromString(c.FreeShippingOver)
}

func (c CheckoutConfig) FlatShippingRate() decimal.Decimal {
	return decimal.RequireFromString(c.FlatShipping)
}

func (c CheckoutConfig) Tax() decimal.Decimal {
	return decimal.RequireFromString(c.TaxRate)
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	for _, raw := range []string{cfg.Checkout.FreeShippingOver, cfg.Checkout.FlatShipping, cfg.Checkout.TaxRate} {
		if _, err := decimal.NewFromString(raw); err != nil {
			return nil, fmt.Errorf("parse checkout rate %q: %w", raw, err)
		}
	}
	return cfg, nil
}
