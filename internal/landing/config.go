package landing

import (
	"fmt"
	"strings"
	"time"

	"github.com/MarkoPoloResearchLab/payfront/pkg/checkout"
	"github.com/go-playground/validator/v10"
)

const (
	defaultListenAddr      = ":3001"
	defaultNetwork         = "devnet"
	defaultFlowMode        = "transfer"
	defaultLogLevel        = "info"
	defaultMerchantLabel   = "Santa Rose"
	defaultShutdownTimeout = 5 * time.Second

	routeIndex   = "/"
	routeSession = "/api/session"
	routeHealth  = "/healthz"
	routeMetrics = "/metrics"
)

// Config aggregates runtime settings for the landing service.
type Config struct {
	ListenAddr             string `validate:"required"`
	Network                string `validate:"required,oneof=devnet mainnet-beta"`
	ConnectWallet          bool
	FlowMode               string        `validate:"required,oneof=transfer transaction"`
	TransactionRequestPath string        `validate:"required,startswith=/,excludesall=:*"`
	MerchantLabel          string        `validate:"required"`
	LogLevel               string        `validate:"required,oneof=debug info warn error"`
	ShutdownTimeout        time.Duration `validate:"gt=0"`
}

var configValidator = validator.New()

// Validate applies defaults and ensures the configuration contains sane values.
func (cfg *Config) Validate() error {
	cfg.ListenAddr = defaultIfEmpty(cfg.ListenAddr, defaultListenAddr)
	cfg.Network = strings.ToLower(defaultIfEmpty(cfg.Network, defaultNetwork))
	if cfg.Network == "mainnet" {
		cfg.Network = string(checkout.NetworkMainnet)
	}
	cfg.FlowMode = strings.ToLower(defaultIfEmpty(cfg.FlowMode, defaultFlowMode))
	cfg.TransactionRequestPath = defaultIfEmpty(cfg.TransactionRequestPath, checkout.DefaultTransactionRequestPath)
	cfg.MerchantLabel = defaultIfEmpty(cfg.MerchantLabel, defaultMerchantLabel)
	cfg.LogLevel = strings.ToLower(defaultIfEmpty(cfg.LogLevel, defaultLogLevel))
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	if err := configValidator.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	switch cfg.TransactionRequestPath {
	case routeIndex, routeSession, routeHealth, routeMetrics, checkout.DefaultToken(checkout.NetworkDevnet).Icon:
		return fmt.Errorf("transaction request path %q collides with a built-in route", cfg.TransactionRequestPath)
	}
	return nil
}

// Settings converts the configuration into bootstrapper settings.
func (cfg Config) Settings() (checkout.Settings, error) {
	network, err := checkout.ParseNetwork(cfg.Network)
	if err != nil {
		return checkout.Settings{}, err
	}
	flowMode, err := checkout.ParseFlowMode(cfg.FlowMode)
	if err != nil {
		return checkout.Settings{}, err
	}
	return checkout.Settings{
		ConnectWallet:          cfg.ConnectWallet,
		Network:                network,
		FlowMode:               flowMode,
		TransactionRequestPath: cfg.TransactionRequestPath,
	}, nil
}

func defaultIfEmpty(value string, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}
