package landing

import (
	"testing"
	"time"

	"github.com/MarkoPoloResearchLab/payfront/pkg/checkout"
)

func TestConfigValidateAppliesDefaults(test *testing.T) {
	test.Parallel()
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListenAddr != defaultListenAddr || cfg.Network != defaultNetwork || cfg.FlowMode != defaultFlowMode {
		test.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.TransactionRequestPath != checkout.DefaultTransactionRequestPath || cfg.LogLevel != defaultLogLevel {
		test.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ShutdownTimeout != 5*time.Second || cfg.ConnectWallet {
		test.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestConfigValidateRejectsInvalidValues(test *testing.T) {
	test.Parallel()
	cases := []struct {
		name string
		cfg  Config
	}{
		{name: "network", cfg: Config{Network: "testnet"}},
		{name: "flow mode", cfg: Config{FlowMode: "both"}},
		{name: "log level", cfg: Config{LogLevel: "trace"}},
		{name: "relative path", cfg: Config{TransactionRequestPath: "api"}},
		{name: "colliding path", cfg: Config{TransactionRequestPath: "/api/session"}},
		{name: "icon path", cfg: Config{TransactionRequestPath: "/icons/usdc.svg"}},
		{name: "catch-all path", cfg: Config{FlowMode: "transaction", TransactionRequestPath: "/*rest"}},
		{name: "parameter path", cfg: Config{FlowMode: "transaction", TransactionRequestPath: "/api/:x"}},
	}
	for _, tc := range cases {
		tc := tc
		test.Run(tc.name, func(test *testing.T) {
			test.Parallel()
			if err := tc.cfg.Validate(); err == nil {
				test.Fatalf("expected validation error for %+v", tc.cfg)
			}
		})
	}
}

func TestConfigSettings(test *testing.T) {
	test.Parallel()
	cfg := Config{Network: "Mainnet", FlowMode: "transaction", ConnectWallet: true}
	if err := cfg.Validate(); err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	settings, err := cfg.Settings()
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if settings.Network != checkout.NetworkMainnet || settings.FlowMode != checkout.FlowModeTransaction || !settings.ConnectWallet {
		test.Fatalf("unexpected settings: %+v", settings)
	}
}
