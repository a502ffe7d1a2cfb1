package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MarkoPoloResearchLab/payfront/internal/landing"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagListenAddr             = "listen-addr"
	flagNetwork                = "network"
	flagConnectWallet          = "connect-wallet"
	flagFlowMode               = "flow-mode"
	flagTransactionRequestPath = "transaction-request-path"
	flagMerchantLabel          = "merchant-label"
	flagLogLevel               = "log-level"
	flagShutdownTimeout        = "shutdown-timeout"
	envPrefix                  = "PAYFRONT"
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "payfront: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := landing.Config{}
	cmd := &cobra.Command{
		Use:           "payfront",
		Short:         "Solana Pay landing page with a static fallback",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, &cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return landing.Run(ctx, cfg)
		},
	}

	cmd.Flags().String(flagListenAddr, ":3001", "HTTP listen address")
	cmd.Flags().String(flagNetwork, "devnet", "Solana cluster for the connection and wallet adapters (devnet|mainnet-beta)")
	cmd.Flags().Bool(flagConnectWallet, false, "offer browser wallet adapters instead of deep links only")
	cmd.Flags().String(flagFlowMode, "transfer", "payment link encoding (transfer|transaction)")
	cmd.Flags().String(flagTransactionRequestPath, "/api/", "path of the transaction-request endpoint under the base URL")
	cmd.Flags().String(flagMerchantLabel, "Santa Rose", "label returned to wallets fetching a transaction request")
	cmd.Flags().String(flagLogLevel, "info", "log level (debug|info|warn|error)")
	cmd.Flags().Duration(flagShutdownTimeout, 0, "graceful shutdown timeout (e.g. 5s)")

	return cmd
}

func loadConfig(cmd *cobra.Command, cfg *landing.Config) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, flagName := range []string{flagListenAddr, flagNetwork, flagConnectWallet, flagFlowMode, flagTransactionRequestPath, flagMerchantLabel, flagLogLevel, flagShutdownTimeout} {
		if err := v.BindPFlag(flagName, cmd.Flags().Lookup(flagName)); err != nil {
			return err
		}
	}

	cfg.ListenAddr = strings.TrimSpace(v.GetString(flagListenAddr))
	cfg.Network = strings.TrimSpace(v.GetString(flagNetwork))
	cfg.ConnectWallet = v.GetBool(flagConnectWallet)
	cfg.FlowMode = strings.TrimSpace(v.GetString(flagFlowMode))
	cfg.TransactionRequestPath = strings.TrimSpace(v.GetString(flagTransactionRequestPath))
	cfg.MerchantLabel = strings.TrimSpace(v.GetString(flagMerchantLabel))
	cfg.LogLevel = strings.TrimSpace(v.GetString(flagLogLevel))
	cfg.ShutdownTimeout = v.GetDuration(flagShutdownTimeout)

	return cfg.Validate()
}
