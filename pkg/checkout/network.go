package checkout

import (
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go/rpc"
)

// Network selects the Solana cluster a session targets. The RPC endpoint used by
// the connection provider and the network stamped on wallet adapters are both
// derived from this single value.
type Network string

const (
	NetworkDevnet  Network = "devnet"
	NetworkMainnet Network = "mainnet-beta"
)

// ParseNetwork normalizes a configured network name.
func ParseNetwork(raw string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(NetworkDevnet):
		return NetworkDevnet, nil
	case string(NetworkMainnet), "mainnet":
		return NetworkMainnet, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidNetwork, raw)
	}
}

// Validate reports whether the network is one of the known clusters.
func (network Network) Validate() error {
	switch network {
	case NetworkDevnet, NetworkMainnet:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidNetwork, string(network))
	}
}

// Endpoint returns the JSON-RPC endpoint for the network.
func (network Network) Endpoint() string {
	if network == NetworkMainnet {
		return rpc.MainNetBeta_RPC
	}
	return rpc.DevNet_RPC
}

// String returns the cluster name.
func (network Network) String() string {
	return string(network)
}

// FlowMode decides how the payment link is encoded for the wallet.
type FlowMode string

const (
	// FlowModeTransfer encodes recipient, label, message and token directly.
	FlowModeTransfer FlowMode = "transfer"
	// FlowModeTransaction points the wallet at a link it fetches the transaction from.
	FlowModeTransaction FlowMode = "transaction"
)

// ParseFlowMode normalizes a configured flow mode; empty selects transfer requests.
func ParseFlowMode(raw string) (FlowMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(FlowModeTransfer):
		return FlowModeTransfer, nil
	case string(FlowModeTransaction):
		return FlowModeTransaction, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFlowMode, raw)
	}
}
