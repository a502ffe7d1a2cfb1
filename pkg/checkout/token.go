package checkout

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

const (
	usdcSymbol      = "USDC"
	usdcIcon        = "/icons/usdc.svg"
	usdcDecimals    = 6
	usdcMinDecimals = 2
)

var (
	mainnetUSDCMint = solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	devnetUSDCMint  = solana.MustPublicKeyFromBase58("4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU")
)

// TokenDescriptor identifies the SPL token a session is paid in.
type TokenDescriptor struct {
	Mint        solana.PublicKey
	Symbol      string
	Icon        string
	Decimals    int32
	MinDecimals int32
}

// TokenPayload is the serialized form of TokenDescriptor.
type TokenPayload struct {
	Mint        string `json:"mint"`
	Symbol      string `json:"symbol"`
	Icon        string `json:"icon"`
	Decimals    int32  `json:"decimals"`
	MinDecimals int32  `json:"minDecimals"`
	MinimumUnit string `json:"minimumUnit"`
}

// DefaultToken returns the USDC descriptor whose mint lives on the given network.
func DefaultToken(network Network) TokenDescriptor {
	mint := devnetUSDCMint
	if network == NetworkMainnet {
		mint = mainnetUSDCMint
	}
	return TokenDescriptor{
		Mint:        mint,
		Symbol:      usdcSymbol,
		Icon:        usdcIcon,
		Decimals:    usdcDecimals,
		MinDecimals: usdcMinDecimals,
	}
}

// IsZero reports whether the descriptor was left unset.
func (token TokenDescriptor) IsZero() bool {
	return token.Mint.IsZero() && token.Symbol == "" && token.Decimals == 0
}

// Validate ensures the descriptor is internally consistent.
func (token TokenDescriptor) Validate() error {
	if token.Mint.IsZero() {
		return fmt.Errorf("%w: mint is required", ErrInvalidToken)
	}
	if strings.TrimSpace(token.Symbol) == "" {
		return fmt.Errorf("%w: symbol is required", ErrInvalidToken)
	}
	if token.Decimals < 0 || token.MinDecimals < 0 {
		return fmt.Errorf("%w: decimals must not be negative", ErrInvalidToken)
	}
	if token.MinDecimals > token.Decimals {
		return fmt.Errorf("%w: min decimals %d exceed decimals %d", ErrInvalidToken, token.MinDecimals, token.Decimals)
	}
	return nil
}

// MinimumUnit is the smallest representable amount, e.g. 0.000001 for USDC.
func (token TokenDescriptor) MinimumUnit() decimal.Decimal {
	return decimal.New(1, -token.Decimals)
}

// FormatAmount rounds to the token precision and pads to at least MinDecimals
// fractional digits, dropping trailing zeros beyond that.
func (token TokenDescriptor) FormatAmount(amount decimal.Decimal) string {
	fixed := amount.Round(token.Decimals).StringFixed(token.Decimals)
	dot := strings.IndexByte(fixed, '.')
	if dot < 0 {
		return fixed
	}
	keep := dot + 1 + int(token.MinDecimals)
	end := len(fixed)
	for end > keep && fixed[end-1] == '0' {
		end--
	}
	if end == dot+1 {
		end = dot
	}
	return fixed[:end]
}

// FormatBaseUnits formats an on-chain integer amount.
func (token TokenDescriptor) FormatBaseUnits(units uint64) string {
	return token.FormatAmount(decimal.NewFromBigInt(new(big.Int).SetUint64(units), -token.Decimals))
}

// Payload flattens the descriptor for JSON encoding.
func (token TokenDescriptor) Payload() TokenPayload {
	return TokenPayload{
		Mint:        token.Mint.String(),
		Symbol:      token.Symbol,
		Icon:        token.Icon,
		Decimals:    token.Decimals,
		MinDecimals: token.MinDecimals,
		MinimumUnit: token.FormatAmount(token.MinimumUnit()),
	}
}
