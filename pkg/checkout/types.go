package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// PaymentQuery is the raw, untrusted request captured from the URL query string.
// A nil field means the parameter was absent.
type PaymentQuery struct {
	Recipient *string
	Label     *string
	Message   *string
}

// Recipient is a validated public key identity. The zero value is never handed
// out by NewRecipient.
type Recipient struct {
	key solana.PublicKey
}

// NewRecipient validates a base58 encoded public key. Panics raised while
// decoding are reported as malformed input.
func NewRecipient(raw string) (recipient Recipient, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			recipient = Recipient{}
			err = WrapError(operationParse, subjectRecipient, codePanic, fmt.Errorf("%w: %v", ErrInvalidRecipient, recovered))
		}
	}()
	key, decodeErr := solana.PublicKeyFromBase58(raw)
	if decodeErr != nil {
		return Recipient{}, WrapError(operationParse, subjectRecipient, codeMalformed, fmt.Errorf("%w: %v", ErrInvalidRecipient, decodeErr))
	}
	return Recipient{key: key}, nil
}

// PublicKey returns the underlying key.
func (recipient Recipient) PublicKey() solana.PublicKey {
	return recipient.key
}

// String returns the base58 encoding.
func (recipient Recipient) String() string {
	return recipient.key.String()
}

// Equals reports whether both recipients refer to the same key.
func (recipient Recipient) Equals(other Recipient) bool {
	return recipient.key.Equals(other.key)
}

// ParsedRequest is the Request Parser output. Absent values are nil.
type ParsedRequest struct {
	Recipient *Recipient
	Label     *string
	Message   *string
}

// IsPaymentRequest reports whether both recipient and label are present.
func (parsed ParsedRequest) IsPaymentRequest() bool {
	return parsed.Recipient != nil && parsed.Label != nil
}

// SessionConfig is everything the payment branch needs to render a checkout.
type SessionConfig struct {
	BaseURL       string
	Link          *url.URL
	Recipient     Recipient
	Label         string
	Message       *string
	Token         TokenDescriptor
	ConnectWallet bool
	Network       Network
	Adapters      *WalletAdapterList
}

// Endpoint returns the RPC endpoint the connection provider should use.
func (config SessionConfig) Endpoint() string {
	return config.Network.Endpoint()
}

// SessionPayload is the serialized form of SessionConfig handed to client code.
type SessionPayload struct {
	BaseURL       string          `json:"baseURL"`
	Link          string          `json:"link,omitempty"`
	Recipient     string          `json:"recipient"`
	Label         string          `json:"label"`
	Message       string          `json:"message,omitempty"`
	Token         TokenPayload    `json:"token"`
	ConnectWallet bool            `json:"connectWallet"`
	Network       string          `json:"network"`
	Endpoint      string          `json:"endpoint"`
	Wallets       []WalletAdapter `json:"wallets"`
	PaymentURL    string          `json:"paymentURL"`
}

// Payload flattens the config for JSON encoding.
func (config SessionConfig) Payload() SessionPayload {
	payload := SessionPayload{
		BaseURL:       config.BaseURL,
		Recipient:     config.Recipient.String(),
		Label:         config.Label,
		Token:         config.Token.Payload(),
		ConnectWallet: config.ConnectWallet,
		Network:       config.Network.String(),
		Endpoint:      config.Endpoint(),
		Wallets:       config.Adapters.Adapters(),
		PaymentURL:    config.PaymentURL(),
	}
	if config.Link != nil {
		payload.Link = config.Link.String()
	}
	if config.Message != nil {
		payload.Message = *config.Message
	}
	return payload
}

func normalizeOptional(raw *string) *string {
	if raw == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
