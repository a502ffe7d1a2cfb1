package checkout

import (
	"net/url"
)

// PaymentURL encodes the session as a Solana Pay URL: a transaction request
// when a link is configured, otherwise a transfer request.
func (config SessionConfig) PaymentURL() string {
	params := url.Values{}
	params.Set("label", config.Label)
	if config.Message != nil {
		params.Set("message", *config.Message)
	}
	if config.Link != nil {
		return schemeSolana + ":" + url.QueryEscape(config.Link.String()) + "?" + params.Encode()
	}
	if !config.Token.Mint.IsZero() {
		params.Set("spl-token", config.Token.Mint.String())
	}
	return schemeSolana + ":" + config.Recipient.String() + "?" + params.Encode()
}
