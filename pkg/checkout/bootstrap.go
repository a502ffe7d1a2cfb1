package checkout

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Settings is the environment-level policy of a deployment. None of it is
// derived from request input.
type Settings struct {
	ConnectWallet          bool
	Network                Network
	FlowMode               FlowMode
	Token                  TokenDescriptor
	TransactionRequestPath string
}

// Bootstrapper turns an inbound request into a branch decision.
type Bootstrapper struct {
	settings Settings
	selector *AdapterSelector
	logger   ValidationLogger
	observer BranchObserver
}

// NewBootstrapper validates settings and wires a Bootstrapper.
func NewBootstrapper(settings Settings, options ...BootstrapOption) (*Bootstrapper, error) {
	normalized, err := normalizeSettings(settings)
	if err != nil {
		return nil, err
	}
	selector, err := NewAdapterSelector()
	if err != nil {
		return nil, WrapError(operationBootstrap, subjectSettings, codeInvalid, fmt.Errorf("%w: %v", ErrInvalidBootstrapConfig, err))
	}
	bootstrapper := &Bootstrapper{
		settings: normalized,
		selector: selector,
		logger:   noopValidationLogger{},
	}
	for _, option := range options {
		if option != nil {
			option(bootstrapper)
		}
	}
	if bootstrapper.logger == nil {
		bootstrapper.logger = noopValidationLogger{}
	}
	return bootstrapper, nil
}

// Settings returns the normalized settings.
func (bootstrapper *Bootstrapper) Settings() Settings {
	return bootstrapper.settings
}

// Adapters returns the memoized adapter list for the configured policy.
func (bootstrapper *Bootstrapper) Adapters() *WalletAdapterList {
	return bootstrapper.selector.Select(bootstrapper.settings.ConnectWallet, bootstrapper.settings.Network)
}

// Bootstrap runs parser, origin resolution and branch selection for one request.
func (bootstrapper *Bootstrapper) Bootstrap(ctx context.Context, query PaymentQuery, host string) Branch {
	parsed := ParseRequest(ctx, query, bootstrapper.logger)
	branch := SelectBranch(parsed, func(parsed ParsedRequest) SessionConfig {
		return SessionConfig{
			BaseURL:       ResolveOrigin(host),
			Link:          bootstrapper.TransactionLink(host),
			Recipient:     *parsed.Recipient,
			Label:         *parsed.Label,
			Message:       parsed.Message,
			Token:         bootstrapper.settings.Token,
			ConnectWallet: bootstrapper.settings.ConnectWallet,
			Network:       bootstrapper.settings.Network,
			Adapters:      bootstrapper.Adapters(),
		}
	})
	if bootstrapper.observer != nil {
		bootstrapper.observer.ObserveBranch(ctx, branch.State)
	}
	return branch
}

// TransactionLink returns the transaction-request link for a host, or nil in transfer mode.
func (bootstrapper *Bootstrapper) TransactionLink(host string) *url.URL {
	scheme, resolvedHost := resolveOrigin(host)
	return bootstrapper.transactionLink(scheme, resolvedHost)
}

func (bootstrapper *Bootstrapper) transactionLink(scheme string, host string) *url.URL {
	if bootstrapper.settings.FlowMode != FlowModeTransaction {
		return nil
	}
	return &url.URL{Scheme: scheme, Host: host, Path: bootstrapper.settings.TransactionRequestPath}
}

func normalizeSettings(settings Settings) (Settings, error) {
	if settings.Network == "" {
		settings.Network = NetworkDevnet
	}
	if err := settings.Network.Validate(); err != nil {
		return Settings{}, settingsError(err)
	}
	flowMode, err := ParseFlowMode(string(settings.FlowMode))
	if err != nil {
		return Settings{}, settingsError(err)
	}
	settings.FlowMode = flowMode
	if settings.Token.IsZero() {
		settings.Token = DefaultToken(settings.Network)
	}
	if err := settings.Token.Validate(); err != nil {
		return Settings{}, WrapError(operationBootstrap, subjectToken, codeInvalid, fmt.Errorf("%w: %w", ErrInvalidBootstrapConfig, err))
	}
	path := strings.TrimSpace(settings.TransactionRequestPath)
	if path == "" {
		path = DefaultTransactionRequestPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	settings.TransactionRequestPath = path
	return settings, nil
}

func settingsError(err error) error {
	return WrapError(operationBootstrap, subjectSettings, codeInvalid, fmt.Errorf("%w: %w", ErrInvalidBootstrapConfig, err))
}
