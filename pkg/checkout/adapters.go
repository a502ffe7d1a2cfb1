package checkout

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// AdapterKind names a browser wallet adapter.
type AdapterKind string

const (
	AdapterGlow     AdapterKind = "glow"
	AdapterPhantom  AdapterKind = "phantom"
	AdapterSolflare AdapterKind = "solflare"
)

// WalletAdapter describes one adapter the wallet provider should construct.
// Network is empty for adapters that are not network-aware.
type WalletAdapter struct {
	Kind    AdapterKind `json:"kind"`
	Network Network     `json:"network,omitempty"`
}

// WalletAdapterList is an immutable, ordered adapter set. Lists handed out by
// AdapterSelector are shared, so pointer equality means "unchanged".
type WalletAdapterList struct {
	adapters []WalletAdapter
}

var emptyAdapterList = &WalletAdapterList{adapters: []WalletAdapter{}}

// Adapters returns a copy of the adapter descriptors.
func (list *WalletAdapterList) Adapters() []WalletAdapter {
	if list == nil {
		return []WalletAdapter{}
	}
	copied := make([]WalletAdapter, len(list.adapters))
	copy(copied, list.adapters)
	return copied
}

// Len returns the number of adapters.
func (list *WalletAdapterList) Len() int {
	if list == nil {
		return 0
	}
	return len(list.adapters)
}

// Empty reports whether no browser wallets are offered.
func (list *WalletAdapterList) Empty() bool {
	return list.Len() == 0
}

type adapterKey struct {
	connectMode bool
	network     Network
}

// AdapterSelector memoizes adapter lists on (connectMode, network).
type AdapterSelector struct {
	cache *lru.Cache[adapterKey, *WalletAdapterList]
}

// NewAdapterSelector builds a selector with its own cache.
func NewAdapterSelector() (*AdapterSelector, error) {
	cache, err := lru.New[adapterKey, *WalletAdapterList](adapterCacheSize)
	if err != nil {
		return nil, WrapError(operationSelect, "adapters", codeInvalid, err)
	}
	return &AdapterSelector{cache: cache}, nil
}

// Select returns the adapters offered for a session. With connect-mode off the
// list is empty for every network and the UI relies on deep links only.
func (selector *AdapterSelector) Select(connectMode bool, network Network) *WalletAdapterList {
	if !connectMode {
		return emptyAdapterList
	}
	key := adapterKey{connectMode: connectMode, network: network}
	if cached, ok := selector.cache.Get(key); ok {
		return cached
	}
	candidate := buildAdapterList(network)
	if previous, found, _ := selector.cache.PeekOrAdd(key, candidate); found {
		return previous
	}
	return candidate
}

func buildAdapterList(network Network) *WalletAdapterList {
	return &WalletAdapterList{adapters: []WalletAdapter{
		{Kind: AdapterGlow, Network: network},
		{Kind: AdapterPhantom},
		{Kind: AdapterSolflare, Network: network},
	}}
}
