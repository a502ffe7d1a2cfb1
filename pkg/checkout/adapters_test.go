package checkout

import (
	"sync"
	"testing"
)

func TestAdapterSelectorDisabledConnectMode(test *testing.T) {
	test.Parallel()
	selector := mustSelector(test)
	for _, network := range []Network{NetworkDevnet, NetworkMainnet, Network("")} {
		list := selector.Select(false, network)
		if !list.Empty() {
			test.Fatalf("expected empty list for %q, got %v", network, list.Adapters())
		}
	}
}

func TestAdapterSelectorOrderAndNetwork(test *testing.T) {
	test.Parallel()
	selector := mustSelector(test)
	adapters := selector.Select(true, NetworkMainnet).Adapters()
	expected := []WalletAdapter{
		{Kind: AdapterGlow, Network: NetworkMainnet},
		{Kind: AdapterPhantom},
		{Kind: AdapterSolflare, Network: NetworkMainnet},
	}
	if len(adapters) != len(expected) {
		test.Fatalf("expected %d adapters, got %d", len(expected), len(adapters))
	}
	for index := range expected {
		if adapters[index] != expected[index] {
			test.Fatalf("adapter %d: expected %+v, got %+v", index, expected[index], adapters[index])
		}
	}
}

func TestAdapterSelectorMemoizesIdentity(test *testing.T) {
	test.Parallel()
	selector := mustSelector(test)
	first := selector.Select(true, NetworkDevnet)
	second := selector.Select(true, NetworkDevnet)
	if first != second {
		test.Fatalf("expected identical list for identical inputs")
	}
	if selector.Select(true, NetworkMainnet) == first {
		test.Fatalf("expected a different list for a different network")
	}
	if selector.Select(false, NetworkDevnet) != selector.Select(false, NetworkMainnet) {
		test.Fatalf("expected the shared empty list when connect mode is off")
	}
}

func TestAdapterSelectorConcurrentIdentity(test *testing.T) {
	test.Parallel()
	selector := mustSelector(test)
	const workers = 16
	results := make([]*WalletAdapterList, workers)
	var wg sync.WaitGroup
	for index := 0; index < workers; index++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			results[index] = selector.Select(true, NetworkDevnet)
		}(index)
	}
	wg.Wait()
	for index := 1; index < workers; index++ {
		if results[index] != results[0] {
			test.Fatalf("worker %d observed a different list", index)
		}
	}
}

func TestWalletAdapterListAdaptersIsCopy(test *testing.T) {
	test.Parallel()
	list := mustSelector(test).Select(true, NetworkDevnet)
	adapters := list.Adapters()
	adapters[0].Kind = AdapterKind("tampered")
	if list.Adapters()[0].Kind != AdapterGlow {
		test.Fatalf("expected list to be immutable")
	}
	var nilList *WalletAdapterList
	if nilList.Len() != 0 || len(nilList.Adapters()) != 0 {
		test.Fatalf("expected nil list to behave as empty")
	}
}

func mustSelector(test *testing.T) *AdapterSelector {
	test.Helper()
	selector, err := NewAdapterSelector()
	if err != nil {
		test.Fatalf("selector init failed: %v", err)
	}
	return selector
}
