package landing

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/MarkoPoloResearchLab/payfront/pkg/checkout"
)

func TestRenderBranchPaymentEscapesUserInput(test *testing.T) {
	test.Parallel()
	bootstrapper, err := checkout.NewBootstrapper(checkout.Settings{ConnectWallet: true})
	if err != nil {
		test.Fatalf("bootstrapper init failed: %v", err)
	}
	label := `<script>alert(1)</script>`
	branch := bootstrapper.Bootstrap(context.Background(), checkout.PaymentQuery{
		Recipient: &[]string{presaleRecipient}[0],
		Label:     &label,
	}, "pay.example.com")
	var body bytes.Buffer
	if err := renderBranch(branch).Render(context.Background(), &body); err != nil {
		test.Fatalf("render failed: %v", err)
	}
	rendered := body.String()
	if strings.Contains(rendered, label) {
		test.Fatalf("expected label to be escaped, got %s", rendered)
	}
	if !strings.Contains(rendered, `data-wallets="glow,phantom,solflare"`) || !strings.Contains(rendered, `data-auto-connect="true"`) {
		test.Fatalf("expected wallet provider attributes, got %s", rendered)
	}
	if !strings.HasPrefix(rendered, "<!DOCTYPE html>") || !strings.HasSuffix(rendered, "</body></html>") {
		test.Fatalf("expected full page shell")
	}
}

func TestRenderBranchFallback(test *testing.T) {
	test.Parallel()
	var body bytes.Buffer
	if err := renderBranch(checkout.Branch{State: checkout.NoSession}).Render(context.Background(), &body); err != nil {
		test.Fatalf("render failed: %v", err)
	}
	rendered := body.String()
	if !strings.Contains(rendered, "<title>Santa Rose ($Rose)</title>") || !strings.Contains(rendered, "Utility and Governance") {
		test.Fatalf("unexpected fallback page %s", rendered)
	}
	if strings.Contains(rendered, "session-config") {
		test.Fatalf("fallback must not embed a session config")
	}
}

func TestRenderBranchPaymentWithoutSessionFallsBack(test *testing.T) {
	test.Parallel()
	var body bytes.Buffer
	if err := renderBranch(checkout.Branch{State: checkout.PaymentSession}).Render(context.Background(), &body); err != nil {
		test.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(body.String(), "Buy Presale") {
		test.Fatalf("expected fallback view for a payment state without config")
	}
}
