package landing

import (
	"context"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/MarkoPoloResearchLab/payfront/pkg/checkout"
	"github.com/a-h/templ"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

//go:embed static/icons/*.svg
var staticFS embed.FS

// iconsFS serves the token icons advertised to wallets and the checkout page.
var iconsFS = mustSub(staticFS, "static/icons")

func mustSub(root fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(root, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

const (
	sessionConfigElementID = "session-config"
	fallbackTitle          = "Santa Rose ($Rose)"
	paymentTitle           = "Checkout"
)

// fallbackCheckoutURL is the promotional link of the static view. It never
// depends on the inbound query.
const fallbackCheckoutURL = "https://solana-pos-sable.vercel.app/new?recipient=83LpvGpRS5ovrghBJkVvWXTVMaH99Eqg3Yr6HrX3Xick&label=Santa+Rose+Presale"

type fallbackView struct {
	Title        string
	Pitch        string
	Tagline      string
	CheckoutURL  template.URL
	CallToAction string
}

type checkoutView struct {
	Label       string
	Message     string
	Recipient   string
	TokenIcon   string
	TokenSymbol string
	MinimumUnit string
	Network     string
	PaymentURL  template.URL
}

type attribute struct {
	name  string
	value string
}

// renderBranch composes the page for the selected state. Each state owns its
// subtree; nothing is shared between them but the page shell.
func renderBranch(branch checkout.Branch) templ.Component {
	if branch.IsPayment() {
		return page(paymentTitle, paymentSubtree(*branch.Session))
	}
	return page(fallbackTitle, fallbackSubtree())
}

func fallbackSubtree() templ.Component {
	return templ.FromGoHTML(templates.Lookup("fallback.html"), fallbackView{
		Title:        fallbackTitle,
		Pitch:        "A unique twist to the season with $ROSE, a Christmas-inspired meme token powered by a utility based advanced AI.",
		Tagline:      "The popular telegram bot that guards your chat now GUARDS your Bags",
		CheckoutURL:  template.URL(fallbackCheckoutURL),
		CallToAction: "Buy Presale",
	})
}

// paymentSubtree nests connection, wallet, wallet-modal, config, transactions
// and payment providers around the checkout content.
func paymentSubtree(session checkout.SessionConfig) templ.Component {
	content := templ.FromGoHTML(templates.Lookup("checkout.html"), newCheckoutView(session))
	payment := provider("payment", nil, content)
	transactions := provider("transactions", nil, payment)
	config := configProvider(session, transactions)
	walletModal := provider("wallet-modal", nil, config)
	wallet := provider("wallet", []attribute{
		{name: "wallets", value: adapterKinds(session.Adapters)},
		{name: "auto-connect", value: strconv.FormatBool(session.ConnectWallet)},
	}, walletModal)
	return provider("connection", []attribute{
		{name: "endpoint", value: session.Endpoint()},
		{name: "network", value: session.Network.String()},
	}, wallet)
}

func newCheckoutView(session checkout.SessionConfig) checkoutView {
	view := checkoutView{
		Label:       session.Label,
		Recipient:   session.Recipient.String(),
		TokenIcon:   session.Token.Icon,
		TokenSymbol: session.Token.Symbol,
		MinimumUnit: session.Token.FormatBaseUnits(1),
		Network:     session.Network.String(),
		PaymentURL:  template.URL(session.PaymentURL()),
	}
	if session.Message != nil {
		view.Message = *session.Message
	}
	return view
}

func provider(name string, attributes []attribute, child templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var builder strings.Builder
		builder.WriteString(`<div data-provider="`)
		builder.WriteString(templ.EscapeString(name))
		builder.WriteString(`"`)
		for _, attr := range attributes {
			builder.WriteString(` data-`)
			builder.WriteString(attr.name)
			builder.WriteString(`="`)
			builder.WriteString(templ.EscapeString(attr.value))
			builder.WriteString(`"`)
		}
		builder.WriteString(`>`)
		if _, err := io.WriteString(w, builder.String()); err != nil {
			return err
		}
		if child != nil {
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// configProvider embeds the session config as JSON for client code.
func configProvider(session checkout.SessionConfig, child templ.Component) templ.Component {
	script := templ.JSONScript(sessionConfigElementID, session.Payload())
	return provider("config", nil, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := script.Render(ctx, w); err != nil {
			return err
		}
		return child.Render(ctx, w)
	}))
}

func page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			`<title>` + templ.EscapeString(title) + `</title></head><body>`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func adapterKinds(list *checkout.WalletAdapterList) string {
	adapters := list.Adapters()
	kinds := make([]string, 0, len(adapters))
	for _, adapter := range adapters {
		kinds = append(kinds, string(adapter.Kind))
	}
	return strings.Join(kinds, ",")
}
