package checkout

const (
	operationParse     = "parse"
	operationBootstrap = "bootstrap"
	operationSelect    = "select"

	subjectRecipient = "recipient"
	subjectSettings  = "settings"
	subjectToken     = "token"

	codeMalformed = "malformed"
	codePanic     = "panic"
	codeInvalid   = "invalid"

	// DefaultDevHost is substituted when the inbound request carries no Host header.
	DefaultDevHost = "localhost:3001"

	// DefaultTransactionRequestPath is where transaction-request links point under the base URL.
	DefaultTransactionRequestPath = "/api/"

	schemeSecure   = "https"
	schemeInsecure = "http"
	schemeSolana   = "solana"

	adapterCacheSize = 8
)
