package checkout

// BranchState is the UI state selected for a request.
type BranchState string

const (
	// NoSession mounts the static fallback view. It is the initial state.
	NoSession BranchState = "no_session"
	// PaymentSession mounts the wallet providers around the checkout.
	PaymentSession BranchState = "payment_session"
)

// Branch is the outcome of one render decision. Session is set only in PaymentSession.
type Branch struct {
	State   BranchState
	Session *SessionConfig
}

// IsPayment reports whether the payment subtree should mount.
func (branch Branch) IsPayment() bool {
	return branch.State == PaymentSession && branch.Session != nil
}

// SelectBranch moves from NoSession to PaymentSession only when the recipient
// validated and a label is present. A missing message never blocks the move.
func SelectBranch(parsed ParsedRequest, assemble func(ParsedRequest) SessionConfig) Branch {
	if !parsed.IsPaymentRequest() || assemble == nil {
		return Branch{State: NoSession}
	}
	session := assemble(parsed)
	return Branch{State: PaymentSession, Session: &session}
}
