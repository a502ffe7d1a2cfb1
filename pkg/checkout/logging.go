package checkout

import "context"

// BootstrapOption configures a Bootstrapper instance.
type BootstrapOption func(*Bootstrapper)

// ValidationLogger records non-fatal validation failures so operators can tell
// malformed payment links apart from plain visits.
type ValidationLogger interface {
	LogValidation(ctx context.Context, entry ValidationLog)
}

// ValidationLog describes a rejected input.
type ValidationLog struct {
	Operation string
	Subject   string
	Raw       string
	Error     error
}

// BranchObserver is notified once per branch decision.
type BranchObserver interface {
	ObserveBranch(ctx context.Context, state BranchState)
}

// WithValidationLogger wires a logger that receives recipient validation failures.
func WithValidationLogger(logger ValidationLogger) BootstrapOption {
	return func(bootstrapper *Bootstrapper) {
		bootstrapper.logger = logger
	}
}

// WithBranchObserver wires an observer that is told which branch every request selected.
func WithBranchObserver(observer BranchObserver) BootstrapOption {
	return func(bootstrapper *Bootstrapper) {
		bootstrapper.observer = observer
	}
}

type noopValidationLogger struct{}

func (noopValidationLogger) LogValidation(context.Context, ValidationLog) {}
