package checkout

import (
	"context"
	"strings"
)

// ParseRequest extracts recipient, label and message from an untrusted query.
// A malformed recipient is reported to logger and treated as absent; it never
// fails the request.
func ParseRequest(ctx context.Context, query PaymentQuery, logger ValidationLogger) ParsedRequest {
	if logger == nil {
		logger = noopValidationLogger{}
	}
	parsed := ParsedRequest{
		Label:   normalizeOptional(query.Label),
		Message: normalizeOptional(query.Message),
	}
	if query.Recipient == nil || strings.TrimSpace(*query.Recipient) == "" {
		return parsed
	}
	recipient, err := NewRecipient(*query.Recipient)
	if err != nil {
		logger.LogValidation(ctx, ValidationLog{
			Operation: operationParse,
			Subject:   subjectRecipient,
			Raw:       *query.Recipient,
			Error:     err,
		})
		return parsed
	}
	parsed.Recipient = &recipient
	return parsed
}
