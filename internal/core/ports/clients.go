package ports

import "context"

// TextGenerator is the outbound contract for the external generative text
// service. Implementations must bound the call with a timeout and classify
// failures as errs.UpstreamServiceError so callers can distinguish a missing
// credential from a transient outage.
type TextGenerator interface {
	// Generate produces report text from the given context prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}

// MessageSender is the outbound contract for the transactional messaging
// provider. Send returns the provider-assigned message id on success.
// Implementations classify failures as errs.UpstreamServiceError: permanent
// for credential problems (do not retry), transient for timeouts, rate
// limits, and 5xx responses (retryable).
type MessageSender interface {
	Send(ctx context.Context, to, subject, body string) (string, error)
}
