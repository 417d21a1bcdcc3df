package turnstile

import "context"

// Verifier wraps the bot-verification check for a submitted challenge token.
type Verifier interface {
	// Verify reports whether the token is accepted by the challenge provider.
	Verify(ctx context.Context, token string) (bool, error)
}
