package ai

import (
	"errors"
	"fmt"
)

// Kind classifies a provider failure for cooldown purposes.
type Kind int

const (
	// KindTransient is a network blip or generic provider error; retried
	// after a short cooldown.
	KindTransient Kind = iota
	// KindRateLimited is an explicit quota/too-many-requests signal.
	KindRateLimited
	// KindUnavailable means the model does not exist or is not served;
	// not expected to self-heal quickly.
	KindUnavailable
	// KindCredentialRevoked means the provider rejected the credential as
	// compromised. Never retried.
	KindCredentialRevoked
)

func (k Kind) String() string {
	switch k {
	case KindRateLimited:
		return "rate-limited"
	case KindUnavailable:
		return "unavailable"
	case KindCredentialRevoked:
		return "credential-revoked"
	default:
		return "transient"
	}
}

// ErrCredentialRevoked is returned when the provider reports the API key as
// leaked or revoked. Retrying cannot help and continuing to use the key is
// unsafe, so the gateway propagates this immediately.
var ErrCredentialRevoked = errors.New("a chave de API do Google foi desativada por segurança; gere uma nova chave no Google AI Studio")

// ErrNoAPIKey is returned when neither a server key nor a request-scoped key
// is configured.
var ErrNoAPIKey = errors.New("no API key available: provide a key in the request or configure GOOGLE_API_KEY")

// ExhaustedError is the terminal failure after the attempt budget is spent
// across every configured model.
type ExhaustedError struct {
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("generation failed after %d attempts: %v", e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Last
}
