package ai

import (
	"math/rand"
	"time"
)

const (
	initialBackoff = 1 * time.Second
	maxBackoff     = 60 * time.Second
	jitterFactor   = 0.2

	// maxCooldown caps any single cooldown so a misparsed provider delay
	// cannot park a model for an unreasonable time.
	maxCooldown = 2 * time.Minute

	// unavailableCooldown is applied when the provider says the model does
	// not exist; that state does not self-heal quickly.
	unavailableCooldown = 10 * time.Minute

	// maxCooldownWait bounds how long a caller will sleep when every model
	// is simultaneously cooling down.
	maxCooldownWait = 30 * time.Second
)

// baseBackoff is the truncated exponential delay for the given consecutive
// failure count, without jitter.
func baseBackoff(consecutiveFailures int) time.Duration {
	delay := initialBackoff
	for i := 0; i < consecutiveFailures; i++ {
		delay *= 2
		if delay >= maxBackoff {
			return maxBackoff
		}
	}
	return delay
}

// backoffDelay adds ±20% random jitter to the base delay so concurrent
// requests do not retry in lockstep.
func backoffDelay(consecutiveFailures int) time.Duration {
	delay := baseBackoff(consecutiveFailures)
	jitter := time.Duration((rand.Float64()*2 - 1) * jitterFactor * float64(delay))
	return delay + jitter
}
