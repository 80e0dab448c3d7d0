package ai

import (
	"context"
	"fmt"
	"sync"
	"time"

	"landing-builder-backend/pkg/logger"
)

// modelState tracks the availability of a single model. A model with a
// cooldownUntil in the future is skipped during selection.
type modelState struct {
	cooldownUntil       time.Time
	consecutiveFailures int
}

// Gateway routes generation requests across a prioritized list of models,
// failing over to the next available model when one is rate limited or
// unavailable. Cooldown state is kept in memory and shared across requests.
type Gateway struct {
	provider  Provider
	serverKey string
	models    []string

	mu     sync.Mutex
	states map[string]*modelState

	// injectable for tests
	now   func() time.Time
	sleep func(time.Duration)
}

func NewGateway(provider Provider, serverKey string, models []string) *Gateway {
	return &Gateway{
		provider:  provider,
		serverKey: serverKey,
		models:    models,
		states:    make(map[string]*modelState),
		now:       time.Now,
		sleep:     time.Sleep,
	}
}

// Generate runs the prompt against the first available model, failing over
// through the model list on retryable errors. When userKey is non-empty it is
// used instead of the server credential. The total attempt budget is twice
// the model list so every model can be retried once after a cooldown.
func (g *Gateway) Generate(ctx context.Context, prompt, userKey string) (string, error) {
	apiKey := g.serverKey
	if userKey != "" {
		apiKey = userKey
	}
	if apiKey == "" {
		return "", ErrNoAPIKey
	}

	maxAttempts := 2 * len(g.models)
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		model, wait, available := g.pickModel()
		if model == "" {
			break
		}
		if !available {
			// Short waits are worth sleeping out. Longer ones are attempted
			// immediately, accepting a likely failure over blocking the caller.
			if wait <= maxCooldownWait {
				logger.Warn("All models cooling down, waiting", map[string]interface{}{
					"wait": wait.String(),
				})
				g.sleep(wait)
			} else {
				logger.Warn("All models cooling down, attempting soonest anyway", map[string]interface{}{
					"model": model,
					"wait":  wait.String(),
				})
			}
		}

		text, err := g.provider.Generate(ctx, model, prompt, apiKey)
		if err == nil {
			g.clearState(model)
			return text, nil
		}
		lastErr = err

		kind := classify(err)
		logger.Warn("Model call failed", map[string]interface{}{
			"model":   model,
			"kind":    kind.String(),
			"attempt": attempt + 1,
			"error":   err.Error(),
		})

		switch kind {
		case KindCredentialRevoked:
			return "", ErrCredentialRevoked
		case KindRateLimited:
			g.markRateLimited(model, err)
		case KindUnavailable:
			g.markCooldown(model, unavailableCooldown)
		default:
			g.markCooldown(model, backoffDelay(0))
		}
	}

	return "", &ExhaustedError{Attempts: maxAttempts, Last: lastErr}
}

// pickModel returns the highest-priority model not in cooldown. When every
// model is cooling down it returns the one with the soonest expiry and its
// remaining wait, so the caller can still attempt it.
func (g *Gateway) pickModel() (string, time.Duration, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	var (
		soonestModel string
		soonestWait  time.Duration = -1
	)
	for _, model := range g.models {
		st := g.states[model]
		if st == nil || !st.cooldownUntil.After(now) {
			return model, 0, true
		}
		wait := st.cooldownUntil.Sub(now)
		if soonestWait < 0 || wait < soonestWait {
			soonestWait = wait
			soonestModel = model
		}
	}
	return soonestModel, soonestWait, false
}

func (g *Gateway) markRateLimited(model string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := g.states[model]
	if st == nil {
		st = &modelState{}
		g.states[model] = st
	}
	st.consecutiveFailures++

	cooldown, ok := extractRetryDelay(err.Error())
	if !ok {
		cooldown = backoffDelay(st.consecutiveFailures - 1)
	}
	if cooldown > maxCooldown {
		cooldown = maxCooldown
	}
	st.cooldownUntil = g.now().Add(cooldown)
}

func (g *Gateway) markCooldown(model string, d time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := g.states[model]
	if st == nil {
		st = &modelState{}
		g.states[model] = st
	}
	st.consecutiveFailures++
	st.cooldownUntil = g.now().Add(d)
}

func (g *Gateway) clearState(model string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.states, model)
}

// Status reports per-model availability for the health endpoint.
func (g *Gateway) Status() map[string]string {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	out := make(map[string]string, len(g.models))
	for _, model := range g.models {
		st := g.states[model]
		if st != nil && st.cooldownUntil.After(now) {
			out[model] = fmt.Sprintf("cooling_down (%s)", st.cooldownUntil.Sub(now).Round(time.Second))
			continue
		}
		out[model] = "available"
	}
	return out
}
