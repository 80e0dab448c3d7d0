package ai

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// classify maps a provider error onto a failure Kind by inspecting the error
// text. The provider does not expose structured error fields for every
// failure mode, so this substring matching is deliberately the only place in
// the codebase that depends on the provider's error wording.
func classify(err error) Kind {
	if err == nil {
		return KindTransient
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTransient
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "reported as leaked"),
		strings.Contains(msg, "api key was revoked"),
		strings.Contains(msg, "api_key_invalid") && strings.Contains(msg, "leaked"):
		return KindCredentialRevoked
	case strings.Contains(msg, "429"),
		strings.Contains(msg, "quota"),
		strings.Contains(msg, "too many requests"),
		strings.Contains(msg, "resource exhausted"),
		strings.Contains(msg, "resource_exhausted"):
		return KindRateLimited
	case strings.Contains(msg, "404"),
		strings.Contains(msg, "not found"),
		strings.Contains(msg, "does not exist"):
		return KindUnavailable
	default:
		return KindTransient
	}
}

var retryDelayPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)retry.*?in\s*(\d+\.?\d*)s`),
	regexp.MustCompile(`(?i)retrydelay.*?(\d+)s`),
	regexp.MustCompile(`(?i)(\d+)\s*seconds?`),
}

// extractRetryDelay pulls a provider-suggested retry delay out of a
// rate-limit error message, when one is present.
func extractRetryDelay(msg string) (time.Duration, bool) {
	for _, pattern := range retryDelayPatterns {
		match := pattern.FindStringSubmatch(msg)
		if match == nil {
			continue
		}
		seconds, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		return time.Duration(seconds * float64(time.Second)), true
	}
	return 0, false
}
