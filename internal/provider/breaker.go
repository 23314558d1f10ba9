package provider

import (
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// NewBreaker returns the circuit breaker every provider client wraps its
// calls in. Five consecutive failures open it for 30 seconds; ErrNoData is
// an answer, not a failure, and never counts toward tripping.
func NewBreaker(name string, logger *slog.Logger) *gobreaker.CircuitBreaker {
	if logger == nil {
		logger = slog.Default()
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    5 * time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNoData)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Provider circuit breaker state changed",
				"provider", name, "from", from.String(), "to", to.String())
		},
	})
}

// BreakerError translates a breaker rejection into ErrUnavailable and passes
// other errors through.
func BreakerError(op string, err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return Unavailable(op, err)
	}
	return err
}
