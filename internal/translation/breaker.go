package translation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"codeberg.org/snonux/textlens/internal/metrics"
)

// Circuit breaker defaults
const (
	DefaultBreakerFailures = 3
	DefaultBreakerTimeout  = 30 * time.Second
)

// BreakerTranslator stops calling a failing provider for a while. Once open,
// translations fail fast with gobreaker.ErrOpenState.
type BreakerTranslator struct {
	next Translator
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerTranslator wraps next with a circuit breaker that opens after
// failures consecutive errors and half-opens after timeout. m may be nil.
func NewBreakerTranslator(name string, next Translator, failures uint32, timeout time.Duration, m *metrics.Metrics) *BreakerTranslator {
	if failures == 0 {
		failures = DefaultBreakerFailures
	}
	if timeout <= 0 {
		timeout = DefaultBreakerTimeout
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Circuit breaker state changed",
				"component", name,
				"from", from.String(),
				"to", to.String(),
			)
			if m != nil {
				m.BreakerState.WithLabelValues(name).Set(stateToFloat(to))
			}
		},
	}

	return &BreakerTranslator{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

// State returns the current breaker state
func (b *BreakerTranslator) State() gobreaker.State {
	return b.cb.State()
}

// Translate implements Translator
func (b *BreakerTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Translate(ctx, text, source, target)
	})
	if err != nil {
		return "", fmt.Errorf("translator %s: %w", b.cb.Name(), err)
	}
	return out.(string), nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 2
	}
}
