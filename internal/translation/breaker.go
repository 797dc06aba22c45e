package translation

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// BreakerSettings tunes the circuit breaker around a translator.
type BreakerSettings struct {
	// MaxFailures is the number of consecutive failures that opens the
	// breaker.
	MaxFailures uint32
	// Cooldown is how long the breaker stays open before letting a probe
	// request through.
	Cooldown time.Duration
}

// DefaultBreakerSettings opens after five failures in a row for 30s.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{MaxFailures: 5, Cooldown: 30 * time.Second}
}

// BreakerTranslator fails fast once the wrapped translator keeps failing, so
// a batch run does not burn through its rate budget against a dead API.
type BreakerTranslator struct {
	next    Translator
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerTranslator wraps next in a circuit breaker.
func NewBreakerTranslator(next Translator, settings BreakerSettings, logger *zap.Logger) *BreakerTranslator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings.MaxFailures == 0 {
		settings.MaxFailures = DefaultBreakerSettings().MaxFailures
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        next.Name(),
		MaxRequests: 1,
		Timeout:     settings.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("translator circuit breaker changed state",
				zap.String("translator", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
		IsSuccessful: func(err error) bool {
			// A cancelled run says nothing about the health of the API.
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &BreakerTranslator{next: next, breaker: cb}
}

// Name returns the wrapped translator's name.
func (b *BreakerTranslator) Name() string {
	return b.next.Name()
}

// Translate calls the wrapped translator unless the breaker is open, in
// which case it returns gobreaker.ErrOpenState.
func (b *BreakerTranslator) Translate(ctx context.Context, system, user string) (string, error) {
	out, err := b.breaker.Execute(func() (interface{}, error) {
		return b.next.Translate(ctx, system, user)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

// State reports the breaker state.
func (b *BreakerTranslator) State() gobreaker.State {
	return b.breaker.State()
}
