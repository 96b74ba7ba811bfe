package services

import (
	"errors"
	"sync"
	"time"

	"card-rewards-api/internal/models"
)

var ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

const (
	StateClosed models.CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

// CircuitBreakerConfig tunes when the card and transaction stores are
// considered down. Zero values fall back to the defaults.
type CircuitBreakerConfig struct {
	// FailureThreshold consecutive store failures open the breaker
	FailureThreshold int
	// Cooldown is how long the breaker stays open before letting a probe
	// through. A probe that never reports back frees its slot after the same.
	Cooldown time.Duration
	// ProbeSuccesses half-open successes close it again
	ProbeSuccesses int
	// OnStateChange, when set, is called with the lock held
	OnStateChange func(from, to models.CircuitBreakerState)
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		FailureThreshold: 5,
		Cooldown:         30 * time.Second,
		ProbeSuccesses:   1,
	}
}

type CircuitBreaker struct {
	mu       sync.Mutex
	cfg      CircuitBreakerConfig
	state    models.CircuitBreakerState
	failures int
	probes   int
	openedAt time.Time
	// probing is set while a half-open probe is in flight
	probing      bool
	probeStarted time.Time
	now          func() time.Time
}

func NewCircuitBreaker(cfg CircuitBreakerConfig) CircuitBreakerInterface {
	defaults := DefaultCircuitBreakerConfig()
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = defaults.Cooldown
	}
	if cfg.ProbeSuccesses <= 0 {
		cfg.ProbeSuccesses = defaults.ProbeSuccesses
	}
	return &CircuitBreaker{cfg: cfg, now: time.Now}
}

// IsOpen reports whether store calls should be short-circuited. Once the
// cooldown has elapsed the breaker turns half-open and lets one call at a
// time through as a probe.
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := cb.now()
	if cb.state == StateOpen && now.Sub(cb.openedAt) >= cb.cfg.Cooldown {
		cb.moveTo(StateHalfOpen)
	}

	switch cb.state {
	case StateOpen:
		return true
	case StateHalfOpen:
		if cb.probing && now.Sub(cb.probeStarted) < cb.cfg.Cooldown {
			return true
		}
		cb.probing = true
		cb.probeStarted = now
	}
	return false
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures = 0
	if cb.state != StateHalfOpen {
		return
	}
	cb.probing = false
	cb.probes++
	if cb.probes >= cb.cfg.ProbeSuccesses {
		cb.moveTo(StateClosed)
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures++
	if cb.state == StateHalfOpen || cb.failures >= cb.cfg.FailureThreshold {
		cb.moveTo(StateOpen)
	}
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failures = 0
	cb.moveTo(StateClosed)
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.failures
}

func (cb *CircuitBreaker) moveTo(to models.CircuitBreakerState) {
	from := cb.state
	cb.state = to
	cb.probes = 0
	cb.probing = false
	switch to {
	case StateOpen:
		cb.openedAt = cb.now()
	case StateClosed:
		cb.failures = 0
	}
	if from != to && cb.cfg.OnStateChange != nil {
		cb.cfg.OnStateChange(from, to)
	}
}
