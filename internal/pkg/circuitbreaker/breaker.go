package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/saferoute/internal/pkg/logger"
)

// State represents the circuit breaker state
type State int

const (
	// StateClosed lets every publish through
	StateClosed State = iota
	// StateOpen skips the sink until the timeout elapses
	StateOpen
	// StateHalfOpen lets one probe through
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// Errors
var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
	ErrTooManyRequests    = errors.New("too many requests in half-open state")
)

// StateHook is told about every state change
type StateHook func(name string, from, to State)

// Config holds circuit breaker configuration
type Config struct {
	Name string
	// MaxRequests bounds the probes admitted while half-open
	MaxRequests uint32
	// Interval clears the closed-state counters
	Interval time.Duration
	// Timeout is how long the breaker stays open
	Timeout          time.Duration
	FailureThreshold uint32
	SuccessThreshold uint32
	OnStateChange    StateHook
	// IsFailure decides whether an error counts against the sink
	IsFailure func(err error) bool
}

// DefaultConfig returns the configuration used for the board mirrors: a sink
// that fails three ticks in a row is skipped for 30 seconds
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      1,
		Interval:         60 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 3,
		SuccessThreshold: 1,
		IsFailure:        sinkFailure,
	}
}

// sinkFailure ignores cancellation, a view closing mid-publish says nothing
// about the sink
func sinkFailure(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled)
}

// Counts holds the counters for circuit breaker
type Counts struct {
	Requests             uint32
	TotalSuccesses       uint32
	TotalFailures        uint32
	ConsecutiveSuccesses uint32
	ConsecutiveFailures  uint32
}

// CircuitBreaker guards one mirror sink
type CircuitBreaker struct {
	config Config
	logger *logger.ZapLogger
	now    func() time.Time

	mu     sync.RWMutex
	state  State
	counts Counts
	expiry time.Time
}

// New creates a new circuit breaker
func New(config Config, l *logger.ZapLogger) *CircuitBreaker {
	if config.IsFailure == nil {
		config.IsFailure = sinkFailure
	}
	if config.MaxRequests == 0 {
		config.MaxRequests = 1
	}
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	cb := &CircuitBreaker{
		config: config,
		logger: l,
		now:    time.Now,
		state:  StateClosed,
	}
	cb.expiry = cb.now().Add(config.Interval)
	return cb
}

// Execute runs fn unless the breaker is open
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.admit(); err != nil {
		return err
	}

	err := fn(ctx)
	cb.record(err)
	return err
}

func (cb *CircuitBreaker) admit() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := cb.now()
	switch cb.state {
	case StateClosed:
		if cb.config.Interval > 0 && now.After(cb.expiry) {
			cb.counts = Counts{}
			cb.expiry = now.Add(cb.config.Interval)
		}
	case StateOpen:
		if now.Before(cb.expiry) {
			return ErrCircuitBreakerOpen
		}
		cb.moveTo(StateHalfOpen, now)
	case StateHalfOpen:
		if cb.counts.Requests >= cb.config.MaxRequests {
			return ErrTooManyRequests
		}
	}

	cb.counts.Requests++
	return nil
}

func (cb *CircuitBreaker) record(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := cb.now()
	if !cb.config.IsFailure(err) {
		cb.counts.TotalSuccesses++
		cb.counts.ConsecutiveSuccesses++
		cb.counts.ConsecutiveFailures = 0
		if cb.state == StateHalfOpen && cb.counts.ConsecutiveSuccesses >= cb.config.SuccessThreshold {
			cb.moveTo(StateClosed, now)
		}
		return
	}

	cb.counts.TotalFailures++
	cb.counts.ConsecutiveFailures++
	cb.counts.ConsecutiveSuccesses = 0
	switch {
	case cb.state == StateHalfOpen:
		cb.moveTo(StateOpen, now)
	case cb.state == StateClosed && cb.counts.ConsecutiveFailures >= cb.config.FailureThreshold:
		cb.moveTo(StateOpen, now)
	}
}

// moveTo switches state, resets counters and arms the expiry. Callers hold mu.
func (cb *CircuitBreaker) moveTo(state State, now time.Time) {
	if cb.state == state {
		return
	}
	prev := cb.state
	failures := cb.counts.ConsecutiveFailures

	cb.state = state
	cb.counts = Counts{}
	switch state {
	case StateOpen:
		cb.expiry = now.Add(cb.config.Timeout)
	case StateClosed:
		cb.expiry = now.Add(cb.config.Interval)
	}

	log := cb.logger.Info
	if state == StateOpen {
		log = cb.logger.Warn
	}
	log("Mirror circuit breaker state changed",
		logger.String("name", cb.config.Name),
		logger.String("from", prev.String()),
		logger.String("to", state.String()),
		logger.Int("consecutive_failures", int(failures)))

	if cb.config.OnStateChange != nil {
		cb.config.OnStateChange(cb.config.Name, prev, state)
	}
}

// State returns the current state of the circuit breaker
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// Counts returns the current counts
func (cb *CircuitBreaker) Counts() Counts {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.counts
}

// Name returns the circuit breaker name
func (cb *CircuitBreaker) Name() string {
	return cb.config.Name
}

// Manager owns one breaker per sink name
type Manager struct {
	mu       sync.RWMutex
	breakers map[string]*CircuitBreaker
	totals   map[string]*Counts
	hook     StateHook
	logger   *logger.ZapLogger
}

// NewManager creates a new circuit breaker manager
func NewManager(l *logger.ZapLogger) *Manager {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &Manager{
		breakers: make(map[string]*CircuitBreaker),
		totals:   make(map[string]*Counts),
		logger:   l,
	}
}

// OnStateChange installs a hook on every breaker created afterwards, in
// addition to the breaker's own callback
func (m *Manager) OnStateChange(hook StateHook) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hook = hook
}

// GetOrCreate gets an existing circuit breaker or creates a new one
func (m *Manager) GetOrCreate(name string, config Config) *CircuitBreaker {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cb, ok := m.breakers[name]; ok {
		return cb
	}

	config.Name = name
	if hook, own := m.hook, config.OnStateChange; hook != nil {
		config.OnStateChange = func(name string, from, to State) {
			if own != nil {
				own(name, from, to)
			}
			hook(name, from, to)
		}
	}

	cb := New(config, m.logger)
	m.breakers[name] = cb
	m.totals[name] = &Counts{}

	m.logger.Debug("Created mirror circuit breaker",
		logger.String("name", name),
		logger.Int("failure_threshold", int(config.FailureThreshold)),
		logger.Duration("timeout", config.Timeout))

	return cb
}

// Get retrieves a circuit breaker by name
func (m *Manager) Get(name string) (*CircuitBreaker, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cb, ok := m.breakers[name]
	return cb, ok
}

// Execute runs fn through the named breaker, creating it with DefaultConfig
func (m *Manager) Execute(ctx context.Context, name string, fn func(context.Context) error) error {
	cb := m.GetOrCreate(name, DefaultConfig(name))

	var ran bool
	err := cb.Execute(ctx, func(ctx context.Context) error {
		ran = true
		return fn(ctx)
	})

	m.mu.Lock()
	t := m.totals[name]
	if ran {
		t.Requests++
		if cb.config.IsFailure(err) {
			t.TotalFailures++
		} else {
			t.TotalSuccesses++
		}
	}
	m.mu.Unlock()

	return err
}

// CircuitBreakerStats holds statistics for a circuit breaker. Totals
// survive state changes; consecutive counts are the current window's.
type CircuitBreakerStats struct {
	Name                 string `json:"name"`
	State                string `json:"state"`
	TotalRequests        uint32 `json:"total_requests"`
	TotalSuccesses       uint32 `json:"total_successes"`
	TotalFailures        uint32 `json:"total_failures"`
	ConsecutiveSuccesses uint32 `json:"consecutive_successes"`
	ConsecutiveFailures  uint32 `json:"consecutive_failures"`
}

// GetStats returns statistics for all circuit breakers
func (m *Manager) GetStats() map[string]CircuitBreakerStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := make(map[string]CircuitBreakerStats, len(m.breakers))
	for name, cb := range m.breakers {
		window := cb.Counts()
		total := m.totals[name]
		stats[name] = CircuitBreakerStats{
			Name:                 name,
			State:                cb.State().String(),
			TotalRequests:        total.Requests,
			TotalSuccesses:       total.TotalSuccesses,
			TotalFailures:        total.TotalFailures,
			ConsecutiveSuccesses: window.ConsecutiveSuccesses,
			ConsecutiveFailures:  window.ConsecutiveFailures,
		}
	}
	return stats
}
