package time

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the wall clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time in UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// Until returns the duration until t
func (p *RealTimeProvider) Until(t time.Time) core.Duration {
	return core.Duration(time.Until(t))
}

// Sleep pauses the current goroutine for the specified duration
func (p *RealTimeProvider) Sleep(d core.Duration) {
	time.Sleep(d.Std())
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// ParseDuration parses a duration string
func (p *RealTimeProvider) ParseDuration(s string) (core.Duration, error) {
	d, err := time.ParseDuration(s)
	return core.Duration(d), err
}

// OffsetTimeProvider runs on top of another clock shifted by an offset that
// only grows. Lock periods of weeks can be crossed in tests and staging
// environments without waiting.
type OffsetTimeProvider struct {
	base   core.TimeProvider
	offset atomic.Int64
}

// NewOffsetTimeProvider wraps base; a nil base means the wall clock
func NewOffsetTimeProvider(base core.TimeProvider) *OffsetTimeProvider {
	if base == nil {
		base = NewRealTimeProvider()
	}
	return &OffsetTimeProvider{base: base}
}

// Now returns the base time plus the accumulated offset
func (p *OffsetTimeProvider) Now() time.Time {
	return p.base.Now().Add(time.Duration(p.offset.Load()))
}

// Since returns the time elapsed since t on the shifted clock
func (p *OffsetTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(p.Now().Sub(t))
}

// Until returns the duration until t on the shifted clock
func (p *OffsetTimeProvider) Until(t time.Time) core.Duration {
	return core.Duration(t.Sub(p.Now()))
}

// Sleep delegates to the base clock
func (p *OffsetTimeProvider) Sleep(d core.Duration) {
	p.base.Sleep(d)
}

// WithTimeout delegates to the base clock; deadlines are not shifted
func (p *OffsetTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return p.base.WithTimeout(ctx, timeout)
}

// ParseDuration parses a duration string
func (p *OffsetTimeProvider) ParseDuration(s string) (core.Duration, error) {
	return p.base.ParseDuration(s)
}

// Advance moves the clock forward; negative durations are ignored
func (p *OffsetTimeProvider) Advance(d core.Duration) {
	if d <= 0 {
		return
	}
	p.offset.Add(int64(d))
}

// Offset reports the total distance travelled
func (p *OffsetTimeProvider) Offset() core.Duration {
	return core.Duration(p.offset.Load())
}

// ManualTimeProvider is a clock that only moves when told to.
// Sleep advances it instantly.
type ManualTimeProvider struct {
	mu     sync.RWMutex
	now    time.Time
	offset core.Duration
}

// NewManualTimeProvider creates a manual clock standing at start
func NewManualTimeProvider(start time.Time) *ManualTimeProvider {
	return &ManualTimeProvider{now: start}
}

// Now returns the current manual time
func (p *ManualTimeProvider) Now() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.now
}

// Since returns the manual time elapsed since t
func (p *ManualTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(p.Now().Sub(t))
}

// Until returns the manual duration until t
func (p *ManualTimeProvider) Until(t time.Time) core.Duration {
	return core.Duration(t.Sub(p.Now()))
}

// Sleep advances the clock by d without blocking
func (p *ManualTimeProvider) Sleep(d core.Duration) {
	p.Advance(d)
}

// WithTimeout uses a real timer; manual time does not cancel contexts
func (p *ManualTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// ParseDuration parses a duration string
func (p *ManualTimeProvider) ParseDuration(s string) (core.Duration, error) {
	d, err := time.ParseDuration(s)
	return core.Duration(d), err
}

// Advance moves the clock forward; negative durations are ignored
func (p *ManualTimeProvider) Advance(d core.Duration) {
	if d <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = p.now.Add(d.Std())
	p.offset += d
}

// Offset reports the total distance travelled
func (p *ManualTimeProvider) Offset() core.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.offset
}

// Set places the clock at t
func (p *ManualTimeProvider) Set(t time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = t
}

var (
	_ core.TimeTraveler = (*OffsetTimeProvider)(nil)
	_ core.TimeTraveler = (*ManualTimeProvider)(nil)
)
