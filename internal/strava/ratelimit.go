package strava

import (
	"sync"
	"time"
)

// RateLimiter tracks the Strava API rate limits reported on responses.
// It only records state; the fetcher never throttles on it.
type RateLimiter struct {
	mu          sync.RWMutex
	overall     LimitWindow
	read        LimitWindow
	lastUpdated time.Time
}

// LimitWindow is one family of limits (overall or read-only)
type LimitWindow struct {
	Limit15Min int
	Usage15Min int
	LimitDaily int
	UsageDaily int
}

// Usage15MinPct returns the 15 minute usage as a percentage of the limit
func (w LimitWindow) Usage15MinPct() float64 {
	return pct(w.Usage15Min, w.Limit15Min)
}

// UsageDailyPct returns the daily usage as a percentage of the limit
func (w LimitWindow) UsageDailyPct() float64 {
	return pct(w.UsageDaily, w.LimitDaily)
}

func pct(usage, limit int) float64 {
	if limit <= 0 {
		return 0
	}
	return float64(usage) / float64(limit) * 100
}

// RateLimitStatus is a snapshot of the tracked limits
type RateLimitStatus struct {
	Overall     LimitWindow
	Read        LimitWindow
	LastUpdated time.Time
}

// NewRateLimiter creates a tracker seeded with the documented Strava defaults
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		overall: LimitWindow{Limit15Min: 200, LimitDaily: 2000},
		read:    LimitWindow{Limit15Min: 100, LimitDaily: 1000},
	}
}

// UpdateOverall records the X-RateLimit-* headers
func (rl *RateLimiter) UpdateOverall(limit15Min, usage15Min, limitDaily, usageDaily int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.overall = LimitWindow{limit15Min, usage15Min, limitDaily, usageDaily}
	rl.lastUpdated = time.Now()
}

// UpdateRead records the X-ReadRateLimit-* headers
func (rl *RateLimiter) UpdateRead(limit15Min, usage15Min, limitDaily, usageDaily int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.read = LimitWindow{limit15Min, usage15Min, limitDaily, usageDaily}
	rl.lastUpdated = time.Now()
}

// Status returns the current rate limit status
func (rl *RateLimiter) Status() RateLimitStatus {
	rl.mu.RLock()
	defer rl.mu.RUnlock()

	return RateLimitStatus{
		Overall:     rl.overall,
		Read:        rl.read,
		LastUpdated: rl.lastUpdated,
	}
}

// IsNearLimit returns true if any window is at or above threshold percent
func (rl *RateLimiter) IsNearLimit(threshold float64) bool {
	s := rl.Status()
	return s.Overall.Usage15MinPct() >= threshold ||
		s.Overall.UsageDailyPct() >= threshold ||
		s.Read.Usage15MinPct() >= threshold ||
		s.Read.UsageDailyPct() >= threshold
}
