// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package sanitize

import (
	"sync"
	"time"
)

// Limiter bounds submission frequency with a sliding window per identifier.
// Safe for concurrent use.
type Limiter struct {
	mu       sync.Mutex
	max      int
	window   time.Duration
	attempts map[string][]time.Time
	now      func() time.Time
}

// NewLimiter returns a Limiter allowing max attempts per window.
func NewLimiter(max int, window time.Duration) *Limiter {
	return &Limiter{
		max:      max,
		window:   window,
		attempts: make(map[string][]time.Time),
		now:      time.Now,
	}
}

// Allow records an attempt for id and reports whether it is within the
// limit. Attempts older than the window are discarded.
func (l *Limiter) Allow(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	valid := l.attempts[id][:0]
	for _, t := range l.attempts[id] {
		if now.Sub(t) < l.window {
			valid = append(valid, t)
		}
	}
	if len(valid) >= l.max {
		l.attempts[id] = valid
		return false
	}
	l.attempts[id] = append(valid, now)
	return true
}

// Reset clears the attempt history for id.
func (l *Limiter) Reset(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, id)
}
