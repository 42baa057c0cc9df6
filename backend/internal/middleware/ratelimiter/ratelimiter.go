package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter *rate.Limiter
	timer   *time.Timer
}

// UserRateLimiter keeps one token bucket per identity (user id or ip).
// A bucket is forgotten after expirationTime without requests.
type UserRateLimiter struct {
	limiters       map[string]*entry
	mu             sync.Mutex
	limit          rate.Limit
	burst          int
	expirationTime time.Duration
}

// New creates a limiter allowing perSecond requests with the given burst.
func New(perSecond float64, burst int, expirationTime time.Duration) *UserRateLimiter {
	return &UserRateLimiter{
		limiters:       make(map[string]*entry),
		limit:          rate.Limit(perSecond),
		burst:          burst,
		expirationTime: expirationTime,
	}
}

func (url *UserRateLimiter) getLimiter(identity string) *rate.Limiter {
	url.mu.Lock()
	defer url.mu.Unlock()

	e, exists := url.limiters[identity]
	if !exists {
		e = &entry{limiter: rate.NewLimiter(url.limit, url.burst)}
		url.limiters[identity] = e
	}

	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(url.expirationTime, func() {
		url.mu.Lock()
		defer url.mu.Unlock()
		if url.limiters[identity] == e {
			delete(url.limiters, identity)
		}
	})

	return e.limiter
}

// Allow reports whether identity may make a request now.
func (url *UserRateLimiter) Allow(identity string) bool {
	return url.getLimiter(identity).Allow()
}

func (url *UserRateLimiter) size() int {
	url.mu.Lock()
	defer url.mu.Unlock()
	return len(url.limiters)
}

// Stop cancels all expiration timers.
func (url *UserRateLimiter) Stop() {
	url.mu.Lock()
	defer url.mu.Unlock()

	for _, e := range url.limiters {
		if e.timer != nil {
			e.timer.Stop()
		}
	}
}
