package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// limiterPool keeps one token bucket per client IP and drops buckets
// that have been idle for a while.
type limiterPool struct {
	mu    sync.Mutex
	seen  map[string]*poolEntry
	rps   rate.Limit
	burst int
}

type poolEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLimiterPool(r rate.Limit, b int) *limiterPool {
	p := &limiterPool{
		seen:  make(map[string]*poolEntry),
		rps:   r,
		burst: b,
	}
	go p.gcLoop()
	return p
}

func (p *limiterPool) allow(ip string) bool {
	p.mu.Lock()
	e, ok := p.seen[ip]
	if !ok {
		e = &poolEntry{limiter: rate.NewLimiter(p.rps, p.burst)}
		p.seen[ip] = e
	}
	e.lastSeen = time.Now()
	p.mu.Unlock()
	return e.limiter.Allow()
}

func (p *limiterPool) gcLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-10 * time.Minute)
		p.mu.Lock()
		for ip, e := range p.seen {
			if e.lastSeen.Before(cutoff) {
				delete(p.seen, ip)
			}
		}
		p.mu.Unlock()
	}
}

// RateLimit enforces a per-IP token bucket of r requests per second
// with burst b. Rejected requests get 429.
func RateLimit(r rate.Limit, b int) gin.HandlerFunc {
	pool := newLimiterPool(r, b)
	return func(c *gin.Context) {
		if !pool.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
