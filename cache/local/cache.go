package local

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

// ErrNotFound is returned when a key does not exist.
var ErrNotFound = errors.New("cache: key not found")

// Config holds LocalCache settings.
type Config struct {
	GCInterval time.Duration
}

// entry holds a cached string value with an optional expiry.
type entry struct {
	data     string
	expireAt time.Time
	noExpiry bool
}

func (e *entry) expired() bool {
	return !e.noExpiry && time.Now().After(e.expireAt)
}

// LocalCache is an in-process cache implementing the Cache interface. It
// backs single-node deployments and tests; multi-node deployments point
// CacheConfig at Redis instead.
type LocalCache struct {
	mu         sync.Mutex // guards kv SetNX read-modify-write
	kv         sync.Map   // key → *entry
	hashes     sync.Map   // key → *sync.Map (field → string)
	zsets      sync.Map   // key → *zset
	gcInterval time.Duration
	stopGC     chan struct{}
}

// NewCache creates a LocalCache and starts the background GC goroutine.
func NewCache(cfg Config) (*LocalCache, error) {
	interval := cfg.GCInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	c := &LocalCache{
		gcInterval: interval,
		stopGC:     make(chan struct{}),
	}
	go c.runGC()
	return c, nil
}

// Close stops the background GC goroutine.
func (c *LocalCache) Close() {
	close(c.stopGC)
}

func (c *LocalCache) runGC() {
	ticker := time.NewTicker(c.gcInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.kv.Range(func(k, v interface{}) bool {
				if e, ok := v.(*entry); ok && e.expired() {
					c.kv.Delete(k)
				}
				return true
			})
		case <-c.stopGC:
			return
		}
	}
}

// ---- KV ----

func (c *LocalCache) Get(_ context.Context, key string) (string, error) {
	v, ok := c.kv.Load(key)
	if !ok {
		return "", ErrNotFound
	}
	e := v.(*entry)
	if e.expired() {
		c.kv.Delete(key)
		return "", ErrNotFound
	}
	return e.data, nil
}

func (c *LocalCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	e := &entry{data: value}
	if ttl > 0 {
		e.expireAt = time.Now().Add(ttl)
	} else {
		e.noExpiry = true
	}
	c.kv.Store(key, e)
	return nil
}

func (c *LocalCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		c.kv.Delete(k)
		c.hashes.Delete(k)
		c.zsets.Delete(k)
	}
	return nil
}

func (c *LocalCache) Exists(_ context.Context, key string) (bool, error) {
	v, ok := c.kv.Load(key)
	if !ok {
		return false, nil
	}
	if v.(*entry).expired() {
		c.kv.Delete(key)
		return false, nil
	}
	return true, nil
}

func (c *LocalCache) SetNX(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.kv.Load(key); ok && !v.(*entry).expired() {
		return false, nil
	}
	e := &entry{data: value}
	if ttl > 0 {
		e.expireAt = time.Now().Add(ttl)
	} else {
		e.noExpiry = true
	}
	c.kv.Store(key, e)
	return true, nil
}

func (c *LocalCache) Expire(_ context.Context, key string, ttl time.Duration) error {
	v, ok := c.kv.Load(key)
	if !ok {
		return ErrNotFound
	}
	e := v.(*entry)
	if e.expired() {
		c.kv.Delete(key)
		return ErrNotFound
	}
	c.kv.Store(key, &entry{data: e.data, expireAt: time.Now().Add(ttl)})
	return nil
}

// ---- Hash ----

func (c *LocalCache) getOrCreateHash(key string) *sync.Map {
	v, _ := c.hashes.LoadOrStore(key, &sync.Map{})
	return v.(*sync.Map)
}

func (c *LocalCache) HSet(_ context.Context, key, field, value string) error {
	c.getOrCreateHash(key).Store(field, value)
	return nil
}

func (c *LocalCache) HGet(_ context.Context, key, field string) (string, error) {
	v, ok := c.hashes.Load(key)
	if !ok {
		return "", ErrNotFound
	}
	f, ok := v.(*sync.Map).Load(field)
	if !ok {
		return "", ErrNotFound
	}
	return f.(string), nil
}

func (c *LocalCache) HGetAll(_ context.Context, key string) (map[string]string, error) {
	out := make(map[string]string)
	v, ok := c.hashes.Load(key)
	if !ok {
		return out, nil
	}
	v.(*sync.Map).Range(func(f, val interface{}) bool {
		out[f.(string)] = val.(string)
		return true
	})
	return out, nil
}

func (c *LocalCache) HDel(_ context.Context, key string, fields ...string) error {
	v, ok := c.hashes.Load(key)
	if !ok {
		return nil
	}
	h := v.(*sync.Map)
	for _, f := range fields {
		h.Delete(f)
	}
	return nil
}

// ---- ZSet ----

type zset struct {
	mu     sync.Mutex
	scores map[string]float64
}

func (c *LocalCache) getOrCreateZSet(key string) *zset {
	v, _ := c.zsets.LoadOrStore(key, &zset{scores: make(map[string]float64)})
	return v.(*zset)
}

func (c *LocalCache) ZAdd(_ context.Context, key string, score float64, member string) error {
	z := c.getOrCreateZSet(key)
	z.mu.Lock()
	z.scores[member] = score
	z.mu.Unlock()
	return nil
}

func (c *LocalCache) ZRevRange(_ context.Context, key string, start, stop int64) ([]string, error) {
	v, ok := c.zsets.Load(key)
	if !ok {
		return nil, nil
	}
	z := v.(*zset)
	z.mu.Lock()
	members := make([]string, 0, len(z.scores))
	for m := range z.scores {
		members = append(members, m)
	}
	sort.Slice(members, func(i, j int) bool {
		si, sj := z.scores[members[i]], z.scores[members[j]]
		if si != sj {
			return si > sj
		}
		return members[i] < members[j]
	})
	z.mu.Unlock()

	if start < 0 {
		start = 0
	}
	if stop < 0 || stop >= int64(len(members)) {
		stop = int64(len(members)) - 1
	}
	if start > stop {
		return nil, nil
	}
	return members[start : stop+1], nil
}

func (c *LocalCache) ZScore(_ context.Context, key, member string) (float64, error) {
	v, ok := c.zsets.Load(key)
	if !ok {
		return 0, ErrNotFound
	}
	z := v.(*zset)
	z.mu.Lock()
	defer z.mu.Unlock()
	s, ok := z.scores[member]
	if !ok {
		return 0, ErrNotFound
	}
	return s, nil
}
