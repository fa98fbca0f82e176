package runner

import (
	lru "github.com/hashicorp/golang-lru"
)

// Cache memoizes results by step limit and tape. Runs are deterministic so a hit is exact.
// A nil *Cache is a disabled cache.
type Cache struct {
	lru *lru.Cache
}

type cacheKey struct {
	limit int
	tape  string
}

func (Module) Cache(
	settings Settings,
) *Cache {
	if settings.CacheSize <= 0 {
		return nil
	}
	c, err := lru.New(settings.CacheSize)
	if err != nil {
		panic(err)
	}
	return &Cache{
		lru: c,
	}
}

func (c *Cache) get(limit int, tape []byte) (Result, bool) {
	if c == nil {
		return Result{}, false
	}
	v, ok := c.lru.Get(cacheKey{limit: limit, tape: string(tape)})
	if !ok {
		return Result{}, false
	}
	res := v.(Result)
	res.Tape = append([]byte{}, res.Tape...)
	res.Cached = true
	return res, true
}

func (c *Cache) add(limit int, tape []byte, res Result) {
	if c == nil {
		return
	}
	res.Tape = append([]byte{}, res.Tape...)
	c.lru.Add(cacheKey{limit: limit, tape: string(tape)}, res)
}

func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
