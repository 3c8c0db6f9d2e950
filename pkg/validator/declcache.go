package validator

import (
	"container/list"
	"strings"
	"sync"
)

// DefaultParseCacheSize is the number of string declarations a Validator
// keeps parsed.
const DefaultParseCacheSize = 256

type declEntry struct {
	key string
	set *ruleSet
}

// declCache is an LRU of parsed string declarations. Cached sets are never
// written to after they are stored.
type declCache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List
	hits     uint64
	misses   uint64
}

func newDeclCache(capacity int) *declCache {
	if capacity <= 0 {
		return nil
	}
	return &declCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

func declKey(seps Separators, decl string) string {
	return strings.Join([]string{seps.Rule, seps.RuleParam, seps.Params, decl}, "\x00")
}

func (c *declCache) get(key string) (*ruleSet, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		c.hits++
		return elem.Value.(*declEntry).set, true
	}
	c.misses++
	return nil, false
}

func (c *declCache) put(key string, set *ruleSet) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*declEntry).set = set
		return
	}

	c.items[key] = c.order.PushFront(&declEntry{key: key, set: set})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*declEntry).key)
	}
}

func (c *declCache) len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *declCache) stats() (hits, misses uint64) {
	if c == nil {
		return 0, 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
