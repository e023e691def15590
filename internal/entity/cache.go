package entity

import "sync"

// Cache memoizes derived values of one record instance.
// Entries live until Drop or Clear is called explicitly.
type Cache struct {
	mu     sync.Mutex
	values map[string]any
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.values[key]
	return v, ok
}

func (c *Cache) Set(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.values == nil {
		c.values = make(map[string]any)
	}
	c.values[key] = v
}

func (c *Cache) Drop(key string) {
	c.mu.Lock()
	delete(c.values, key)
	c.mu.Unlock()
}

func (c *Cache) Clear() {
	c.mu.Lock()
	c.values = nil
	c.mu.Unlock()
}

// Memo returns the cached value for key, computing and storing it on a miss.
// Errors are not cached.
func Memo[T any](c *Cache, key string, fn func() (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		if t, ok := v.(T); ok {
			return t, nil
		}
	}

	v, err := fn()
	if err != nil {
		var zero T
		return zero, err
	}
	c.Set(key, v)
	return v, nil
}
