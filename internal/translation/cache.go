package translation

import "sync"

// Cache stores translations by source sentence for one batch run. It is
// safe for concurrent use.
type Cache struct {
	mu           sync.RWMutex
	translations map[string]string
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		translations: make(map[string]string),
	}
}

// Add stores a translation.
func (c *Cache) Add(sentence, translation string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translations[sentence] = translation
}

// Get retrieves a translation.
func (c *Cache) Get(sentence string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	translation, ok := c.translations[sentence]
	return translation, ok
}

// Len returns the number of cached sentences.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.translations)
}
