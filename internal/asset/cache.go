package asset

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Faultbox/shapeview/internal/mesh"
)

// Manager loads meshes and caches them by path and modification time, so
// reopening an unchanged file does not parse it again.
type Manager struct {
	Options LoadOptions

	cache *Cache
}

// NewManager creates a manager that loads with opts.
func NewManager(opts LoadOptions) *Manager {
	return &Manager{
		Options: opts,
		cache:   NewCache(),
	}
}

// Load returns the mesh stored at path.
func (m *Manager) Load(path string) (*mesh.Mesh, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	if e, ok := m.cache.get(abs); ok && e.modTime.Equal(info.ModTime()) {
		return e.mesh, nil
	}

	msh, err := LoadGLTF(abs, m.Options)
	if err != nil {
		return nil, err
	}
	m.cache.set(abs, entry{mesh: msh, modTime: info.ModTime()})
	return msh, nil
}

// Invalidate drops the cached mesh for path.
func (m *Manager) Invalidate(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		m.cache.Delete(abs)
	}
}

// Cache returns the manager's cache.
func (m *Manager) Cache() *Cache {
	return m.cache
}

type entry struct {
	mesh    *mesh.Mesh
	modTime time.Time
}

// Cache is a simple in-memory cache for loaded meshes.
type Cache struct {
	data map[string]entry
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]entry),
	}
}

// get retrieves an item from cache.
func (c *Cache) get(key string) (entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return e, ok
}

// set stores an item in cache.
func (c *Cache) set(key string, e entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = e
}

// Delete removes one item.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]entry)
	c.hits = 0
	c.misses = 0
}

// Len returns the number of cached meshes.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
