package updater

// Cache holds at most one core updater list. It is not safe for
// concurrent use; callers sharing a Cache across goroutines must
// serialise access themselves.
type Cache struct {
	list *List
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{}
}

// Init replaces any cached list with a new, empty one and returns it
func (c *Cache) Init(opts ...Option) *List {
	c.Free()
	c.list = NewList(opts...)
	return c.list
}

// Get returns the cached list, if any
func (c *Cache) Get() (*List, bool) {
	if c.list == nil {
		return nil, false
	}
	return c.list, true
}

// Free drops the cached list
func (c *Cache) Free() {
	if c.list != nil {
		c.list.Reset()
	}
	c.list = nil
}

// defaultCache backs the package level accessors, for call sites that
// cannot be handed a Cache
var defaultCache = NewCache()

// InitCached replaces the process wide cached list with an empty one
func InitCached(opts ...Option) *List {
	return defaultCache.Init(opts...)
}

// Cached returns the process wide cached list, if any
func Cached() (*List, bool) {
	return defaultCache.Get()
}

// FreeCached drops the process wide cached list
func FreeCached() {
	defaultCache.Free()
}
