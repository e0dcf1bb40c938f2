package coreinfo

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
)

// DefaultCacheSize is used when a non-positive cache size is requested
const DefaultCacheSize = 256

type cachedInfo struct {
	info  *Info
	found bool
}

// CachedReader memoises lookups of another Reader, misses included
type CachedReader struct {
	next  Reader
	cache *lru.Cache[string, cachedInfo]
}

// NewCachedReader wraps next with an LRU cache holding size paths
func NewCachedReader(next Reader, size int) (*CachedReader, error) {
	if next == nil {
		return nil, fmt.Errorf("reader is nil")
	}
	if size <= 0 {
		size = DefaultCacheSize
	}

	cache, err := lru.New[string, cachedInfo](size)
	if err != nil {
		return nil, err
	}

	return &CachedReader{
		next:  next,
		cache: cache,
	}, nil
}

// Read returns the cached result for path, reading it on first use.
// Read errors other than ErrNotFound are not cached.
func (r *CachedReader) Read(path string) (*Info, error) {
	if cached, ok := r.cache.Get(path); ok {
		if !cached.found {
			return nil, ErrNotFound
		}
		info := *cached.info
		return &info, nil
	}

	info, err := r.next.Read(path)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			r.cache.Add(path, cachedInfo{})
		}
		return nil, err
	}

	logrus.Debugf("Cached core info for %s", path)
	stored := *info
	r.cache.Add(path, cachedInfo{info: &stored, found: true})
	return info, nil
}

// Len returns the number of cached paths
func (r *CachedReader) Len() int {
	return r.cache.Len()
}

// Purge drops every cached result
func (r *CachedReader) Purge() {
	r.cache.Purge()
}
