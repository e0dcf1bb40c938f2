package updater

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheLifecycle(t *testing.T) {
	c := NewCache()

	_, ok := c.Get()
	assert.False(t, ok)

	first := c.Init(WithSortMode(SortAlphabetical))
	require.NotNil(t, first)
	require.NoError(t, first.push(core("a_libretro.so", "A")))

	got, ok := c.Get()
	require.True(t, ok)
	assert.Same(t, first, got)
	assert.Equal(t, SortAlphabetical, got.Mode())

	// Init replaces the previous list
	second := c.Init()
	assert.NotSame(t, first, second)
	assert.Equal(t, 0, first.Size())

	got, ok = c.Get()
	require.True(t, ok)
	assert.Same(t, second, got)

	c.Free()
	_, ok = c.Get()
	assert.False(t, ok)

	// Freeing twice is harmless
	c.Free()
}

func TestGlobalCache(t *testing.T) {
	t.Cleanup(FreeCached)

	l := InitCached()
	require.NotNil(t, l)

	got, ok := Cached()
	require.True(t, ok)
	assert.Same(t, l, got)

	FreeCached()
	_, ok = Cached()
	assert.False(t, ok)
}
