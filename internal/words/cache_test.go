package words

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_StoreAndLoad(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	// Given: a fresh cache
	c, err := OpenCache(dir, zerolog.Nop())
	require.NoError(t, err)

	// Then: it reports a miss
	_, err = c.Words(ctx)
	require.ErrorIs(t, err, ErrCacheMiss)

	// When: a list is stored and the cache is reopened
	require.NoError(t, c.Store(ctx, []string{"lad", "rate", "slow"}, "http://example.test/words.txt"))
	require.NoError(t, c.Close())

	c, err = OpenCache(dir, zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	// Then: the list comes back intact
	got, err := c.Words(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"lad", "rate", "slow"}, got)

	var source string
	require.NoError(t, c.db.QueryRow(`SELECT value FROM meta WHERE key='source'`).Scan(&source))
	assert.Equal(t, "http://example.test/words.txt", source)
}

func TestCache_StoreReplacesPreviousList(t *testing.T) {
	ctx := context.Background()
	c, err := OpenCache(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Store(ctx, []string{"lad", "rate"}, "a"))
	require.NoError(t, c.Store(ctx, []string{"tear"}, "b"))

	got, err := c.Words(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"tear"}, got)
}

func TestCache_DetectsTampering(t *testing.T) {
	ctx := context.Background()
	c, err := OpenCache(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Store(ctx, []string{"lad", "rate"}, "a"))

	// When: a word is injected behind the cache's back
	_, err = c.db.Exec(`INSERT INTO words(word) VALUES ('zzz')`)
	require.NoError(t, err)

	// Then: the digest check fails
	_, err = c.Words(ctx)
	require.ErrorIs(t, err, ErrCacheCorrupt)
}

func TestCache_MigrationsRecordedOnce(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 2; i++ {
		c, err := OpenCache(dir, zerolog.Nop())
		require.NoError(t, err)
		require.NoError(t, c.Close())
	}

	c, err := OpenCache(dir, zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	var n int
	require.NoError(t, c.db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestDigest(t *testing.T) {
	assert.Equal(t, digest([]string{"a", "b"}), digest([]string{"a", "b"}))
	assert.NotEqual(t, digest([]string{"a", "b"}), digest([]string{"ab"}))
	assert.Len(t, digest(nil), 64)
}
