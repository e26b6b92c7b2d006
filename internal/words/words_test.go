package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("normalizes and deduplicates", func(t *testing.T) {
		d, err := New([]string{"Rate", " rate ", "SLOW", "", "#comment", "r4te", "lad"})
		require.NoError(t, err)

		assert.Equal(t, 3, d.Len())
		assert.Equal(t, []string{"lad", "rate", "slow"}, d.Words())
	})

	t.Run("rejects lists without usable words", func(t *testing.T) {
		_, err := New([]string{"", "123", "# header"})
		require.ErrorIs(t, err, ErrEmpty)
	})
}

func TestDictionary_Contains(t *testing.T) {
	d, err := New([]string{"rate", "lad"})
	require.NoError(t, err)

	assert.True(t, d.Contains("rate"))
	assert.True(t, d.Contains("RATE"))
	assert.False(t, d.Contains("tear"))
	assert.False(t, d.Contains(""))
}

func TestParseWords(t *testing.T) {
	in := "# list\r\nApple\r\n\r\n  banana  \nkiwi-fruit\ncherry"

	got, err := parseWords(strings.NewReader(in))

	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana", "cherry"}, got)
}

func TestReadWordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("lad\nrate\n"), 0o600))

	got, err := readWordFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"lad", "rate"}, got)

	_, err = readWordFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
