package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKeyword(t *testing.T) {
	t.Run("strips hashes and mentions", func(t *testing.T) {
		got, ok := NormalizeKeyword("#GoLang@dev")
		assert.True(t, ok)
		assert.Equal(t, "GoLangdev", got)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		got, ok := NormalizeKeyword("  #summer vibes  ")
		assert.True(t, ok)
		assert.Equal(t, "summer vibes", got)
	})

	t.Run("plain string passes through", func(t *testing.T) {
		got, ok := NormalizeKeyword("world cup")
		assert.True(t, ok)
		assert.Equal(t, "world cup", got)
	})

	t.Run("non-string input is rejected", func(t *testing.T) {
		for _, v := range []interface{}{nil, 42, 1.5, true, []string{"x"}} {
			_, ok := NormalizeKeyword(v)
			assert.False(t, ok, "value %v should have no keyword", v)
		}
	})

	t.Run("string of only noise becomes empty", func(t *testing.T) {
		got, ok := NormalizeKeyword(" #@ ")
		assert.True(t, ok)
		assert.Equal(t, "", got)
	})
}
