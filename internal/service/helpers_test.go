package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeList(t *testing.T) {
	t.Run("trims and drops blanks, keeps order", func(t *testing.T) {
		got := normalizeList([]string{" a.png ", "", "  ", "b.png", "c.png "})
		assert.Equal(t, []string{"a.png", "b.png", "c.png"}, []string(got))
	})

	t.Run("nil input yields empty list", func(t *testing.T) {
		got := normalizeList(nil)
		assert.Empty(t, got)
	})
}

func TestIsBlank(t *testing.T) {
	assert.True(t, isBlank(""))
	assert.True(t, isBlank("   "))
	assert.True(t, isBlank("\t\n"))
	assert.False(t, isBlank(" x "))
}
