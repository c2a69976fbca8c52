package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTitle(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)

	t.Run("short message used as is", func(t *testing.T) {
		title := deriveTitle("What should I eat for breakfast?", now)
		assert.Equal(t, "What should I eat for breakfast?", title)
	})

	t.Run("whitespace collapsed", func(t *testing.T) {
		title := deriveTitle("  how   much \n protein  ", now)
		assert.Equal(t, "how much protein", title)
	})

	t.Run("long message trimmed at word boundary with ellipsis", func(t *testing.T) {
		msg := "I would like to understand how many grams of protein I should be eating every single day"
		title := deriveTitle(msg, now)

		assert.True(t, strings.HasSuffix(title, "…"), "expected ellipsis, got %q", title)
		assert.LessOrEqual(t, len([]rune(title)), 51)
		// No cut mid-word: the part before the ellipsis is a prefix of the
		// message ending on a full word.
		body := strings.TrimSuffix(title, "…")
		assert.True(t, strings.HasPrefix(msg, body))
		assert.False(t, strings.HasSuffix(body, " "))
		rest := msg[len(body):]
		assert.True(t, strings.HasPrefix(rest, " "), "cut landed mid-word: %q", title)
	})

	t.Run("single long word hard cut", func(t *testing.T) {
		msg := strings.Repeat("a", 80)
		title := deriveTitle(msg, now)
		assert.Equal(t, strings.Repeat("a", 50)+"…", title)
	})

	t.Run("exactly at limit not truncated", func(t *testing.T) {
		msg := strings.Repeat("b", 50)
		title := deriveTitle(msg, now)
		assert.Equal(t, msg, title)
	})

	t.Run("empty message falls back to timestamp", func(t *testing.T) {
		title := deriveTitle("   ", now)
		assert.Equal(t, "Chat 2026-03-14 09:26", title)
	})

	t.Run("multibyte runes counted not bytes", func(t *testing.T) {
		msg := strings.Repeat("не", 25) // 50 runes, 100 bytes
		title := deriveTitle(msg, now)
		assert.Equal(t, msg, title)
	})
}
