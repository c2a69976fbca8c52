package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleBasedGenerator(t *testing.T) {
	g := NewRuleBasedGenerator()
	ctx := context.Background()

	t.Run("empty history gets a greeting", func(t *testing.T) {
		reply, err := g.Generate(ctx, nil)
		require.NoError(t, err)
		assert.Contains(t, reply, "nutrition assistant")
	})

	t.Run("matches topic from last user message", func(t *testing.T) {
		reply, err := g.Generate(ctx, []Message{
			{Role: "user", Content: "How much protein do I need?"},
		})
		require.NoError(t, err)
		assert.Contains(t, reply, "protein")
	})

	t.Run("only user messages drive the topic", func(t *testing.T) {
		reply, err := g.Generate(ctx, []Message{
			{Role: "user", Content: "Tell me about hydration and water intake"},
			{Role: "assistant", Content: "Talking about protein here"},
		})
		require.NoError(t, err)
		assert.Contains(t, reply, "water")
	})

	t.Run("unmatched message gets generic reply echoing the question", func(t *testing.T) {
		reply, err := g.Generate(ctx, []Message{
			{Role: "user", Content: "zzz quux"},
		})
		require.NoError(t, err)
		assert.Contains(t, reply, "zzz quux")
	})

	t.Run("long unmatched message is truncated in the echo", func(t *testing.T) {
		long := make([]rune, 100)
		for i := range long {
			long[i] = 'q'
		}
		reply, err := g.Generate(ctx, []Message{
			{Role: "user", Content: string(long)},
		})
		require.NoError(t, err)
		assert.NotContains(t, reply, string(long))
	})

	t.Run("cancelled context returns error", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := g.Generate(cancelled, []Message{{Role: "user", Content: "hi"}})
		assert.Error(t, err)
	})
}
