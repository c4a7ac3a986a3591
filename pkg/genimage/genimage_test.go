package genimage

import (
	"context"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	genai "google.golang.org/genai"
)

func TestLoadAPIKey(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		_, err := LoadAPIKey()
		require.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("present", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "test-key")
		key, err := LoadAPIKey()
		require.NoError(t, err)
		assert.Equal(t, "test-key", key)
	})
}

func TestWaitRetry(t *testing.T) {
	t.Run("cancelled context returns immediately", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		start := time.Now()
		err := waitRetry(ctx, 2)
		require.ErrorIs(t, err, context.Canceled)
		assert.Less(t, time.Since(start), 100*time.Millisecond,
			"cancellation must short-circuit the backoff")
	})

	t.Run("sleeps the backoff", func(t *testing.T) {
		start := time.Now()
		require.NoError(t, waitRetry(context.Background(), 0))
		assert.GreaterOrEqual(t, time.Since(start), 250*time.Millisecond)
	})
}

func TestFirstInlineImage(t *testing.T) {
	c := &Client{logger: hclog.NewNullLogger()}

	t.Run("image after text", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{
					Content: &genai.Content{
						Parts: []*genai.Part{
							{Text: "Here is your stamp"},
							{InlineData: &genai.Blob{Data: []byte{0x89, 0x50}}},
						},
					},
				},
			},
		}
		assert.Equal(t, []byte{0x89, 0x50}, c.firstInlineImage(resp))
	})

	t.Run("text only", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []*genai.Part{{Text: "cannot help"}}}},
			},
		}
		assert.Nil(t, c.firstInlineImage(resp))
	})

	t.Run("empty candidates", func(t *testing.T) {
		assert.Nil(t, c.firstInlineImage(&genai.GenerateContentResponse{}))
		assert.Nil(t, c.firstInlineImage(&genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{}},
		}))
	})
}
