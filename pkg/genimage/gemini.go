// Package genimage wraps the Gemini generative-image API for creating new
// coloring-page stamps. The API itself is an opaque collaborator; this is
// prompt assembly, transport and inline-image extraction only.
package genimage

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/go-hclog"
	genai "google.golang.org/genai"
)

// DefaultModel is the image-capable Gemini model used for stamps.
const DefaultModel = "gemini-3-pro-image-preview"

// SystemPrompt enforces the coloring-book style on every generation.
const SystemPrompt = `You are an expert at creating simple, child-friendly coloring book images.

Generate a SQUARE image (1:1 aspect ratio) with these characteristics:
- Simple, bold black outlines
- Clear, defined shapes suitable for coloring
- White fill areas inside the outlines (for coloring)
- Magenta (#C51F8A or similar) background color
- No shading or gradients inside the coloring areas
- Cute, friendly, and appealing to children
- Single subject, centered in the frame
- Clean, professional coloring book style
- Square format (equal width and height)

The image should be perfect for printing and coloring with crayons or markers.`

var (
	// ErrNoImage means the model answered without an inline image part.
	ErrNoImage = errors.New("❌ no image in model response")
)

// Client is a thin wrapper around the official genai client.
type Client struct {
	cli    *genai.Client
	model  string
	logger hclog.Logger
}

// NewClient creates a Gemini client for the given API key. An empty model
// selects DefaultModel.
func NewClient(ctx context.Context, apiKey, model string, logger hclog.Logger) (*Client, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{cli: cli, model: model, logger: logger}, nil
}

// Model returns the model name in use.
func (c *Client) Model() string { return c.model }

// GenerateStamp sends the user prompt with SystemPrompt prepended and
// returns the raw bytes of the first inline image in the response. Failed
// attempts are retried with backoff.
func (c *Client) GenerateStamp(ctx context.Context, prompt string) ([]byte, error) {
	full := SystemPrompt + "\n\nUser request: " + prompt
	c.logger.Info("🎨 Generating image", "model", c.model, "prompt", prompt)

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		if attempt > 0 {
			if err := waitRetry(ctx, attempt-1); err != nil {
				return nil, err
			}
		}

		resp, err := c.cli.Models.GenerateContent(ctx, c.model,
			[]*genai.Content{{Role: "user", Parts: []*genai.Part{{Text: full}}}},
			&genai.GenerateContentConfig{
				ResponseModalities: []string{"IMAGE", "TEXT"},
				ImageConfig:        &genai.ImageConfig{AspectRatio: "1:1"},
			},
		)
		if err != nil {
			lastErr = err
		} else if data := c.firstInlineImage(resp); data != nil {
			c.logger.Info("✅ Image received", "bytes", len(data))
			return data, nil
		} else {
			lastErr = ErrNoImage
		}

		c.logger.Warn("⚠️ Generation attempt failed", "attempt", attempt+1, "error", lastErr)
	}
	return nil, lastErr
}

// waitRetry sleeps the backoff before retry n (0-based), honoring
// cancellation. No sleep happens after the final attempt.
func waitRetry(ctx context.Context, retry int) error {
	backoff := time.Duration(300*(1<<retry)) * time.Millisecond
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(backoff):
		return nil
	}
}

// firstInlineImage walks the response parts for inline image data. Text
// parts are surfaced at debug level since the model sometimes narrates.
func (c *Client) firstInlineImage(resp *genai.GenerateContentResponse) []byte {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data
			}
			if part.Text != "" {
				c.logger.Debug("💬 Model text", "text", part.Text)
			}
		}
	}
	return nil
}
