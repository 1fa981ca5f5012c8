// Package embedder adapts an OpenAI-compatible embeddings API to the
// domain.Embedder port, with client-side rate limiting and retries.
package embedder

import (
	"context"
	crand "crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"hotel_recs/internal/adapters/observability"
)

type Client struct {
	c     *openai.Client
	model openai.EmbeddingModel
	rl    *rate.Limiter
}

// New builds a client. baseURL may be empty (api.openai.com) or point to any
// OpenAI-compatible embeddings server.
func New(baseURL, apiKey, model string, rps int) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("embeddings API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("embeddings model is required")
	}
	if rps <= 0 {
		rps = 5
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	return &Client{
		c:     openai.NewClientWithConfig(cfg),
		model: openai.EmbeddingModel(model),
		rl:    rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}
	vecs, err := c.embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("texts cannot be empty")
	}
	for i, t := range texts {
		if t == "" {
			return nil, fmt.Errorf("text at index %d cannot be empty", i)
		}
	}
	return c.embed(ctx, texts)
}

// embed performs the API call with rate limiting and retries on 429/5xx.
func (c *Client) embed(ctx context.Context, texts []string) ([][]float32, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		start := time.Now()
		resp, err := c.c.CreateEmbeddings(ctx, openai.EmbeddingRequest{
			Input: texts,
			Model: c.model,
		})
		observability.ObserveEmbedding("embed", err, time.Since(start))
		if err == nil {
			if len(resp.Data) != len(texts) {
				return nil, fmt.Errorf("embeddings response has %d vectors, want %d", len(resp.Data), len(texts))
			}
			out := make([][]float32, len(resp.Data))
			for j, d := range resp.Data {
				out[j] = d.Embedding
			}
			return out, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
		if !retryable(err) {
			return nil, err
		}
		if i < 3 && sleepCtx(ctx, backoff(i)) {
			continue
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		break
	}
	return nil, lastErr
}

func retryable(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
		return false
	}
	// network-level failures are worth a retry
	return true
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// backoff returns an exponential delay (200ms, 400ms, 800ms...) with up to
// +50% concurrency-safe jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
