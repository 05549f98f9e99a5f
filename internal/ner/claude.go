package ner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/dgallion1/donorscan/internal/chunker"
)

const defaultMessagesURL = "https://api.anthropic.com/v1/messages"

// ClaudeRecognizer asks the Anthropic Messages API to label entities.
// Long inputs are split into token-bounded chunks and the entity lists
// are concatenated in chunk order.
type ClaudeRecognizer struct {
	apiKey     string
	model      string
	endpoint   string
	chunkCfg   chunker.Config
	httpClient *http.Client
}

// ClaudeOption customizes a ClaudeRecognizer.
type ClaudeOption func(*ClaudeRecognizer)

// WithEndpoint overrides the Messages API URL.
func WithEndpoint(url string) ClaudeOption {
	return func(c *ClaudeRecognizer) { c.endpoint = url }
}

// WithChunkSize sets the per-call token budget for input text.
func WithChunkSize(tokens int) ClaudeOption {
	return func(c *ClaudeRecognizer) {
		if tokens > 0 {
			c.chunkCfg.ChunkSize = tokens
		}
	}
}

func NewClaudeRecognizer(apiKey, model string, opts ...ClaudeOption) *ClaudeRecognizer {
	c := &ClaudeRecognizer{
		apiKey:   apiKey,
		model:    model,
		endpoint: defaultMessagesURL,
		chunkCfg: chunker.DefaultConfig(),
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Model returns the configured model name.
func (c *ClaudeRecognizer) Model() string {
	return c.model
}

func (c *ClaudeRecognizer) Recognize(ctx context.Context, text string) ([]Entity, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var out []Entity
	for _, part := range chunker.Split(text, c.chunkCfg) {
		ents, err := c.recognizeChunk(ctx, part)
		if err != nil {
			return nil, &RecognitionError{Backend: "claude", Err: err}
		}
		out = append(out, ents...)
	}
	return out, nil
}

func (c *ClaudeRecognizer) recognizeChunk(ctx context.Context, text string) ([]Entity, error) {
	reqBody := anthropicRequest{
		Model:     c.model,
		MaxTokens: 4096,
		System:    EntityPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: BuildEntityPrompt(text)},
		},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("claude api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("claude api status %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var apiResp anthropicResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if apiResp.Error != nil {
		return nil, fmt.Errorf("claude error: %s: %s", apiResp.Error.Type, apiResp.Error.Message)
	}
	if len(apiResp.Content) == 0 {
		return nil, fmt.Errorf("empty response from claude")
	}

	raw := stripCodeBlock(apiResp.Content[0].Text)

	var ents []Entity
	if err := json.Unmarshal([]byte(raw), &ents); err != nil {
		return nil, fmt.Errorf("parse entities json: %w (raw: %s)", err, truncate(raw, 200))
	}
	out := ents[:0]
	for i := range ents {
		if ValidateEntity(&ents[i]) {
			out = append(out, ents[i])
		}
	}
	return out, nil
}

var codeBlockRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

func stripCodeBlock(s string) string {
	s = strings.TrimSpace(s)
	if m := codeBlockRe.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Close releases resources.
func (c *ClaudeRecognizer) Close() {
	c.httpClient.CloseIdleConnections()
}
