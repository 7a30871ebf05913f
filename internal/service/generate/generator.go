// internal/service/generate/generator.go

package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"trendscope/internal/domain/content"
)

const (
	defaultAPIURL    = "https://api.anthropic.com/v1/messages"
	anthropicVersion = "2023-06-01"
	defaultModel     = "claude-sonnet-4-20250514"
	defaultMaxTokens = 1024
	defaultTimeout   = 60 * time.Second
	systemPrompt     = "You are a social media copywriter. Write a single post ready to publish. Keep it under 280 characters for twitter. Reply with the post text only."
)

// ErrNoAPIKey is returned when draft generation is requested without a
// configured provider key.
var ErrNoAPIKey = errors.New("generative model API key not configured")

// Generator drafts social posts through a messages-style completion API.
type Generator struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Config holds configuration for the generator.
type Config struct {
	APIKey string
	APIURL string
	Model  string
}

// NewGenerator creates a new draft generator.
func NewGenerator(cfg Config, logger zerolog.Logger) *Generator {
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &Generator{
		apiKey: cfg.APIKey,
		apiURL: apiURL,
		model:  model,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []message `json:"messages"`
}

type completionResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Draft asks the model for one post about the requested topic and wraps the
// reply in a content.Draft.
func (g *Generator) Draft(ctx context.Context, req content.DraftRequest) (*content.Draft, error) {
	if g.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	text, err := g.complete(ctx, buildPrompt(req))
	if err != nil {
		return nil, err
	}

	g.logger.Debug().Str("topic", req.Topic).Str("platform", req.Platform).Msg("draft generated")

	return &content.Draft{
		ID:        uuid.New().String(),
		Topic:     req.Topic,
		Platform:  req.Platform,
		Text:      text,
		Hashtags:  extractHashtags(text),
		CreatedAt: time.Now().UTC(),
	}, nil
}

func buildPrompt(req content.DraftRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Draft a social media post about %q", req.Topic)
	if req.Platform != "" {
		fmt.Fprintf(&b, " for %s", req.Platform)
	}
	if req.Tone != "" {
		fmt.Fprintf(&b, " in a %s tone", req.Tone)
	}
	b.WriteString(". Include two or three relevant hashtags.")
	return b.String()
}

func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model:     g.model,
		MaxTokens: defaultMaxTokens,
		System:    systemPrompt,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", g.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", g.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var completion completionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if completion.Error != nil {
		return "", fmt.Errorf("model API error: %s - %s", completion.Error.Type, completion.Error.Message)
	}

	if len(completion.Content) == 0 || completion.Content[0].Text == "" {
		return "", fmt.Errorf("empty response from model")
	}

	return strings.TrimSpace(completion.Content[0].Text), nil
}

// extractHashtags collects the hashtags the model wove into the post text.
func extractHashtags(text string) []string {
	tags := []string{}
	for _, field := range strings.Fields(text) {
		if strings.HasPrefix(field, "#") && len(field) > 1 {
			tags = append(tags, strings.TrimRight(field, ".,!?:;"))
		}
	}
	return tags
}
