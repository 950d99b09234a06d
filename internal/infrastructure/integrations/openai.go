package integrations

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

const (
	openaiAPIURL = "https://api.openai.com/v1/chat/completions"

	openaiRequestTimeout  = 60 * time.Second
	maxOpenAIResponseSize = 1 << 20
)

// CopyGenerator drafts guest post copy from an order brief.
type CopyGenerator interface {
	GenerateDraft(ctx context.Context, brief CopyBrief) (string, error)
	Enabled() bool
}

// CopyBrief is the input for a content draft.
type CopyBrief struct {
	AnchorText string
	TargetURL  string
	Title      string
	Notes      string
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// OpenAIClient calls the chat completions API. Disabled when no key is
// configured; the content endpoint then returns a conflict error.
type OpenAIClient struct {
	apiKey     string
	model      string
	httpClient *http.Client
	log        logger.Interface
}

func NewOpenAIClient(apiKey, model string, log logger.Interface) *OpenAIClient {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIClient{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: openaiRequestTimeout,
		},
		log: log,
	}
}

var _ CopyGenerator = (*OpenAIClient)(nil)

func (c *OpenAIClient) Enabled() bool {
	return c.apiKey != ""
}

func (c *OpenAIClient) GenerateDraft(ctx context.Context, brief CopyBrief) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("openai client is not configured")
	}

	prompt := fmt.Sprintf(
		"Write a guest post draft titled %q. It must naturally link the anchor text %q to %s. Additional notes: %s",
		brief.Title, brief.AnchorText, brief.TargetURL, brief.Notes,
	)

	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a content writer for a link building agency. Write clean, publishable article drafts."},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openaiAPIURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxOpenAIResponseSize))
	if err != nil {
		return "", fmt.Errorf("failed to read openai response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse openai response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
