package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mozi-streaming-be/pkg/llm"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultModel   = "gemini-2.5-flash"
	defaultTimeout = 30 * time.Second

	maxAttempts   = 3
	backoffUnit   = 2 * time.Second
	roleModelUser = "user"
	roleModel     = "model"
)

type chatPart struct {
	Text string `json:"text"`
}

type chatContent struct {
	Role  string     `json:"role"`
	Parts []chatPart `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type chatRequest struct {
	Contents         []chatContent    `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings"`
}

type chatResponse struct {
	Candidates []struct {
		Content struct {
			Parts []chatPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

// Provider talks to the Gemini generateContent endpoint. It owns the
// retry/backoff policy for transient upstream failures.
type Provider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	sleep   func(time.Duration)
}

type Option func(*Provider)

func WithModel(model string) Option {
	return func(p *Provider) { p.model = model }
}

func WithBaseURL(baseURL string) Option {
	return func(p *Provider) { p.baseURL = baseURL }
}

func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) { p.client = client }
}

// WithSleep swaps the backoff sleeper, used by tests to avoid real waits.
func WithSleep(sleep func(time.Duration)) Option {
	return func(p *Provider) { p.sleep = sleep }
}

func NewProvider(apiKey string, options ...Option) *Provider {
	p := &Provider{
		apiKey:  apiKey,
		model:   defaultModel,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: defaultTimeout},
		sleep:   time.Sleep,
	}
	for _, o := range options {
		o(p)
	}
	return p
}

// Complete sends the conversation to Gemini. Up to 3 attempts are made; only
// a 429 or 503 triggers a retry, waiting 2s then 4s before attempts 2 and 3.
// Any other failure aborts immediately. After exhaustion the last error is
// surfaced wrapped as ErrModelUnavailable.
func (p *Provider) Complete(ctx context.Context, turns []llm.Message) (*llm.Completion, error) {
	payload, err := json.Marshal(p.buildRequest(turns))
	if err != nil {
		return nil, fmt.Errorf("marshal gemini request: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		completion, retryable, err := p.doRequest(ctx, payload)
		if err == nil {
			return completion, nil
		}
		lastErr = err

		if !retryable {
			break
		}
		if attempt < maxAttempts {
			p.sleep(time.Duration(attempt) * backoffUnit)
		}
	}

	return nil, lastErr
}

// buildRequest maps internal roles onto Gemini's: assistant turns become
// "model", everything else (user and system) becomes "user".
func (p *Provider) buildRequest(turns []llm.Message) chatRequest {
	contents := make([]chatContent, 0, len(turns))
	for _, turn := range turns {
		role := roleModelUser
		if turn.Role == llm.RoleAssistant {
			role = roleModel
		}
		contents = append(contents, chatContent{
			Role:  role,
			Parts: []chatPart{{Text: turn.Content}},
		})
	}

	return chatRequest{
		Contents: contents,
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 1024,
		},
		SafetySettings: []safetySetting{
			{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
			{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
		},
	}
}

func (p *Provider) doRequest(ctx context.Context, payload []byte) (*llm.Completion, bool, error) {
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", p.baseURL, p.model, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", llm.ErrModelUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", llm.ErrModelUnavailable, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, false, fmt.Errorf("%w: read response: %v", llm.ErrModelUnavailable, err)
	}

	if res.StatusCode != http.StatusOK {
		retryable := res.StatusCode == http.StatusTooManyRequests ||
			res.StatusCode == http.StatusServiceUnavailable
		if retryable {
			return nil, true, fmt.Errorf("%w: upstream overloaded (status %d)", llm.ErrModelUnavailable, res.StatusCode)
		}
		return nil, false, fmt.Errorf("%w: status %d: %s", llm.ErrModelUnavailable, res.StatusCode, string(body))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, false, fmt.Errorf("%w: %v", llm.ErrModelResponseInvalid, err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, false, fmt.Errorf("%w: no candidates in payload", llm.ErrModelResponseInvalid)
	}

	return &llm.Completion{
		Text: parsed.Candidates[0].Content.Parts[0].Text,
		Tokens: llm.TokenUsage{
			Prompt:     parsed.UsageMetadata.PromptTokenCount,
			Completion: parsed.UsageMetadata.CandidatesTokenCount,
			Total:      parsed.UsageMetadata.TotalTokenCount,
		},
	}, false, nil
}
