package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"truthlens/internal/logging"
)

// FallbackModel is tried once when the primary model fails.
const FallbackModel = "gemini-2.5-flash"

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiConfig configures a GeminiClient.
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultGeminiConfig returns sensible defaults.
func DefaultGeminiConfig(apiKey string) GeminiConfig {
	return GeminiConfig{
		APIKey:  apiKey,
		BaseURL: defaultGeminiBaseURL,
		Model:   FallbackModel,
		Timeout: 2 * time.Minute,
	}
}

// GeminiClient implements Client against the Gemini REST API with a
// model fallback chain and a circuit breaker.
type GeminiClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	breaker    *CircuitBreaker

	// sleep is swappable in tests.
	sleep func(time.Duration)
}

// NewGeminiClient creates a Gemini client.
func NewGeminiClient(config GeminiConfig) *GeminiClient {
	model := strings.TrimSpace(config.Model)
	if model == "" {
		model = FallbackModel
	}
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 2 * time.Minute
	}
	return &GeminiClient{
		apiKey:     config.APIKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    NewCircuitBreaker(),
		sleep:      time.Sleep,
	}
}

// Breaker exposes the circuit breaker for state reporting.
func (c *GeminiClient) Breaker() *CircuitBreaker { return c.breaker }

// Gemini REST wire types.

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type geminiRequest struct {
	Contents          []geminiContent        `json:"contents"`
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Complete sends one completion request, trying the primary model first
// and falling back to FallbackModel on failure. The circuit breaker
// fast-fails when the provider is known to be down.
func (c *GeminiClient) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	if c.breaker.IsOpen() {
		return "", ErrCircuitOpen
	}
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	timer := logging.StartTimer(logging.CategoryLLM, "gemini complete")
	defer timer.Stop()

	result, primaryErr := c.callModel(ctx, c.model, prompt, opts, 2)
	if primaryErr == nil {
		c.breaker.RecordSuccess()
		return result, nil
	}

	if c.model != FallbackModel {
		logging.Get(logging.CategoryLLM).Warn(
			"primary model %s failed (%v), falling back to %s", c.model, primaryErr, FallbackModel)
		result, fallbackErr := c.callModel(ctx, FallbackModel, prompt, opts, 1)
		if fallbackErr == nil {
			c.breaker.RecordSuccess()
			return result, nil
		}
		c.breaker.RecordFailure()
		return "", fmt.Errorf("fallback model %s failed: %w (primary: %v)", FallbackModel, fallbackErr, primaryErr)
	}

	c.breaker.RecordFailure()
	return "", primaryErr
}

// callModel calls a specific model with exponential backoff on transient
// errors.
func (c *GeminiClient) callModel(ctx context.Context, model, prompt string, opts Options, maxRetries int) (string, error) {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		text, err := c.doRequest(ctx, model, prompt, opts)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !isTransient(err) || attempt == maxRetries-1 {
			return "", err
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			c.sleep(time.Duration(1<<attempt) * time.Second)
		}
	}
	return "", lastErr
}

func (c *GeminiClient) doRequest(ctx context.Context, model, prompt string, opts Options) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}, Role: "user"},
		},
		GenerationConfig: geminiGenerationConfig{Temperature: opts.Temperature},
	}
	if opts.SystemInstruction != "" {
		reqBody.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: opts.SystemInstruction}}}
	}
	if opts.JSONMode {
		reqBody.GenerationConfig.ResponseMimeType = "application/json"
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini api error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("gemini api error %d (%s): %s", parsed.Error.Code, parsed.Error.Status, parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
