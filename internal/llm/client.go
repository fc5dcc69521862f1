package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// GenerateRequest holds the parameters for a text-generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of a text-generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client provides access to a language model for text generation.
type Client interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// openAIClient implements Client using the OpenAI chat-completions API.
type openAIClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewOpenAIClient creates a Client that talks to an OpenAI-compatible
// chat-completions endpoint.
func NewOpenAIClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &openAIClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// chatRequest is the JSON body sent to POST /chat/completions.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the JSON body returned by POST /chat/completions.
type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (c *openAIClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := c.cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	messages := make([]chatMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.SystemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.UserPrompt})

	body := chatRequest{
		Model:       taskCfg.Model,
		Messages:    messages,
		Temperature: temp,
		MaxTokens:   maxTok,
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		resp, err := c.doRequest(ctx, body)
		if err == nil {
			text := ""
			model := body.Model
			if len(resp.Choices) > 0 {
				text = strings.TrimSpace(resp.Choices[0].Message.Content)
			}
			if resp.Model != "" {
				model = resp.Model
			}
			if text == "" {
				lastErr = ErrEmptyResponse
			} else {
				latency := time.Since(start).Milliseconds()
				c.observer.OnCallComplete(CallEvent{
					Task:      req.Task,
					Model:     model,
					LatencyMs: latency,
					Success:   true,
				})
				return &GenerateResponse{
					Text:      text,
					Model:     model,
					LatencyMs: latency,
				}, nil
			}
		} else {
			lastErr = err
		}

		// Don't retry on context cancellation/timeout
		if ctx.Err() != nil {
			break
		}
	}

	latency := time.Since(start).Milliseconds()
	c.observer.OnCallComplete(CallEvent{
		Task:      req.Task,
		Model:     body.Model,
		LatencyMs: latency,
		Success:   false,
		ErrorCode: errorCode(lastErr),
	})

	if ctx.Err() != nil {
		return nil, ErrTimeout
	}
	if isConnectionError(lastErr) {
		return nil, ErrUnavailable
	}
	if errors.Is(lastErr, ErrEmptyResponse) {
		return nil, ErrEmptyResponse
	}
	return nil, fmt.Errorf("%w: %v", ErrUpstream, lastErr)
}

func (c *openAIClient) doRequest(ctx context.Context, body chatRequest) (*chatResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := c.cfg.Endpoint + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		var resp chatResponse
		if err := json.Unmarshal(respBody, &resp); err == nil && resp.Error != nil {
			return nil, fmt.Errorf("api returned status %d: %s", httpResp.StatusCode, resp.Error.Message)
		}
		return nil, fmt.Errorf("api returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp chatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &resp, nil
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrEmptyResponse):
		return "EMPTY_RESPONSE"
	default:
		return "UPSTREAM"
	}
}
