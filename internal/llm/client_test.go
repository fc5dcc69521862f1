package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Endpoint = endpoint
	return cfg
}

func chatOK(model, content string) chatResponse {
	return chatResponse{
		Model: model,
		Choices: []struct {
			Message chatMessage `json:"message"`
		}{
			{Message: chatMessage{Role: "assistant", Content: content}},
		},
	}
}

func TestOpenAIClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o", req.Model)
		assert.Equal(t, 6000, req.MaxTokens)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "system prompt", req.Messages[0].Content)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, "user prompt", req.Messages[1].Content)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatOK("gpt-4o", "Job Title: Engineer"))
	}))
	defer srv.Close()

	client := NewOpenAIClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskCareerPaths,
		SystemPrompt: "system prompt",
		UserPrompt:   "user prompt",
	})

	require.NoError(t, err)
	assert.Equal(t, "Job Title: Engineer", resp.Text)
	assert.Equal(t, "gpt-4o", resp.Model)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(0))
}

func TestOpenAIClient_Generate_NoSystemPrompt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		json.NewEncoder(w).Encode(chatOK("gpt-4", "hello"))
	}))
	defer srv.Close()

	client := NewOpenAIClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskChat,
		UserPrompt: "hi",
	})

	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Text)
}

func TestOpenAIClient_Generate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Tasks = map[TaskType]TaskConfig{
		TaskChat: {Model: "gpt-4", Temperature: 0.7, MaxTokens: 2000, TimeoutMs: 50},
	}

	client := NewOpenAIClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskChat,
		UserPrompt: "test",
	})

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestOpenAIClient_Generate_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1") // nothing listening
	cfg.Tasks = map[TaskType]TaskConfig{
		TaskChat: {Model: "gpt-4", Temperature: 0.7, MaxTokens: 2000, TimeoutMs: 1000},
	}

	client := NewOpenAIClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskChat,
		UserPrompt: "test",
	})

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestOpenAIClient_Generate_SingleAttemptByDefault(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(chatResponse{Error: &apiError{Message: "overloaded", Type: "server_error"}})
	}))
	defer srv.Close()

	client := NewOpenAIClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskPersonality,
		UserPrompt: "test",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), "overloaded")
	assert.Equal(t, 1, attempts)
}

func TestOpenAIClient_Generate_RetryWhenEnabled(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("internal error"))
			return
		}
		json.NewEncoder(w).Encode(chatOK("gpt-4", "ok"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1

	client := NewOpenAIClient(cfg, NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskChat,
		UserPrompt: "test",
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, 2, attempts)
}

func TestOpenAIClient_Generate_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatResponse{Model: "gpt-4"})
	}))
	defer srv.Close()

	client := NewOpenAIClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskChat,
		UserPrompt: "test",
	})

	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestOpenAIClient_ObserverCalled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatOK("gpt-4", "ok"))
	}))
	defer srv.Close()

	var captured CallEvent
	obs := &captureObserver{fn: func(e CallEvent) { captured = e }}

	client := NewOpenAIClient(testConfig(srv.URL), obs)
	_, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskChat,
		UserPrompt: "test",
	})

	require.NoError(t, err)
	assert.Equal(t, TaskChat, captured.Task)
	assert.Equal(t, "gpt-4", captured.Model)
	assert.True(t, captured.Success)
	assert.GreaterOrEqual(t, captured.LatencyMs, int64(0))
}

func TestOpenAIClient_ObserverTimeoutErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Tasks = map[TaskType]TaskConfig{
		TaskChat: {Model: "gpt-4", Temperature: 0.7, MaxTokens: 2000, TimeoutMs: 50},
	}

	var captured CallEvent
	obs := &captureObserver{fn: func(e CallEvent) { captured = e }}
	client := NewOpenAIClient(cfg, obs)

	_, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskChat,
		UserPrompt: "test",
	})

	assert.ErrorIs(t, err, ErrTimeout)
	assert.False(t, captured.Success)
	assert.Equal(t, "TIMEOUT", captured.ErrorCode)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0, cfg.MaxRetries)
	assert.Equal(t, "gpt-4o", cfg.Tasks[TaskCareerPaths].Model)
	assert.Equal(t, 8000, cfg.Tasks[TaskEmergingCareers].MaxTokens)
	assert.Equal(t, "gpt-4", cfg.Tasks[TaskPersonality].Model)
	assert.Equal(t, 2000, cfg.Tasks[TaskChat].MaxTokens)
}

type captureObserver struct {
	fn func(CallEvent)
}

func (o *captureObserver) OnCallComplete(e CallEvent) { o.fn(e) }
