package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of narrative task being generated.
type TaskType string

const (
	TaskCareerPaths     TaskType = "career_paths"
	TaskEmergingCareers TaskType = "emerging_careers"
	TaskPersonality     TaskType = "personality"
	TaskChat            TaskType = "chat"
)

// TaskConfig holds the fixed sampling parameters for one task.
type TaskConfig struct {
	Model       string
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides the global timeout if > 0
}

// Config holds all configuration for the text-generation subsystem.
type Config struct {
	APIKey     string
	Endpoint   string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns the per-task sampling parameters the product
// ships with. Calls are attempted exactly once unless retries are
// explicitly enabled.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "https://api.openai.com/v1",
		TimeoutMs:  120000,
		MaxRetries: 0,
		Tasks: map[TaskType]TaskConfig{
			TaskCareerPaths:     {Model: "gpt-4o", Temperature: 0.7, MaxTokens: 6000},
			TaskEmergingCareers: {Model: "gpt-4o", Temperature: 0.7, MaxTokens: 8000},
			TaskPersonality:     {Model: "gpt-4", Temperature: 0.7, MaxTokens: 1500},
			TaskChat:            {Model: "gpt-4", Temperature: 0.7, MaxTokens: 2000},
		},
	}
}

// LoadConfig reads configuration from environment variables, falling
// back to defaults for anything unset.
func LoadConfig() Config {
	cfg := DefaultConfig()

	cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	if v := os.Getenv("ONTRACK_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("ONTRACK_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("ONTRACK_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("ONTRACK_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	return cfg
}

// TaskTimeout returns the effective timeout for a task in milliseconds.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
