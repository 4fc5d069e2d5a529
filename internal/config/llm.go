package config

import "os"

// LLMConfig holds configuration for the OpenRouter chat-completions API.
type LLMConfig struct {
	APIKey string `json:"-"` // Never serialize

	// BaseURL is the chat-completions endpoint.
	BaseURL string `json:"baseUrl"`

	// Model is the chat model used for all three prompt shapes
	// (question generation, answer evaluation, summary).
	Model string `json:"model"`

	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"maxTokens"`
	TimeoutMS   int     `json:"timeoutMs"`

	// Referer and Title are sent as HTTP-Referer / X-Title headers,
	// which OpenRouter uses for app attribution.
	Referer string `json:"referer"`
	Title   string `json:"title"`
}

// DefaultLLMConfig returns the default LLM configuration.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		APIKey:      os.Getenv("OPENROUTER_API_KEY"),
		BaseURL:     getEnvOrDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1/chat/completions"),
		Model:       getEnvOrDefault("OPENROUTER_MODEL", "deepseek/deepseek-chat"),
		Temperature: 0.7,
		MaxTokens:   2048,
		TimeoutMS:   30000, // 30 second budget per call
		Referer:     getEnvOrDefault("OPENROUTER_REFERER", "http://localhost:8080"),
		Title:       getEnvOrDefault("OPENROUTER_TITLE", "AI Mock Interview"),
	}
}

// IsEnabled returns true if the LLM API is configured.
func (c *LLMConfig) IsEnabled() bool {
	return c.APIKey != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
