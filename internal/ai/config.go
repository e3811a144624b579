package ai

import (
	"os"
	"time"
)

const (
	defaultAPIURL      = "https://api.openai.com/v1/chat/completions"
	defaultModel       = "gpt-4-turbo-preview"
	defaultTemperature = 0.7
	defaultMaxTokens   = 500
	defaultTimeout     = 30 * time.Second
)

// Config carries the chat completion provider settings.
type Config struct {
	APIKey      string
	APIURL      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// ConfigFromEnv reads provider settings from the environment. A missing
// API key is not an error here; Complete reports ErrNotConfigured when
// a request is actually attempted.
func ConfigFromEnv() Config {
	config := Config{
		APIKey:      os.Getenv("AI_API_KEY"),
		APIURL:      os.Getenv("AI_API_URL"),
		Model:       os.Getenv("AI_MODEL"),
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
		Timeout:     defaultTimeout,
	}
	if config.APIURL == "" {
		config.APIURL = defaultAPIURL
	}
	if config.Model == "" {
		config.Model = defaultModel
	}
	return config
}
