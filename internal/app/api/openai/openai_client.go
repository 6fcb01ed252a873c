package openai

import (
	"strings"

	"github.com/sashabaranov/go-openai"
)

// NewClient creates an OpenAI client for apiKey. baseURL overrides the API
// endpoint when non-empty and should include the version path, e.g. ".../v1".
func NewClient(apiKey, baseURL string) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return openai.NewClientWithConfig(config)
}
