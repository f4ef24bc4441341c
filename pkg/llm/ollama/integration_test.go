package ollama

import (
	"context"
	"os"
	"testing"
	"time"

	"roadmap-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real Ollama when OLLAMA_BASE_URL is set.
func TestOllamaLive(t *testing.T) {
	baseURL := os.Getenv("OLLAMA_BASE_URL")
	if baseURL == "" {
		t.Skip("OLLAMA_BASE_URL not set")
	}
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gemma:2b"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	out, err := NewOllamaProvider(baseURL, model).Chat(ctx, []llm.Message{
		{Role: "system", Content: "Answer with a single word."},
		{Role: "user", Content: "What data structure do most database indexes use?"},
	}, llm.WithTemperature(0), llm.WithMaxTokens(16))
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
