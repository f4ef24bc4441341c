package factory

import (
	"testing"

	"roadmap-be/pkg/llm/ollama"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider(t *testing.T) {
	p, err := NewLLMProvider("none", "", "")
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = NewLLMProvider("ollama", "llama3", "")
	require.NoError(t, err)
	o, ok := p.(*ollama.OllamaProvider)
	require.True(t, ok)
	assert.Equal(t, "http://localhost:11434", o.BaseURL)

	_, err = NewLLMProvider("gpt-9", "", "")
	assert.Error(t, err)
}
