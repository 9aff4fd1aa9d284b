package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rgerrors "github.com/redgreen-ai/redgreen/pkg/errors"
)

func TestMockProviderReturnsResponsesInOrder(t *testing.T) {
	provider := NewMockProvider(
		MockResponse{Response: "The capital of France is Paris.", Model: "claude-3-sonnet", TokensUsed: 25, LatencyMS: 150},
		MockResponse{Response: "second"},
	)

	resp, err := provider.Generate(context.Background(), GenerateRequest{Prompt: "What is the capital of France?"})
	require.NoError(t, err)
	assert.Equal(t, "The capital of France is Paris.", resp.Response)
	assert.Equal(t, "claude-3-sonnet", resp.Metadata.Model)
	assert.Equal(t, 25, resp.Metadata.TokensUsed)
	assert.Equal(t, int64(150), resp.Metadata.LatencyMS)
	assert.NotEmpty(t, resp.RequestID)

	resp, err = provider.Generate(context.Background(), GenerateRequest{Prompt: "next"})
	require.NoError(t, err)
	assert.Equal(t, "second", resp.Response)
	assert.Equal(t, "mock-model", resp.Metadata.Model)
}

func TestMockProviderExhausted(t *testing.T) {
	provider := NewMockProvider()

	_, err := provider.Generate(context.Background(), GenerateRequest{Prompt: "anything"})
	require.Error(t, err)

	var provErr *rgerrors.ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, "mock", provErr.Provider)
}

func TestMockProviderErrorPropagatesUnchanged(t *testing.T) {
	apiErr := errors.New("API Error")
	provider := NewMockProvider(MockResponse{Err: apiErr})

	_, err := provider.Generate(context.Background(), GenerateRequest{Prompt: "test prompt"})
	assert.Same(t, apiErr, err)
}

func TestMockProviderRecordsRequests(t *testing.T) {
	provider := NewMockProvider(
		MockResponse{Response: "a"},
		MockResponse{Response: "b"},
	)

	_, err := provider.Generate(context.Background(), GenerateRequest{Prompt: "one"})
	require.NoError(t, err)
	_, err = provider.Generate(context.Background(), GenerateRequest{Prompt: "two"})
	require.NoError(t, err)

	requests := provider.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, "one", requests[0].Prompt)
	assert.Equal(t, "two", requests[1].Prompt)
}

func TestMockProviderReset(t *testing.T) {
	provider := NewMockProvider(MockResponse{Response: "a"})

	_, err := provider.Generate(context.Background(), GenerateRequest{Prompt: "one"})
	require.NoError(t, err)

	provider.Reset()
	assert.Empty(t, provider.Requests())

	resp, err := provider.Generate(context.Background(), GenerateRequest{Prompt: "again"})
	require.NoError(t, err)
	assert.Equal(t, "a", resp.Response)
}
