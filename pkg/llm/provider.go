// Package llm provides abstractions for Large Language Model providers.
// This package is designed to be embeddable in other Go applications and
// provides a provider-agnostic interface for generating responses to
// validation prompts.
package llm

import (
	"context"
	"time"
)

// Provider defines the interface that all LLM providers must implement.
// The validation harness holds a Provider but never interprets its errors:
// failures propagate to the caller unchanged.
type Provider interface {
	// Name returns the unique identifier for this provider (e.g., "anthropic", "mock").
	Name() string

	// Generate sends a synchronous generation request and returns the full response.
	// This method blocks until the response is complete.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// GenerateRequest contains all parameters for a generation request.
type GenerateRequest struct {
	// Prompt is the text prompt to send to the model.
	Prompt string

	// Model specifies which model to use. Empty uses the provider default.
	Model string

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	// Valid range: 0.0-1.0. Default: provider-specific.
	Temperature *float64

	// MaxTokens limits the response length. If nil, uses provider default.
	MaxTokens *int

	// Metadata contains request tracking information (correlation IDs, etc).
	Metadata map[string]string
}

// GenerateResponse contains the full response from a generation request.
type GenerateResponse struct {
	// Response is the generated text.
	Response string

	// Metadata describes how the response was produced.
	Metadata ResponseMetadata

	// RequestID is the unique identifier for this request (for tracing).
	RequestID string

	// Created is the timestamp when this response was generated.
	Created time.Time
}

// ResponseMetadata carries provenance and cost information for a response.
type ResponseMetadata struct {
	// Model is the actual model ID that handled this request.
	Model string

	// TokensUsed is the total token consumption for the request.
	TokensUsed int

	// LatencyMS is the provider-reported request latency in milliseconds.
	LatencyMS int64
}
