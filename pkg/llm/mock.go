package llm

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/redgreen-ai/redgreen/pkg/errors"
)

// MockProvider implements Provider for testing.
// It returns pre-configured responses in order and records all requests for
// assertions. The red-green-refactor driver uses it in place of a real client
// so validation runs stay deterministic and offline.
type MockProvider struct {
	responses    []MockResponse
	currentIndex int
	requests     []GenerateRequest
	mu           sync.Mutex
}

// MockResponse defines a pre-configured response for the mock provider.
type MockResponse struct {
	// Response is the text to return.
	Response string

	// Model is the model ID to report (defaults to "mock-model").
	Model string

	// TokensUsed is the token count to report.
	TokensUsed int

	// LatencyMS is the latency to report in milliseconds.
	LatencyMS int64

	// Err is returned instead of a successful response.
	Err error
}

// NewMockProvider creates a mock LLM provider with pre-configured responses.
// Responses are returned in order for each Generate call. If more requests
// are made than responses provided, a ProviderError is returned.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{
		responses: responses,
		requests:  make([]GenerateRequest, 0),
	}
}

// Name returns the provider identifier.
func (m *MockProvider) Name() string {
	return "mock"
}

// Generate returns the next pre-configured response.
func (m *MockProvider) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)

	if m.currentIndex >= len(m.responses) {
		return nil, &errors.ProviderError{
			Provider: "mock",
			Message:  "no more responses configured",
		}
	}

	mockResp := m.responses[m.currentIndex]
	m.currentIndex++

	if mockResp.Err != nil {
		return nil, mockResp.Err
	}

	model := mockResp.Model
	if model == "" {
		model = "mock-model"
	}

	return &GenerateResponse{
		Response: mockResp.Response,
		Metadata: ResponseMetadata{
			Model:      model,
			TokensUsed: mockResp.TokensUsed,
			LatencyMS:  mockResp.LatencyMS,
		},
		RequestID: uuid.New().String(),
		Created:   time.Now(),
	}, nil
}

// Requests returns all recorded generation requests.
// This allows tests to assert on the requests made to the provider.
func (m *MockProvider) Requests() []GenerateRequest {
	m.mu.Lock()
	defer m.mu.Unlock()

	requestsCopy := make([]GenerateRequest, len(m.requests))
	copy(requestsCopy, m.requests)
	return requestsCopy
}

// Reset clears all recorded requests and resets the response index.
// This allows reusing the same mock provider across multiple tests.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = make([]GenerateRequest, 0)
	m.currentIndex = 0
}
