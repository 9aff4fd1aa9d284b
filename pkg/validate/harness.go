// Package validate provides the LLM-response validation harness used to
// drive a red-green-refactor workflow.
//
// A Harness owns an LLM provider and three optional validator slots:
// accuracy, safety, and coherence. Each validation entry point delegates to
// whichever validator is installed, or fails with a typed NotConfiguredError
// when the slot is still empty. That deliberate failure is the "red" phase:
// calling validate before implementing produces a deterministic, observable
// error. Installing a validator turns the same call green.
//
// The harness is a passthrough. It never post-processes, caches, or retries;
// validator and provider errors propagate to the caller unchanged.
package validate

import (
	"log/slog"

	"github.com/redgreen-ai/redgreen/pkg/errors"
	"github.com/redgreen-ai/redgreen/pkg/llm"
)

// Validator kinds, as reported in NotConfiguredError and to the metrics
// recorder.
const (
	KindAccuracy  = "accuracy"
	KindSafety    = "safety"
	KindCoherence = "coherence"
)

// Validation outcomes reported to the metrics recorder.
const (
	OutcomeOK            = "ok"
	OutcomeNotConfigured = "not_configured"
	OutcomeError         = "error"
)

// AccuracyValidator scores how well a response answers a prompt against an
// expected answer. Scores are in [0, 1].
type AccuracyValidator interface {
	Validate(prompt, response, expected string) (float64, error)
}

// SafetyValidator scores a response for safety concerns.
type SafetyValidator interface {
	Validate(response string) (SafetyReport, error)
}

// CoherenceValidator scores the structural coherence of a response in
// [0, 1]. Implementations may return 0.5 as an "indeterminate" sentinel.
type CoherenceValidator interface {
	Validate(response string) (float64, error)
}

// SafetyReport holds per-category safety scores in [0, 1], where higher
// means more concerning.
type SafetyReport struct {
	Toxicity       float64 `json:"toxicity"`
	Bias           float64 `json:"bias"`
	HarmfulContent float64 `json:"harmful_content"`
}

// Recorder receives validation outcomes for observability.
// Implementations must be cheap; the harness calls them synchronously.
type Recorder interface {
	RecordValidation(kind, outcome string)
}

// Harness wires an LLM provider to the three validator slots.
// Constructed empty: slots are populated by the driver at arbitrary points.
// There is no removal operation; absence is the initial state only.
//
// Single-threaded by design. Slots are plain single-owner fields mutated
// only by direct assignment from the driver.
type Harness struct {
	provider llm.Provider
	logger   *slog.Logger
	recorder Recorder

	accuracy  AccuracyValidator
	safety    SafetyValidator
	coherence CoherenceValidator
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(recorder Recorder) Option {
	return func(h *Harness) {
		h.recorder = recorder
	}
}

// New creates a harness around the given provider with all validator slots
// empty.
func New(provider llm.Provider, opts ...Option) *Harness {
	h := &Harness{provider: provider}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Provider returns the LLM provider the harness was built with.
func (h *Harness) Provider() llm.Provider {
	return h.provider
}

// InstallAccuracy populates the accuracy validator slot.
func (h *Harness) InstallAccuracy(v AccuracyValidator) {
	h.accuracy = v
	h.logInstall(KindAccuracy)
}

// InstallSafety populates the safety validator slot.
func (h *Harness) InstallSafety(v SafetyValidator) {
	h.safety = v
	h.logInstall(KindSafety)
}

// InstallCoherence populates the coherence validator slot.
func (h *Harness) InstallCoherence(v CoherenceValidator) {
	h.coherence = v
	h.logInstall(KindCoherence)
}

// ValidateAccuracy delegates to the installed accuracy validator and returns
// its result unchanged. Fails with NotConfiguredError while the slot is
// empty.
func (h *Harness) ValidateAccuracy(prompt, response, expected string) (float64, error) {
	if h.accuracy == nil {
		h.record(KindAccuracy, OutcomeNotConfigured)
		return 0, &errors.NotConfiguredError{Kind: KindAccuracy}
	}

	score, err := h.accuracy.Validate(prompt, response, expected)
	h.record(KindAccuracy, outcomeFor(err))
	return score, err
}

// ValidateSafety delegates to the installed safety validator and returns its
// result unchanged. Fails with NotConfiguredError while the slot is empty.
func (h *Harness) ValidateSafety(response string) (SafetyReport, error) {
	if h.safety == nil {
		h.record(KindSafety, OutcomeNotConfigured)
		return SafetyReport{}, &errors.NotConfiguredError{Kind: KindSafety}
	}

	report, err := h.safety.Validate(response)
	h.record(KindSafety, outcomeFor(err))
	return report, err
}

// ValidateCoherence delegates to the installed coherence validator and
// returns its result unchanged. Fails with NotConfiguredError while the slot
// is empty.
func (h *Harness) ValidateCoherence(response string) (float64, error) {
	if h.coherence == nil {
		h.record(KindCoherence, OutcomeNotConfigured)
		return 0, &errors.NotConfiguredError{Kind: KindCoherence}
	}

	score, err := h.coherence.Validate(response)
	h.record(KindCoherence, outcomeFor(err))
	return score, err
}

func (h *Harness) logInstall(kind string) {
	if h.logger != nil {
		h.logger.Info("validator installed", slog.String("validator", kind))
	}
}

func (h *Harness) record(kind, outcome string) {
	if h.recorder != nil {
		h.recorder.RecordValidation(kind, outcome)
	}
}

func outcomeFor(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}
