package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential is returned before any upstream call when a key is absent.
	ErrMissingCredential = errors.New("missing credential")
	// ErrBusy is returned when a session already has a pipeline in flight.
	ErrBusy = errors.New("a pitch is already being generated for this session")
)

// Pipeline steps reported in StepError.
const (
	StepResearch   = "research"
	StepGeneration = "generation"
)

// StepError wraps an upstream failure of one pipeline step.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Validate reports the first missing key, OpenAI before SerpAPI.
func (c Credentials) Validate() error {
	if c.OpenAIKey == "" {
		return fmt.Errorf("%w: please provide your OpenAI API key", ErrMissingCredential)
	}
	if c.SerpAPIKey == "" {
		return fmt.Errorf("%w: please provide your SerpAPI key", ErrMissingCredential)
	}
	return nil
}
