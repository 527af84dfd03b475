package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Class identifies how a provider failure is surfaced to the boundary layer.
// The downstream SDK's error taxonomy is opaque, so classification is done on
// the error text and kept in this single place so the policy is testable.
type Class string

const (
	// ClassRateLimit - the provider throttled us; retried internally with backoff
	ClassRateLimit Class = "rate_limit"
	// ClassConfiguration - server-side misconfiguration (API key); never retried
	ClassConfiguration Class = "configuration"
	// ClassServiceUnavailable - provider overloaded or timing out; caller may retry
	ClassServiceUnavailable Class = "service_unavailable"
	// ClassContentBlocked - request or response tripped the provider's safety filters
	ClassContentBlocked Class = "content_blocked"
	// ClassInternal - anything we could not classify
	ClassInternal Class = "internal_server_error"
)

// ProviderError wraps a provider failure with its classification.
type ProviderError struct {
	Class   Class
	Err     error
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Class, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// New creates a classified error with a caller-facing message.
func New(class Class, err error, message string) *ProviderError {
	return &ProviderError{Class: class, Err: err, Message: message}
}

// Classify maps a raw provider error onto the failure taxonomy. Already
// classified errors pass through unchanged. Match order mirrors the signals
// the provider is known to emit: rate limiting first, then credentials,
// availability, safety filters, and finally the generic bucket.
func Classify(err error) *ProviderError {
	if err == nil {
		return nil
	}

	var classified *ProviderError
	if errors.As(err, &classified) {
		return classified
	}

	lowerErr := strings.ToLower(err.Error())

	if containsAny(lowerErr, "429", "quota", "rate limit") {
		return New(ClassRateLimit, err,
			"API rate limit reached. Retrying with exponential backoff.")
	}

	if containsAny(lowerErr, "api key", "authentication", "unauthorized") {
		return New(ClassConfiguration, err,
			"Authentication failed. Check the server's API key configuration.")
	}

	if containsAny(lowerErr, "overloaded", "unavailable", "timeout") {
		return New(ClassServiceUnavailable, err,
			"AI service is temporarily unavailable.")
	}

	if containsAny(lowerErr, "safety", "blocked", "violation") {
		return New(ClassContentBlocked, err,
			"Message was blocked by content filters.")
	}

	return New(ClassInternal, err, "Unexpected provider error.")
}

// ClassOf returns the failure class for err, classifying it if needed.
func ClassOf(err error) Class {
	if err == nil {
		return ""
	}
	return Classify(err).Class
}

// IsRetryable reports whether the dispatcher should retry the attempt.
// Only rate-limit failures are retried internally; everything else is
// surfaced to the caller with its class intact.
func IsRetryable(err error) bool {
	return ClassOf(err) == ClassRateLimit
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
