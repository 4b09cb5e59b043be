// ABOUTME: Custom error types for the markup integration engine
// ABOUTME: Provides structured errors so callers can tell failure classes apart

package errors

import (
	"errors"
	"fmt"
)

// EnvironmentUnavailableError means the current environment lacks a
// capability the operation needs, such as a network client or a host
// document. This is not user-facing: callers silently skip the operation.
type EnvironmentUnavailableError struct {
	Capability string
}

// Error implements the error interface
func (e *EnvironmentUnavailableError) Error() string {
	return fmt.Sprintf("environment capability unavailable: %s", e.Capability)
}

// AcquisitionError means the design document could not be obtained: the
// fetch failed, returned a non-success status, or produced an empty payload.
// User-facing; triggers fallback content.
type AcquisitionError struct {
	URL        string
	StatusCode int
	Reason     string
}

// Error implements the error interface
func (e *AcquisitionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to acquire design document from %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("failed to acquire design document from %s: %s", e.URL, e.Reason)
}

// InjectionError means a host document mutation or another unexpected step
// failed during mount or unmount. Logged and swallowed at the controller
// boundary; triggers fallback content.
type InjectionError struct {
	Op      string
	Message string
}

// Error implements the error interface
func (e *InjectionError) Error() string {
	return fmt.Sprintf("injection failed during %s: %s", e.Op, e.Message)
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsEnvironmentUnavailable checks if an error is an EnvironmentUnavailableError
func IsEnvironmentUnavailable(err error) bool {
	var envErr *EnvironmentUnavailableError
	return errors.As(err, &envErr)
}

// IsAcquisition checks if an error is an AcquisitionError
func IsAcquisition(err error) bool {
	var acqErr *AcquisitionError
	return errors.As(err, &acqErr)
}

// IsInjection checks if an error is an InjectionError
func IsInjection(err error) bool {
	var injErr *InjectionError
	return errors.As(err, &injErr)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
