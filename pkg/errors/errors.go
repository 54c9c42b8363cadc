package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNetwork represents network-related errors
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeParsing represents HTML/feed parsing errors
	ErrorTypeParsing ErrorType = "parsing"
	// ErrorTypeRateLimit represents rate limiting errors
	ErrorTypeRateLimit ErrorType = "rate_limit"
	// ErrorTypePayment represents checkout-session errors
	ErrorTypePayment ErrorType = "payment"
	// ErrorTypePlatform represents chat-platform errors (send/permission)
	ErrorTypePlatform ErrorType = "platform"
	// ErrorTypeValidation represents validation errors
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// BotError represents a component-tagged error
type BotError struct {
	Type      ErrorType
	Component string
	Message   string
	Err       error
	Time      time.Time
}

// Error implements the error interface
func (e *BotError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Component, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Component, e.Message)
}

// Unwrap returns the underlying error
func (e *BotError) Unwrap() error {
	return e.Err
}

// IsRetryable returns true if the error is worth retrying on a later cycle
func (e *BotError) IsRetryable() bool {
	switch e.Type {
	case ErrorTypeNetwork, ErrorTypePayment, ErrorTypePlatform:
		return true
	default:
		return false
	}
}

// New creates a new BotError
func New(errType ErrorType, component, message string, err error) *BotError {
	return &BotError{
		Type:      errType,
		Component: component,
		Message:   message,
		Err:       err,
		Time:      time.Now(),
	}
}

// NewNetwork creates a new network error
func NewNetwork(component, message string, err error) *BotError {
	return New(ErrorTypeNetwork, component, message, err)
}

// NewParsing creates a new parsing error
func NewParsing(component, message string, err error) *BotError {
	return New(ErrorTypeParsing, component, message, err)
}

// NewRateLimit creates a new rate limit error
func NewRateLimit(component string, duration time.Duration) *BotError {
	message := fmt.Sprintf("rate limited for %v", duration)
	return New(ErrorTypeRateLimit, component, message, nil)
}

// NewPayment creates a new payment error
func NewPayment(component, message string, err error) *BotError {
	return New(ErrorTypePayment, component, message, err)
}

// NewPlatform creates a new chat-platform error
func NewPlatform(component, message string, err error) *BotError {
	return New(ErrorTypePlatform, component, message, err)
}

// NewValidation creates a new validation error
func NewValidation(component, message string) *BotError {
	return New(ErrorTypeValidation, component, message, nil)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *BotError {
	return New(ErrorTypeConfiguration, "", message, err)
}
