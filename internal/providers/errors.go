package providers

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ServiceError.
type ErrorKind string

const (
	KindAuth      ErrorKind = "auth"
	KindRateLimit ErrorKind = "rate_limit"
	KindServer    ErrorKind = "server"
	KindTransport ErrorKind = "transport"
	KindMalformed ErrorKind = "malformed"
	KindAPI       ErrorKind = "api"
)

// ServiceError is returned when a generate call fails.
type ServiceError struct {
	Provider   string
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *ServiceError) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg += ": " + e.Err.Error()
		}
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s error (status %d): %s", e.Provider, e.Kind, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s %s error: %s", e.Provider, e.Kind, msg)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// ConfigurationError is returned when a provider cannot be constructed.
type ConfigurationError struct {
	Provider string
	Message  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s configuration error: %s", e.Provider, e.Message)
}

// IsAuthError checks if an error is an authentication error.
func IsAuthError(err error) bool {
	var se *ServiceError
	return errors.As(err, &se) && se.Kind == KindAuth
}

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

func isRetryable(err error) bool {
	var se *ServiceError
	if !errors.As(err, &se) {
		return false
	}
	return se.Kind == KindRateLimit || se.Kind == KindServer
}
