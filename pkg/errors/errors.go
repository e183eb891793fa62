package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// TokenError reports a reference to a token key that is not registered.
type TokenError struct {
	Kind      string
	Key       string
	Component string
	Property  string
}

// NewTokenError constructs a TokenError for the given token kind and key.
func NewTokenError(kind, key string) *TokenError {
	return &TokenError{Kind: kind, Key: key}
}

// In annotates the error with the component and property that referenced the token.
func (e *TokenError) In(component, property string) *TokenError {
	if e == nil {
		return nil
	}
	out := *e
	out.Component = component
	out.Property = property
	return &out
}

func (e *TokenError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("token error: %s.%s: unknown %s token %q", e.Component, e.Property, e.Kind, e.Key)
	}
	return fmt.Sprintf("token error: unknown %s token %q", e.Kind, e.Key)
}

// ThemeError indicates an unknown theme name or appearance.
type ThemeError struct {
	Name string
	Err  error
}

// NewThemeError constructs a ThemeError.
func NewThemeError(name string, err error) error {
	return &ThemeError{Name: name, Err: err}
}

func (e *ThemeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("theme error [%s]: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("theme error: unknown theme %q", e.Name)
}

// Unwrap exposes the underlying error.
func (e *ThemeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
