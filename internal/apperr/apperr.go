// Package apperr defines the failure taxonomy shared by the acquisition
// pipeline and the dataset loader.
package apperr

import (
	"errors"
	"fmt"
)

// Stage identifies which step of a run produced an error
type Stage string

const (
	StageResolve Stage = "resolve"
	StageToken   Stage = "token"
	StageFetch   Stage = "fetch"
	StageExport  Stage = "export"
	StageLoad    Stage = "load"
)

// ConfigurationError reports missing or invalid local configuration, including
// unparseable date input. It is always raised before any network call.
type ConfigurationError struct {
	Stage   Stage
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string { return render("configuration error", e.Message, e.Err) }
func (e *ConfigurationError) Unwrap() error { return e.Err }

// AuthError reports a failed token exchange or a rejected access token
type AuthError struct {
	Stage   Stage
	Message string
	Err     error
}

func (e *AuthError) Error() string { return render("auth error", e.Message, e.Err) }
func (e *AuthError) Unwrap() error { return e.Err }

// FetchError reports a non-auth HTTP failure or a transport error
type FetchError struct {
	Stage   Stage
	Message string
	Err     error
}

func (e *FetchError) Error() string { return render("fetch error", e.Message, e.Err) }
func (e *FetchError) Unwrap() error { return e.Err }

// FormatError reports a remote or persisted payload with an unexpected shape
type FormatError struct {
	Stage   Stage
	Message string
	Err     error
}

func (e *FormatError) Error() string { return render("format error", e.Message, e.Err) }
func (e *FormatError) Unwrap() error { return e.Err }

// ExportError reports a failure to persist a fetched collection locally
type ExportError struct {
	Stage   Stage
	Message string
	Err     error
}

func (e *ExportError) Error() string { return render("export error", e.Message, e.Err) }
func (e *ExportError) Unwrap() error { return e.Err }

func render(prefix, msg string, err error) string {
	if err == nil {
		return fmt.Sprintf("%s: %s", prefix, msg)
	}
	return fmt.Sprintf("%s: %s: %v", prefix, msg, err)
}

// Kind returns a stable name for the error class of err, or "unknown"
func Kind(err error) string {
	var (
		cfgErr    *ConfigurationError
		authErr   *AuthError
		fetchErr  *FetchError
		formatErr *FormatError
		exportErr *ExportError
	)
	switch {
	case errors.As(err, &cfgErr):
		return "configuration"
	case errors.As(err, &authErr):
		return "auth"
	case errors.As(err, &fetchErr):
		return "fetch"
	case errors.As(err, &formatErr):
		return "format"
	case errors.As(err, &exportErr):
		return "export"
	default:
		return "unknown"
	}
}

// Configuration builds a ConfigurationError
func Configuration(stage Stage, err error, format string, args ...any) error {
	return &ConfigurationError{Stage: stage, Message: fmt.Sprintf(format, args...), Err: err}
}

// Auth builds an AuthError
func Auth(stage Stage, err error, format string, args ...any) error {
	return &AuthError{Stage: stage, Message: fmt.Sprintf(format, args...), Err: err}
}

// Fetch builds a FetchError
func Fetch(stage Stage, err error, format string, args ...any) error {
	return &FetchError{Stage: stage, Message: fmt.Sprintf(format, args...), Err: err}
}

// Format builds a FormatError
func Format(stage Stage, err error, format string, args ...any) error {
	return &FormatError{Stage: stage, Message: fmt.Sprintf(format, args...), Err: err}
}

// Export builds an ExportError
func Export(stage Stage, err error, format string, args ...any) error {
	return &ExportError{Stage: stage, Message: fmt.Sprintf(format, args...), Err: err}
}
