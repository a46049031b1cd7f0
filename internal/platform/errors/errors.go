// Package errors provides a structured error type with wrapping and metadata
package errors

// Always import the project errors package as perr (platform/errors)

import (
	stderrs "errors"
	"fmt"
)

// ErrorCode defines the failure classes surfaced by the engine
// Values are stable for callers that persist or forward them; add sparingly
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodeInvalidInput is for out-of-range birth moments or coordinates
	ErrorCodeInvalidInput

	// ErrorCodeEphemeris is for an ephemeris source that cannot resolve a time or body
	ErrorCodeEphemeris

	// ErrorCodeUnsupportedHarmonic is for a divisional chart without a classical table
	ErrorCodeUnsupportedHarmonic

	// ErrorCodeInvalidLongitude is for a malformed Moon longitude fed to the dasha engine
	ErrorCodeInvalidLongitude

	// ErrorCodeMalformedChart is for charts that break the 9-body / [0,360) invariant
	ErrorCodeMalformedChart

	// ErrorCodeUnavailable is for transient ephemeris source failures where retry may succeed
	ErrorCodeUnavailable
)

// String returns a short stable name for the code
func (c ErrorCode) String() string {
	switch c {
	case ErrorCodeInvalidInput:
		return "invalid_input"
	case ErrorCodeEphemeris:
		return "ephemeris"
	case ErrorCodeUnsupportedHarmonic:
		return "unsupported_harmonic"
	case ErrorCodeInvalidLongitude:
		return "invalid_longitude"
	case ErrorCodeMalformedChart:
		return "malformed_chart"
	case ErrorCodeUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Error is the structured error type with wrapping and metadata
// msg is human/developer facing; code is machine facing
// field is optional (for validation); op is optional operation tag
// orig is the wrapped cause
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
	op    string
}

// Wire is the serializable form handed to report and API layers
type Wire struct {
	Code    ErrorCode `json:"code" yaml:"code"`
	Kind    string    `json:"kind" yaml:"kind"`
	Message string    `json:"message" yaml:"message"`
	Field   string    `json:"field,omitempty" yaml:"field,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// ToWire converts an *Error to a Wire payload
func (e *Error) ToWire() Wire {
	return Wire{Code: e.code, Kind: e.code.String(), Message: e.msg, Field: e.field}
}

// WireFrom converts any error into a Wire payload with best-effort mapping
// If err is nil, returns the zero-value Wire (no error)
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Kind: ErrorCodeUnknown.String(), Message: err.Error()}
}

// Root returns the deepest wrapped cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// CodeOf extracts an ErrorCode from any error, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Mutators (copy-on-write)

// WithField attaches a field to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithOp attaches an operation label to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// Constructors

// New returns a new *Error with the given code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with code and message
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with code and formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// WrapIf wraps only when err != nil (helper for 1-liners)
func WrapIf(err error, code ErrorCode, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, msg)
}

// Sugar

// InvalidInputf returns an invalid input error
func InvalidInputf(format string, a ...any) error { return Newf(ErrorCodeInvalidInput, format, a...) }

// Ephemerisf returns an ephemeris error
func Ephemerisf(format string, a ...any) error { return Newf(ErrorCodeEphemeris, format, a...) }

// UnsupportedHarmonicf returns an unsupported harmonic error
func UnsupportedHarmonicf(format string, a ...any) error {
	return Newf(ErrorCodeUnsupportedHarmonic, format, a...)
}

// InvalidLongitudef returns an invalid longitude error
func InvalidLongitudef(format string, a ...any) error {
	return Newf(ErrorCodeInvalidLongitude, format, a...)
}

// MalformedChartf returns a malformed chart error
func MalformedChartf(format string, a ...any) error {
	return Newf(ErrorCodeMalformedChart, format, a...)
}

// Unavailablef returns an unavailable error
func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }

// Internalf returns a generic internal error
func Internalf(format string, a ...any) error { return Newf(ErrorCodeUnknown, format, a...) }

// Retry semantics

// Retryable reports whether a caller may re-query the ephemeris source and try again.
// The engine itself never retries; deterministic failures are never retryable
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	switch CodeOf(err) {
	case ErrorCodeUnavailable:
		return true
	case ErrorCodeEphemeris:
		// an ephemeris error is transient only when its cause says so
		if e, ok := As(err); ok && e.orig != nil {
			return IsCode(e.orig, ErrorCodeUnavailable)
		}
	}
	return false
}
