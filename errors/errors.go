package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseMarshal Phase = "marshal" // host value to kernel value conversion
	PhaseCall    Phase = "call"    // invocation through a binding boundary
	PhaseLoad    Phase = "load"    // VM module synthesis and instantiation
	PhaseHost    Phase = "host"    // binding registration and lookup
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindConversionLoss  Kind = "conversion_loss"
	KindOutOfRange      Kind = "out_of_range"
	KindNotFound        Kind = "not_found"
	KindInstantiation   Kind = "instantiation"
	KindCallFailed      Kind = "call_failed"
)

// Error is the structured error type used by both bindings
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	Binding string
	Detail  string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Binding != "" {
		b.WriteString(" in binding ")
		b.WriteString(e.Binding)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Binding sets the name of the binding reporting the error
func (b *Builder) Binding(name string) *Builder {
	b.err.Binding = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidArgument creates an invalid argument error
func InvalidArgument(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidArgument,
		Detail: detail,
	}
}

// ConversionLoss creates an error for a host value that has no exact
// kernel-native representation
func ConversionLoss(phase Phase, value any, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindConversionLoss,
		Detail: detail,
		Value:  value,
	}
}

// OutOfRange creates an error for a value outside the representable range
func OutOfRange(phase Phase, value any, max uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfRange,
		Detail: fmt.Sprintf("value %v exceeds maximum %d", value, max),
		Value:  value,
	}
}

// NotFound creates a lookup failure error
func NotFound(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: what,
	}
}

// Instantiation wraps a VM or interpreter construction failure
func Instantiation(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInstantiation,
		Detail: detail,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
