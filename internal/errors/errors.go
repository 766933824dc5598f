package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the pipeline the error occurred
type Phase string

const (
	PhaseParse    Phase = "parse"    // schema file decoding
	PhaseValidate Phase = "validate" // StructSpec construction
	PhaseGroup    Phase = "group"    // layout grouping
	PhasePlan     Phase = "plan"     // codec selection
	PhaseAssemble Phase = "assemble" // emission unit merging
	PhaseGenerate Phase = "generate" // source emission
	PhaseOutput   Phase = "output"   // artifact writing
)

// Kind categorizes the error
type Kind string

const (
	KindSyntax        Kind = "syntax"
	KindOverflow      Kind = "size_overflow"
	KindWidth         Kind = "invalid_width"
	KindCount         Kind = "invalid_count"
	KindOffset        Kind = "invalid_offset"
	KindDuplicate     Kind = "duplicate"
	KindUnknownStruct Kind = "unknown_struct"
	KindUnknownMethod Kind = "unknown_method"
	KindUnclosedGroup Kind = "unclosed_group"
	KindCodecWidth    Kind = "codec_width"
	KindAlignment     Kind = "alignment"
	KindInternal      Kind = "internal"
	KindIO            Kind = "io"
)

// Error is the structured error type used throughout the compiler
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Struct string
	Field  string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Struct != "" {
		b.WriteString(" in ")
		b.WriteString(e.Struct)
		if e.Field != "" {
			b.WriteByte('.')
			b.WriteString(e.Field)
		}
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

// Struct sets the structure name
func (b *Builder) Struct(name string) *Builder {
	b.err.Struct = name
	return b
}

// Field sets the field name
func (b *Builder) Field(name string) *Builder {
	b.err.Field = name
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

// Schema creates a validation-phase error for a structure field
func Schema(structName, field string, kind Kind, format string, args ...any) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   kind,
		Struct: structName,
		Field:  field,
		Detail: fmt.Sprintf(format, args...),
	}
}

// Syntax creates a parse-phase syntax error
func Syntax(structName, field string, format string, args ...any) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindSyntax,
		Struct: structName,
		Field:  field,
		Detail: fmt.Sprintf(format, args...),
	}
}

// Internal creates an internal-consistency error. These indicate a defect in
// an earlier pipeline stage rather than in the schema itself.
func Internal(phase Phase, structName string, format string, args ...any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInternal,
		Struct: structName,
		Detail: fmt.Sprintf(format, args...),
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
