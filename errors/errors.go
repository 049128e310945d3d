package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the file the error occurred
type Phase string

const (
	PhaseRead         Phase = "read"         // opening or reading the source
	PhaseHeader       Phase = "header"       // fixed 104-byte header
	PhaseInstructions Phase = "instructions" // variable-length opcode stream
	PhaseRecords      Phase = "records"      // fixed-stride record arrays
	PhaseLayout       Phase = "layout"       // declared offsets vs sequential layout
)

// Kind categorizes the error
type Kind string

const (
	KindTruncated       Kind = "truncated"
	KindMalformedStream Kind = "malformed_stream"
	KindIOFailure       Kind = "io_failure"
	KindLayoutMismatch  Kind = "layout_mismatch"
	KindInvalidMagic    Kind = "invalid_magic"
	KindInvalidVersion  Kind = "invalid_version"
)

// Sentinel targets for errors.Is. They match any phase.
var (
	ErrTruncated       = &Error{Kind: KindTruncated}
	ErrMalformedStream = &Error{Kind: KindMalformedStream}
	ErrIOFailure       = &Error{Kind: KindIOFailure}
	ErrLayoutMismatch  = &Error{Kind: KindLayoutMismatch}
)

// Error is the structured error type returned by the decoder
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	Section string
	Detail  string
	// Offset is the absolute byte offset of the failing read, or -1 when
	// the error is not tied to a position.
	Offset int64
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Section != "" {
		b.WriteString(" in ")
		b.WriteString(e.Section)
	}

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset 0x%x", e.Offset)
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

// Is reports whether target matches this error.
// A target with an empty Phase matches on Kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	return e.Kind == t.Kind
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Section sets the file section name
func (b *Builder) Section(name string) *Builder {
	b.err.Section = name
	return b
}

// Offset sets the byte offset
func (b *Builder) Offset(off int64) *Builder {
	b.err.Offset = off
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

// Truncated creates an error for a fixed-size read that ran out of input
func Truncated(phase Phase, section string, offset int64, cause error) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindTruncated,
		Section: section,
		Offset:  offset,
		Detail:  "unexpected end of input",
		Cause:   cause,
	}
}

// MalformedStream creates an instruction stream framing error
func MalformedStream(offset int64, detail string) *Error {
	return &Error{
		Phase:   PhaseInstructions,
		Kind:    KindMalformedStream,
		Section: "instructions",
		Offset:  offset,
		Detail:  detail,
	}
}

// UnknownOpcode creates an error for an opcode byte with no assigned shape
func UnknownOpcode(offset int64, opcode byte) *Error {
	return &Error{
		Phase:   PhaseInstructions,
		Kind:    KindMalformedStream,
		Section: "instructions",
		Offset:  offset,
		Detail:  fmt.Sprintf("unknown opcode 0x%02x", opcode),
		Value:   opcode,
	}
}

// OperandOverrun creates an error for an operand that crosses the word budget
func OperandOverrun(offset int64, opcode string, need, left int64) *Error {
	return &Error{
		Phase:   PhaseInstructions,
		Kind:    KindMalformedStream,
		Section: "instructions",
		Offset:  offset,
		Detail:  fmt.Sprintf("%s needs %d operand bytes, %d left in stream", opcode, need, left),
		Value:   opcode,
	}
}

// IOFailure wraps an error from the underlying byte source
func IOFailure(phase Phase, section string, offset int64, cause error) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindIOFailure,
		Section: section,
		Offset:  offset,
		Detail:  "read failed",
		Cause:   cause,
	}
}

// LayoutMismatch creates an error for a declared section offset that does
// not match the sequential layout
func LayoutMismatch(section string, declared, actual int64) *Error {
	return &Error{
		Phase:   PhaseLayout,
		Kind:    KindLayoutMismatch,
		Section: section,
		Offset:  declared,
		Detail:  fmt.Sprintf("declared offset 0x%x, sequential layout puts it at 0x%x", declared, actual),
		Value:   actual,
	}
}

// InvalidMagic creates an error for an unexpected magic value
func InvalidMagic(got, want uint32) *Error {
	return &Error{
		Phase:   PhaseHeader,
		Kind:    KindInvalidMagic,
		Section: "header",
		Offset:  0,
		Detail:  fmt.Sprintf("magic 0x%08x, want 0x%08x", got, want),
		Value:   got,
	}
}

// InvalidVersion creates an error for an unexpected format version
func InvalidVersion(got, want uint32) *Error {
	return &Error{
		Phase:   PhaseHeader,
		Kind:    KindInvalidVersion,
		Section: "header",
		Offset:  4,
		Detail:  fmt.Sprintf("version %d, want %d", got, want),
		Value:   got,
	}
}
