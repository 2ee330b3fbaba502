package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRender  Phase = "render"  // markdown rendering
	PhaseLayout  Phase = "layout"  // size/alignment queries
	PhaseConvert Phase = "convert" // component-model graph conversion
	PhaseLoad    Phase = "load"    // input discovery and decoding
	PhaseCheck   Phase = "check"   // output up-to-date verification
)

// Kind categorizes the error
type Kind string

const (
	KindUnresolvedType  Kind = "unresolved_type"
	KindUnknownResource Kind = "unknown_resource"
	KindInvalidShape    Kind = "invalid_shape"
	KindInvalidData     Kind = "invalid_data"
	KindUnsupported     Kind = "unsupported"
	KindNotFound        Kind = "not_found"
	KindNotUpToDate     Kind = "not_up_to_date"
)

// Error is the structured error type used throughout the tool
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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

// Path sets the logical entity path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Type sets the offending type's rendered name
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
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

// UnresolvedType creates an error for a dangling type identifier
func UnresolvedType(phase Phase, path []string, id int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnresolvedType,
		Path:   path,
		Detail: fmt.Sprintf("type id %d does not resolve", id),
	}
}

// UnknownResource creates an error for a dangling resource identity
func UnknownResource(phase Phase, path []string, id int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownResource,
		Path:   path,
		Detail: fmt.Sprintf("resource id %d does not resolve", id),
	}
}

// InvalidShape creates an error for a variant that encodes none of the
// recognized semantic shapes
func InvalidShape(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidShape,
		Path:   path,
		Detail: detail,
	}
}

// InvalidData creates an invalid input data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Unsupported creates an unsupported construct error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// NotUpToDate reports a check-mode mismatch against existing output
func NotUpToDate(path string) *Error {
	return &Error{
		Phase:  PhaseCheck,
		Kind:   KindNotUpToDate,
		Detail: fmt.Sprintf("not up to date: %s", path),
	}
}

// Load creates an input loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}
