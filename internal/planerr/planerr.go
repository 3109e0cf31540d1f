// Package planerr defines the core's typed error kinds. All four kinds
// are surfaced to the caller unchanged; the core performs no retries and
// recovers none of them locally.
package planerr

import "fmt"

// Kind discriminates the four error conditions the core can raise.
type Kind int

const (
	// InvalidInput covers out-of-range initial_soc, a forecast port
	// returning negative energy, K < 1, or population/generations < 1.
	InvalidInput Kind = iota
	// UnknownMode is raised when the simulator receives a mode value
	// outside the three known variants.
	UnknownMode
	// InvariantViolation is raised when post-simulation validation finds
	// a negative or over-capacity SoC, or negative grid usage.
	InvariantViolation
	// Cancelled is raised when the caller's context is done.
	Cancelled
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case UnknownMode:
		return "UnknownMode"
	case InvariantViolation:
		return "InvariantViolation"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// PlanError is the single error envelope the core raises. Segment is -1
// when the error is not attributable to a specific segment.
type PlanError struct {
	Kind    Kind
	Segment int
	Message string
	cause   error
}

func (e *PlanError) Error() string {
	if e.Segment >= 0 {
		return fmt.Sprintf("%s: segment %d: %s", e.Kind, e.Segment, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *PlanError) Unwrap() error { return e.cause }

// Is reports whether target is a *PlanError with the same Kind, so
// callers can write errors.Is(err, planerr.New(planerr.Cancelled, ...)).
func (e *PlanError) Is(target error) bool {
	other, ok := target.(*PlanError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New constructs a segment-less PlanError.
func New(kind Kind, format string, args ...any) *PlanError {
	return &PlanError{Kind: kind, Segment: -1, Message: fmt.Sprintf(format, args...)}
}

// NewAt constructs a PlanError naming the offending segment.
func NewAt(kind Kind, segment int, format string, args ...any) *PlanError {
	return &PlanError{Kind: kind, Segment: segment, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds a PlanError of the given kind around cause, using cause's
// message and exposing cause through Unwrap.
func Wrap(kind Kind, segment int, cause error) *PlanError {
	return &PlanError{Kind: kind, Segment: segment, Message: cause.Error(), cause: cause}
}

// IsCancelled reports whether err is a Cancelled PlanError.
func IsCancelled(err error) bool {
	pe, ok := err.(*PlanError)
	return ok && pe.Kind == Cancelled
}
