package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindInvalid     ErrKind = iota // nil plan/target, empty name, malformed op
	ErrKindState                      // invalid operation for current state (e.g., already committed)
	ErrKindUnsupported                // plan/performer lacks a required capability
	ErrKindNotFound                   // unknown plan kind, op type, or target
	ErrKindFormat                     // malformed patch document or encoding
)

// String returns the kind name.
func (k ErrKind) String() string {
	switch k {
	case ErrKindInvalid:
		return "invalid"
	case ErrKindState:
		return "state"
	case ErrKindUnsupported:
		return "unsupported"
	case ErrKindNotFound:
		return "not_found"
	case ErrKindFormat:
		return "format"
	default:
		return fmt.Sprintf("kind_%d", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind and message.
// This lets wrapped copies created by Wrap match their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

// Wrap returns a copy of sentinel carrying cause as its underlying error.
func Wrap(sentinel *Error, cause error) *Error {
	return &Error{Kind: sentinel.Kind, Msg: sentinel.Msg, Err: cause}
}

// Sentinels commonly returned by implementations.
var (
	// ErrNilPlan indicates an add operation without a plan.
	ErrNilPlan = &Error{Kind: ErrKindInvalid, Msg: "plan is nil"}
	// ErrNilTransaction indicates a nil transaction was committed.
	ErrNilTransaction = &Error{Kind: ErrKindInvalid, Msg: "transaction is nil"}
	// ErrNilTarget indicates an operation without a target.
	ErrNilTarget = &Error{Kind: ErrKindInvalid, Msg: "target is nil"}
	// ErrEmptyName indicates a named operation with an empty name.
	ErrEmptyName = &Error{Kind: ErrKindInvalid, Msg: "plan name is empty"}
	// ErrAlreadyCommitted indicates a transaction was handed to a scheduler twice.
	ErrAlreadyCommitted = &Error{Kind: ErrKindState, Msg: "transaction already committed"}
	// ErrNotNamedPerformer indicates a named operation reached a performer that
	// cannot add or remove named plans.
	ErrNotNamedPerformer = &Error{Kind: ErrKindUnsupported, Msg: "performer does not support named plans"}
	// ErrNotNamedPlan indicates a named operation referenced a plan that cannot be named.
	ErrNotNamedPlan = &Error{Kind: ErrKindUnsupported, Msg: "plan is not a named plan"}
	// ErrPlanNotKinded indicates a plan without a kind was written to a patch.
	ErrPlanNotKinded = &Error{Kind: ErrKindUnsupported, Msg: "plan has no kind"}
	// ErrUnknownPlanKind indicates a patch referenced a plan kind with no factory.
	ErrUnknownPlanKind = &Error{Kind: ErrKindNotFound, Msg: "unknown plan kind"}
	// ErrUnknownOp indicates an unrecognized operation type.
	ErrUnknownOp = &Error{Kind: ErrKindNotFound, Msg: "unknown operation"}
	// ErrBadPatch indicates a patch document could not be decoded.
	ErrBadPatch = &Error{Kind: ErrKindFormat, Msg: "invalid JSON patch"}
	// ErrBadEncoding indicates an unsupported or undecodable input encoding.
	ErrBadEncoding = &Error{Kind: ErrKindFormat, Msg: "unsupported input encoding"}
)

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.Kind, true
}
