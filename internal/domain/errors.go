package domain

import "errors"

// Kind classifies a failure surfaced to the user
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidIdentifier
	KindMissingState
	KindConnectionFailed
	KindPathNotFound
	KindNotADirectory
	KindFileConflict
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindInvalidIdentifier:
		return "invalid identifier"
	case KindMissingState:
		return "missing prior state"
	case KindConnectionFailed:
		return "connection failed"
	case KindPathNotFound:
		return "path not found"
	case KindNotADirectory:
		return "not a directory"
	case KindFileConflict:
		return "file conflict"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching against an *Error of the same kind
var (
	ErrInvalidIdentifier = &Error{Kind: KindInvalidIdentifier}
	ErrMissingState      = &Error{Kind: KindMissingState}
	ErrConnectionFailed  = &Error{Kind: KindConnectionFailed}
	ErrPathNotFound      = &Error{Kind: KindPathNotFound}
	ErrNotADirectory     = &Error{Kind: KindNotADirectory}
	ErrFileConflict      = &Error{Kind: KindFileConflict}
)

// Error is a user-facing failure. Msg is what the dispatcher prints.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// NewError creates an Error of the given kind
func NewError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports a match when target is an *Error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain,
// or KindUnknown if there is none
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
