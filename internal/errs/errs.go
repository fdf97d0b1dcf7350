package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure well enough for the HTTP layer to pick a status
// and a user-facing message without inspecting the underlying cause.
type Kind int

const (
	// KindStore: the document store could not be reached or a query failed.
	KindStore Kind = iota
	// KindNotFound: a single-item lookup matched nothing (or the match is unpublished).
	KindNotFound
	// KindValidation: malformed request parameters.
	KindValidation
	// KindUpstream: a third-party API failed or timed out.
	KindUpstream
)

var (
	ErrNotFound         = &Error{Kind: KindNotFound, Msg: "not found"}
	ErrStoreUnavailable = &Error{Kind: KindStore, Msg: "store unavailable"}
)

// Error carries a kind, a safe user-facing message and an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match on kind, so sentinel comparisons like
// errors.Is(err, ErrNotFound) work for any wrapped Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func Store(err error) error {
	return &Error{Kind: KindStore, Msg: "store unavailable", Err: err}
}

func NotFound(msg string) error {
	if msg == "" {
		msg = "not found"
	}
	return &Error{Kind: KindNotFound, Msg: msg}
}

func Validation(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func Upstream(msg string, err error) error {
	return &Error{Kind: KindUpstream, Msg: msg, Err: err}
}

// Status maps an error to an HTTP status code. Unknown errors are treated
// as internal failures.
func Status(err error) int {
	var e *Error
	if errors.As(err, &e) {
		switch e.Kind {
		case KindNotFound:
			return http.StatusNotFound
		case KindValidation:
			return http.StatusBadRequest
		case KindStore, KindUpstream:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

// Message returns the safe user-facing message for an error.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "internal error"
}
