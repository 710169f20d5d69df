package provider

import (
	"errors"
	"fmt"
)

// Kind classifies fetch failures.
type Kind int

const (
	// KindInternal is an invariant violation inside this process.
	KindInternal Kind = iota
	// KindNetworking covers transport failures, bad URLs and unexpected status codes.
	KindNetworking
	// KindParsing means the response could not be decoded into the expected shape.
	KindParsing
	// KindDeclined means the upstream explicitly rejected the symbol or query.
	// It is terminal and never retried.
	KindDeclined
)

func (k Kind) String() string {
	switch k {
	case KindNetworking:
		return "networking"
	case KindParsing:
		return "parsing"
	case KindDeclined:
		return "declined"
	default:
		return "internal"
	}
}

// Error is a classified fetch failure.
type Error struct {
	Kind   Kind
	Op     string
	Symbol Symbol
	Err    error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Symbol != "" {
		msg = fmt.Sprintf("%s %s", msg, e.Symbol)
	}
	msg = fmt.Sprintf("%s: %s", msg, e.Kind)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, op string, symbol Symbol, err error) error {
	return &Error{Kind: kind, Op: op, Symbol: symbol, Err: err}
}

func Networking(op string, symbol Symbol, err error) error {
	return newError(KindNetworking, op, symbol, err)
}

func Parsing(op string, symbol Symbol, err error) error {
	return newError(KindParsing, op, symbol, err)
}

func Declined(op string, symbol Symbol, err error) error {
	return newError(KindDeclined, op, symbol, err)
}

func Internal(op string, symbol Symbol, err error) error {
	return newError(KindInternal, op, symbol, err)
}

// KindOf reports the classification of err. Unclassified errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsDeclined reports whether err is a terminal upstream rejection.
func IsDeclined(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindDeclined
}
