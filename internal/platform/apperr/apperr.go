// Package apperr defines the error taxonomy shared by every domain service:
// validation failures, missing records, payment rule violations, and
// storage-layer faults. Handlers map these kinds onto HTTP status codes in
// one place instead of inspecting error strings.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for transport mapping.
type Kind int

const (
	// KindInternal covers unexpected faults, including stored-record
	// consistency violations detected on read.
	KindInternal Kind = iota
	// KindValidation covers malformed or out-of-range input. The offending
	// record is never persisted.
	KindValidation
	// KindNotFound covers references to entity ids that do not exist.
	KindNotFound
	// KindInvalidPayment covers non-positive payments and payments that
	// would overdraw a bill.
	KindInvalidPayment
	// KindStorage covers unreachable or misbehaving document-store calls.
	KindStorage
)

// Error carries a kind alongside the message and an optional wrapped cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Validationf builds a validation error.
func Validationf(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a not-found error.
func NotFoundf(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// InvalidPaymentf builds an invalid-payment error.
func InvalidPaymentf(format string, args ...interface{}) error {
	return &Error{Kind: KindInvalidPayment, Msg: fmt.Sprintf(format, args...)}
}

// Storage wraps a store-layer error so it surfaces as an internal failure
// instead of being silently swallowed.
func Storage(op string, err error) error {
	return &Error{Kind: KindStorage, Msg: op, Err: err}
}

// Internalf builds an internal consistency error.
func Internalf(format string, args ...interface{}) error {
	return &Error{Kind: KindInternal, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// HTTPStatus maps an error kind to the status code the gateway returns.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidPayment:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
