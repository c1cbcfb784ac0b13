// FILE: internal/pkg/apperrors/errors.go
// Error taxonomy surfaced by the core services.
package apperrors

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindNotFound: a referenced catalog entity does not exist. Client error.
	KindNotFound Kind = iota + 1
	// KindConstraintViolation: a duplicate-key insert bypassed the upsert
	// path. Invariant break, not expected in normal operation.
	KindConstraintViolation
	// KindTransactionFailure: the store could not commit a transactional
	// unit. Prior state is intact, the caller may retry.
	KindTransactionFailure
	// KindStoreUnavailable: generic backend fault. Retryable with backoff.
	KindStoreUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConstraintViolation:
		return "constraint_violation"
	case KindTransactionFailure:
		return "transaction_failure"
	case KindStoreUnavailable:
		return "store_unavailable"
	}
	return "unknown"
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func ConstraintViolation(msg string, err error) *Error {
	return &Error{Kind: KindConstraintViolation, Message: msg, Err: err}
}

func TransactionFailure(msg string, err error) *Error {
	return &Error{Kind: KindTransactionFailure, Message: msg, Err: err}
}

func StoreUnavailable(msg string, err error) *Error {
	return &Error{Kind: KindStoreUnavailable, Message: msg, Err: err}
}

// KindOf extracts the taxonomy kind, or 0 for untyped errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsRetryable(err error) bool {
	k := KindOf(err)
	return k == KindTransactionFailure || k == KindStoreUnavailable
}
