// Package failure is the closed set of reasons a request can fail, and the
// single mapping from those reasons to what the client is allowed to see.
//
// Every variant keeps its underlying cause for server-side logging. The
// response body is always one of a few fixed strings.
package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Outward bodies. Nothing else is ever written to a failed response.
const (
	BodyUnauthorized = "unauthorized"
	BodyInternal     = "internal server error"
	BodyBadRequest   = "bad request"
)

// Failure is implemented only by the variants in this package.
type Failure interface {
	error
	failure()
}

// Unauthorized means the credential was missing, malformed or unknown.
type Unauthorized struct {
	Reason string
	Err    error
}

func (e *Unauthorized) Error() string {
	if e.Err == nil {
		return "unauthorized: " + e.Reason
	}
	return fmt.Sprintf("unauthorized: %s: %v", e.Reason, e.Err)
}

func (e *Unauthorized) Unwrap() error { return e.Err }
func (*Unauthorized) failure()        {}

// Db covers everything that went wrong on the store side: pool exhaustion,
// connect failures, query and write errors.
type Db struct {
	Op  string
	Err error
}

func (e *Db) Error() string {
	return fmt.Sprintf("db: %s: %v", e.Op, e.Err)
}

func (e *Db) Unwrap() error { return e.Err }
func (*Db) failure()        {}

// BadRequest means the body could not be decoded into the endpoint payload.
type BadRequest struct {
	Err error
}

func (e *BadRequest) Error() string {
	return fmt.Sprintf("bad request: %v", e.Err)
}

func (e *BadRequest) Unwrap() error { return e.Err }
func (*BadRequest) failure()        {}

// NewUnauthorized wraps err as an Unauthorized failure.
func NewUnauthorized(reason string, err error) error {
	return &Unauthorized{Reason: reason, Err: err}
}

// NewDb wraps err as a Db failure for operation op.
func NewDb(op string, err error) error {
	return &Db{Op: op, Err: err}
}

// NewBadRequest wraps err as a BadRequest failure.
func NewBadRequest(err error) error {
	return &BadRequest{Err: err}
}

// Response maps any error to the status and body sent to the client.
// Errors that are not a Failure are treated as internal faults.
func Response(err error) (int, string) {
	var (
		unauthorized *Unauthorized
		badRequest   *BadRequest
	)
	switch {
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized, BodyUnauthorized
	case errors.As(err, &badRequest):
		return http.StatusBadRequest, BodyBadRequest
	default:
		return http.StatusInternalServerError, BodyInternal
	}
}

// IsClientError reports whether err is an expected, client-driven outcome
// that should not be logged as a server fault.
func IsClientError(err error) bool {
	var (
		unauthorized *Unauthorized
		badRequest   *BadRequest
	)
	return errors.As(err, &unauthorized) || errors.As(err, &badRequest)
}
