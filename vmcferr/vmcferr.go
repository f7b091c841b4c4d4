// Package vmcferr defines the error kinds shared across vmcfdiff's
// packages (spec.md §7). It never originates IOFailure: that kind exists
// only so callers wrapping an external artifact reader can report into
// the same taxonomy.
package vmcferr

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per spec.md §7 error kind. Check with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrMalformedClass  = errors.New("malformed class")
	ErrIOFailure       = errors.New("io failure")
)

// Error is a structured error carrying the failing operation alongside the
// sentinel kind it wraps, modeled on CloudPasture-kubevirt-shepherd's
// AppError without the HTTP-status concern a library has no use for.
type Error struct {
	Op  string
	Kind error
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Err != e.Kind {
		return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Kind)
}

// Unwrap exposes both the sentinel Kind and the wrapped cause so
// errors.Is/errors.As can reach either: errors.Is(err, ErrInvalidArgument)
// for the taxonomy, errors.Is(err, cause) or errors.As into cause's
// concrete type for the underlying failure.
func (e *Error) Unwrap() []error { return []error{e.Kind, e.Err} }

// Invalid builds an ErrInvalidArgument-kind Error for operation op.
func Invalid(op string, cause error) *Error {
	return &Error{Op: op, Kind: ErrInvalidArgument, Err: cause}
}

// Malformed builds an ErrMalformedClass-kind Error for operation op.
func Malformed(op string, cause error) *Error {
	return &Error{Op: op, Kind: ErrMalformedClass, Err: cause}
}
