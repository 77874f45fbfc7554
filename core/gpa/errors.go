package gpa

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrEmptyInput     = errors.New("no courses provided")
	ErrInvalidCredits = errors.New("invalid credit input found")
	ErrUnknownGrade   = errors.New("unknown grade found")
	ErrZeroCredits    = errors.New("total credits cannot be zero")
)

// CalcError is returned by Calculate. Kind is one of the Err* sentinels;
// Rows holds the indexes of the offending entries, if any.
type CalcError struct {
	Kind error
	Rows []int
}

func newCalcError(kind error, rows ...int) *CalcError {
	return &CalcError{Kind: kind, Rows: rows}
}

func (e *CalcError) Error() string {
	if len(e.Rows) == 0 {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s (rows %v)", e.Kind.Error(), e.Rows)
}

// Unwrap makes errors.Is(err, ErrInvalidCredits) & co. work.
func (e *CalcError) Unwrap() error { return e.Kind }

// Message is the user facing message: the kind's text without row details.
func (e *CalcError) Message() string { return e.Kind.Error() }
