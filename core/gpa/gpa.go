// Package gpa computes credit-weighted grade-point averages.
package gpa

import (
	"strconv"
)

// CourseEntry is one course row of a GPA calculation.
// ID and Name are for the caller only; they play no part in the computation.
type CourseEntry struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Grade   string  `json:"grade"`
	Credits Credits `json:"credits"`
}

// Result is a successful GPA calculation.
type Result struct {
	GPA          string  `json:"gpa"` // formatted with 2 decimals
	Value        float64 `json:"-"`
	TotalCredits float64 `json:"total_credits"`
	TotalPoints  float64 `json:"total_points"`
}

type options struct {
	strictGrades bool
}

// Option tunes Calculate.
type Option func(*options)

// WithStrictGrades makes Calculate fail with ErrUnknownGrade on unknown grade symbols
// instead of counting them as 0.0 points.
func WithStrictGrades() Option {
	return func(o *options) { o.strictGrades = true }
}

// Calculate returns the credit-weighted average of the entries' grade points.
//
// Entries with empty credits are skipped. Every entry is scanned before failing, so the
// returned *CalcError lists all offending rows. Errors take precedence in this order:
// ErrEmptyInput, ErrInvalidCredits, ErrUnknownGrade (strict mode only), ErrZeroCredits.
//
// Calculate is pure and safe for concurrent use.
func Calculate(entries []CourseEntry, opts ...Option) (Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if len(entries) == 0 {
		return Result{}, newCalcError(ErrEmptyInput)
	}

	var (
		totalPoints, totalCredits float64
		invalidRows, unknownRows  []int
	)
	for i, entry := range entries {
		if entry.Credits.IsEmpty() {
			continue
		}
		credits, ok := entry.Credits.Float()
		if !ok {
			invalidRows = append(invalidRows, i)
			continue
		}
		points, ok := Points(entry.Grade)
		if !ok && o.strictGrades {
			unknownRows = append(unknownRows, i)
			continue
		}
		totalPoints += points * credits
		totalCredits += credits
	}

	switch {
	case len(invalidRows) > 0:
		return Result{}, newCalcError(ErrInvalidCredits, invalidRows...)
	case len(unknownRows) > 0:
		return Result{}, newCalcError(ErrUnknownGrade, unknownRows...)
	case totalCredits == 0:
		return Result{}, newCalcError(ErrZeroCredits)
	}

	value := totalPoints / totalCredits
	return Result{
		GPA:          strconv.FormatFloat(value, 'f', 2, 64),
		Value:        value,
		TotalCredits: totalCredits,
		TotalPoints:  totalPoints,
	}, nil
}

// Outcome is the {gpa, error} pair handed to UI collaborators: exactly one is set.
type Outcome struct {
	GPA   *string `json:"gpa"`
	Error *string `json:"error"`
}

// NewOutcome folds the return values of Calculate into an Outcome.
func NewOutcome(res Result, err error) Outcome {
	if err != nil {
		msg := err.Error()
		if cErr, ok := err.(*CalcError); ok {
			msg = cErr.Message()
		}
		return Outcome{Error: &msg}
	}
	gpa := res.GPA
	return Outcome{GPA: &gpa}
}
