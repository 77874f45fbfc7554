package gpa

import (
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-gpa/core"
)

// Sheet fields that may be updated
const (
	FieldName    = "name"
	FieldGrade   = "grade"
	FieldCredits = "credits"
)

var (
	// errors
	ErrRowNotFound  = errors.New("course row not found")
	ErrInvalidField = errors.New("invalid course field")
)

// Sheet is the editable list of course rows behind a GPA calculator form.
// It is owned by a single caller and must not be mutated concurrently.
type Sheet struct {
	rows  []CourseEntry
	newID func() string
}

// NewSheet returns a sheet with one blank row.
func NewSheet() *Sheet {
	s := &Sheet{newID: core.GenerateID}
	s.Clear()
	return s
}

func (s *Sheet) blankRow() CourseEntry {
	return CourseEntry{ID: s.newID(), Grade: DefaultGrade}
}

// Add appends a blank row and returns it.
func (s *Sheet) Add() CourseEntry {
	row := s.blankRow()
	s.rows = append(s.rows, row)
	return row
}

// Remove deletes the row with the given ID.
func (s *Sheet) Remove(id string) error {
	for i, row := range s.rows {
		if row.ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return errors.Wrapf(ErrRowNotFound, "removing %q", id)
}

// Update sets one field (FieldName, FieldGrade or FieldCredits) of the row with the given ID.
// Grades are not checked here: Calculate decides what to do with unknown ones.
func (s *Sheet) Update(id, field, value string) error {
	for i := range s.rows {
		if s.rows[i].ID != id {
			continue
		}
		switch field {
		case FieldName:
			s.rows[i].Name = value
		case FieldGrade:
			s.rows[i].Grade = value
		case FieldCredits:
			s.rows[i].Credits = NewCredits(value)
		default:
			return errors.Wrapf(ErrInvalidField, "updating %q", field)
		}
		return nil
	}
	return errors.Wrapf(ErrRowNotFound, "updating %q", id)
}

// Clear resets the sheet to a single blank row.
func (s *Sheet) Clear() {
	s.rows = []CourseEntry{s.blankRow()}
}

// Len returns the number of rows.
func (s *Sheet) Len() int { return len(s.rows) }

// Entries returns a copy of the rows.
func (s *Sheet) Entries() []CourseEntry {
	entries := make([]CourseEntry, len(s.rows))
	copy(entries, s.rows)
	return entries
}

// Calculate computes the GPA of the current rows.
func (s *Sheet) Calculate(opts ...Option) (Result, error) {
	return Calculate(s.rows, opts...)
}
