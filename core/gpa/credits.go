package gpa

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Credits holds the credit hours of a course as typed by the user.
// The zero value is an empty field: the course is skipped by Calculate.
// It accepts JSON strings, numbers and null, so callers do not need to
// care whether the form sent "3" or 3.
type Credits struct {
	raw string
}

// NewCredits returns Credits holding the given text.
func NewCredits(raw string) Credits {
	return Credits{raw: raw}
}

// CreditsOf returns Credits holding the given number.
func CreditsOf(f float64) Credits {
	return Credits{raw: strconv.FormatFloat(f, 'f', -1, 64)}
}

// IsEmpty reports whether no credits were entered (whitespace only counts as empty).
func (c Credits) IsEmpty() bool {
	return strings.TrimSpace(c.raw) == ""
}

func (c Credits) String() string { return c.raw }

// Float parses the credits. ok is false if the field is empty or not a finite number.
func (c Credits) Float() (f float64, ok bool) {
	if c.IsEmpty() {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(c.raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func (c Credits) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.raw)
}

func (c *Credits) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		c.raw = ""
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "decoding credits string")
		}
		c.raw = s
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return errors.Errorf("credits must be a string or a number, got %s", data)
		}
		c.raw = n.String()
		return nil
	}
}
