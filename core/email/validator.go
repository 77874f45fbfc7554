// Package email checks that addresses belong to the institution.
// It only looks at the shape & the domain suffix; it never contacts a mail server.
package email

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// DefaultDomain is the institutional domain used by Validate.
const DefaultDomain = "mnsuam.edu.pk"

var (
	// errors
	ErrMissingEmail   = errors.New("Email is required")
	ErrMalformedEmail = errors.New("Invalid email format")
	ErrWrongDomain    = errors.New("wrong email domain")

	// local@domain.tld
	shapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	defaultValidator = NewValidator(DefaultDomain)
)

// Result is the outcome of an email validation.
type Result struct {
	IsValid bool   `json:"is_valid"`
	Message string `json:"message"`

	err error
}

// Err returns one of ErrMissingEmail, ErrMalformedEmail & ErrWrongDomain, or nil when valid.
func (r Result) Err() error { return r.err }

func invalid(err error, msg string) Result {
	return Result{Message: msg, err: err}
}

// Validator validates addresses against one institutional domain.
type Validator struct {
	domain string
}

// NewValidator returns a Validator for the given domain (eg. "mnsuam.edu.pk").
func NewValidator(domain string) *Validator {
	domain = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(domain), "@"))
	return &Validator{domain: domain}
}

func (v *Validator) Domain() string { return v.domain }

// WrongDomainMessage is the message shown for addresses outside the domain.
func (v *Validator) WrongDomainMessage() string {
	return fmt.Sprintf("Please use your official university email (@%s)", v.domain)
}

// Validate checks that input is a well formed address of the validator's domain.
// The domain check is case-insensitive.
func (v *Validator) Validate(input string) Result {
	if input == "" {
		return invalid(ErrMissingEmail, ErrMissingEmail.Error())
	}
	if !shapeRegex.MatchString(input) {
		return invalid(ErrMalformedEmail, ErrMalformedEmail.Error())
	}
	if !strings.HasSuffix(strings.ToLower(input), "@"+v.domain) {
		return invalid(ErrWrongDomain, v.WrongDomainMessage())
	}
	return Result{IsValid: true}
}

// Validate checks input against DefaultDomain.
func Validate(input string) Result {
	return defaultValidator.Validate(input)
}
