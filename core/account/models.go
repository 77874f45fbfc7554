// Package account validates the signup & login forms of the portal.
// It does not authenticate anyone nor store accounts.
package account

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/masomo-gpa/core"
)

// Roles
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

var (
	AllRoles = []string{RoleStudent, RoleTeacher}

	Roles = []Role{
		{Name: "Student", Value: RoleStudent},
		{Name: "Teacher", Value: RoleTeacher},
	}
)

type Role struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func IsRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// SignupForm contains what a new student or teacher fills in.
type SignupForm struct {
	Name     string `json:"name" validate:"required,notblank"`
	Email    string `json:"email" validate:"required,uniemail"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,role"`
}

func (sf *SignupForm) Validate(validate *validator.Validate) error {
	sf.Name = core.CleanString(sf.Name)
	sf.Email = core.CleanString(sf.Email, true /* lower */)
	sf.Role = core.CleanString(sf.Role, true /* lower */)
	return validate.Struct(sf)
}

// LoginForm contains the login credentials. Role defaults to RoleStudent.
type LoginForm struct {
	Email    string `json:"email" validate:"required,uniemail"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,role"`
}

func (lf *LoginForm) Validate(validate *validator.Validate) error {
	lf.Email = core.CleanString(lf.Email, true /* lower */)
	lf.Role = core.CleanString(lf.Role, true /* lower */)
	if lf.Role == "" {
		lf.Role = RoleStudent
	}
	return validate.Struct(lf)
}

// FormErrors translates the error returned by a form's Validate into {field: message}.
// ok is false if err is not a validation error.
func FormErrors(err error, translator ut.Translator) (fields map[string]string, ok bool) {
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, false
	}
	return core.TranslateErrors(vErrs, translator), true
}
