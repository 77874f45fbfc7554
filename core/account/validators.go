package account

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/masomo-gpa/core"
	"github.com/trezcool/masomo-gpa/core/email"
)

var (
	uniEmailTag = "uniemail"
	roleTag     = "role"
	roleText    = "invalid role"
)

// InitValidators registers the account validation tags.
// core.InitValidators must have been called on validate first.
func InitValidators(validate *validator.Validate, translator ut.Translator, emailValidator *email.Validator) {
	_ = validate.RegisterValidation(roleTag, roleValidation)
	core.RegisterCustomTranslation(validate, translator, roleTag, roleText)

	_ = validate.RegisterValidation(uniEmailTag, func(fl validator.FieldLevel) bool {
		return emailValidator.Validate(fl.Field().String()).IsValid
	})
	// the message depends on why the address was rejected
	_ = validate.RegisterTranslation(
		uniEmailTag, translator,
		func(ut.Translator) error { return nil },
		func(_ ut.Translator, fe validator.FieldError) string {
			addr, _ := fe.Value().(string)
			return emailValidator.Validate(addr).Message
		},
	)
}

// Custom Validators

func roleValidation(fl validator.FieldLevel) bool {
	return IsRole(fl.Field().String())
}
