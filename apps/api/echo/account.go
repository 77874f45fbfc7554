package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-gpa/core"
	"github.com/trezcool/masomo-gpa/core/account"
	"github.com/trezcool/masomo-gpa/core/email"
)

type accountApi struct {
	validate       *validator.Validate
	emailValidator *email.Validator
}

func registerAccountAPI(g *echo.Group, validate *validator.Validate, emailValidator *email.Validator) {
	api := accountApi{
		validate:       validate,
		emailValidator: emailValidator,
	}

	g.POST("/emails/validate", api.validateEmail)

	ag := g.Group("/accounts")
	ag.GET("/roles", api.queryRoles)
	ag.POST("/signup/validate", api.validateSignup)
	ag.POST("/login/validate", api.validateLogin)
}

type validateEmailRequest struct {
	Email string `json:"email"`
}

// Handlers

// validateEmail always answers 200: an invalid address is a result, not a request error.
func (api *accountApi) validateEmail(ctx echo.Context) error {
	var data validateEmailRequest
	if err := ctx.Bind(&data); err != nil {
		return core.NewValidationError(errors.Wrap(err, "binding to validateEmailRequest"))
	}
	return ctx.JSON(http.StatusOK, api.emailValidator.Validate(data.Email))
}

func (api *accountApi) queryRoles(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, account.Roles)
}

func (api *accountApi) validateSignup(ctx echo.Context) error {
	var data account.SignupForm
	if err := ctx.Bind(&data); err != nil {
		return core.NewValidationError(errors.Wrap(err, "binding to SignupForm"))
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *accountApi) validateLogin(ctx echo.Context) error {
	var data account.LoginForm
	if err := ctx.Bind(&data); err != nil {
		return core.NewValidationError(errors.Wrap(err, "binding to LoginForm"))
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
