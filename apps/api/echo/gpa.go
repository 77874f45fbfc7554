package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-gpa/core"
	"github.com/trezcool/masomo-gpa/core/gpa"
)

type gpaApi struct {
	strictGrades bool
}

func registerGPAAPI(g *echo.Group, strictGrades bool) {
	api := gpaApi{strictGrades: strictGrades}

	g.GET("/grades", api.queryGrades)
	g.POST("/gpa", api.calculate)
}

type (
	calculateRequest struct {
		Courses []gpa.CourseEntry `json:"courses"`
		// Strict rejects unknown grades; it can only tighten the server's setting.
		Strict bool `json:"strict"`
	}

	calculateResponse struct {
		gpa.Outcome
		TotalCredits float64 `json:"total_credits"`
		TotalPoints  float64 `json:"total_points"`
	}
)

// Handlers

func (api *gpaApi) queryGrades(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, gpa.Grades())
}

func (api *gpaApi) calculate(ctx echo.Context) error {
	var data calculateRequest
	if err := ctx.Bind(&data); err != nil {
		return core.NewValidationError(errors.Wrap(err, "binding to calculateRequest"))
	}

	var opts []gpa.Option
	if api.strictGrades || data.Strict {
		opts = append(opts, gpa.WithStrictGrades())
	}
	res, err := gpa.Calculate(data.Courses, opts...)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, calculateResponse{
		Outcome:      gpa.NewOutcome(res, nil),
		TotalCredits: res.TotalCredits,
		TotalPoints:  res.TotalPoints,
	})
}
