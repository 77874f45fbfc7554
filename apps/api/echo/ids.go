package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-gpa/core"
)

const maxIDs = 100

var errInvalidIDCount = errors.Errorf("n must be a number between 1 and %d", maxIDs)

func registerIDAPI(g *echo.Group) {
	g.GET("/ids", generateIDs)
}

func generateIDs(ctx echo.Context) error {
	n := 1
	if param := ctx.QueryParam("n"); param != "" {
		var err error
		if n, err = strconv.Atoi(param); err != nil || n < 1 || n > maxIDs {
			return core.NewValidationError(errInvalidIDCount, core.FieldError{Field: "n", Error: errInvalidIDCount.Error()})
		}
	}

	ids := make([]string, n)
	for i := range ids {
		ids[i] = core.GenerateID()
	}
	return ctx.JSON(http.StatusOK, echo.Map{"ids": ids})
}
