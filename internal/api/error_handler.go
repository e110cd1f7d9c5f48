package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stl-ops/dashboard/internal/domain"
	"github.com/stl-ops/dashboard/internal/pkg/constants"
)

func httpErrorHandler(err error, c echo.Context) {
	msg := err.Error()
	code := http.StatusInternalServerError

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}

	unwrapped := err
	for unwrapped != nil {
		if ce, ok := unwrapped.(*constants.CodedError); ok {
			code = ce.Code()
			break
		}
		unwrapped = errors.Unwrap(unwrapped)
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
