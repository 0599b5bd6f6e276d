package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voltplan/loadcalc/internal/domain"
)

// coded is implemented by constants.CodedError and domain.ValidationError.
type coded interface {
	error
	Code() int
}

func httpErrorHandler(err error, c echo.Context) {
	msg := err.Error()
	code := http.StatusInternalServerError
	for err != nil {
		if ce, ok := err.(coded); ok {
			code = ce.Code()
			break
		}
		err = errors.Unwrap(err)
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
