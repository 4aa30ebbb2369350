package http

import (
	"errors"
	"net/http"

	"trackview/internal/adapters/out/platform"
	"trackview/internal/core/application/reconciler"
	"trackview/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps an application error onto a status code. Missing input is
// the caller's fault; anything a platform service did wrong is reported as
// 502, except rejected credentials, which keep their 401.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusBadGateway
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case platform.StatusCode(err) == http.StatusUnauthorized:
		code = http.StatusUnauthorized
	case errors.Is(err, reconciler.ErrReconcilerClosed):
		code = http.StatusServiceUnavailable
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}
