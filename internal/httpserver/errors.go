package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/girlhub/storefront/internal/account"
	"github.com/girlhub/storefront/internal/cart"
)

// httpError maps service sentinels onto status codes. Anything unmapped is
// an internal error; its detail stays in the logs, not the response.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, account.ErrValidation), errors.Is(err, cart.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, account.ErrNotAuthenticated), errors.Is(err, cart.ErrNotAuthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, "sign in required")
	case errors.Is(err, account.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid email or password")
	case errors.Is(err, account.ErrDuplicateEmail):
		return echo.NewHTTPError(http.StatusConflict, "an account with this email already exists")
	case errors.Is(err, account.ErrNotFound), errors.Is(err, cart.ErrProductNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
