package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/girlhub/storefront/internal/account"
	"github.com/girlhub/storefront/internal/logging"
)

type AuthHTTP struct {
	Svc *account.Service
}

// userResponse never carries the password field back out.
type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserResponse(u *account.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (h *AuthHTTP) Signup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.signup")

	var req struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
		TermsAccepted   bool   `json:"terms_accepted"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("signup_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Signup(ctx, req.Name, req.Email, req.Password, req.ConfirmPassword, req.TermsAccepted)
	if err != nil {
		l.Warn("signup_failed", "error", err)
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Remember bool   `json:"remember"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Login(ctx, req.Email, req.Password, req.Remember)
	if err != nil {
		l.Warn("login_failed", "error", err)
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.Svc.Logout(ctx); err != nil {
		logging.FromContext(ctx).Error("logout_failed", "error", err)
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

// ForgotPassword acknowledges a reset request. The response format does not
// change for unknown emails beyond a 404, matching the original flow that
// told the user whether an account exists.
func (h *AuthHTTP) ForgotPassword(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.forgot")

	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("forgot_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.RequestPasswordReset(ctx, req.Email); err != nil {
		l.Warn("forgot_failed", "error", err)
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "reset instructions sent"})
}
