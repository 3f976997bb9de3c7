package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/girlhub/storefront/internal/account"
	"github.com/girlhub/storefront/internal/logging"
)

type ProfileHTTP struct {
	Svc *account.Service
}

func (h *ProfileHTTP) GetProfile(c echo.Context) error {
	session, ok := h.Svc.CurrentSession()
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "sign in required")
	}
	return c.JSON(http.StatusOK, session)
}

func (h *ProfileHTTP) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.update")

	var req account.Profile
	if err := c.Bind(&req); err != nil {
		l.Warn("update_profile_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.UpdateProfile(ctx, req)
	if err != nil {
		l.Warn("update_profile_failed", "error", err)
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *ProfileHTTP) ChangePassword(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.change_password")

	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
		ConfirmPassword string `json:"confirm_password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("change_password_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.ChangePassword(ctx, req.CurrentPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		l.Warn("change_password_failed", "error", err)
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "password changed"})
}

func (h *ProfileHTTP) DeleteAccount(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.delete_account")

	var req struct {
		Confirmation string `json:"confirmation"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("delete_account_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.DeleteAccount(ctx, req.Confirmation); err != nil {
		l.Warn("delete_account_failed", "error", err)
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "account deleted"})
}

func (h *ProfileHTTP) ListAddresses(c echo.Context) error {
	ctx := c.Request().Context()
	addrs, err := h.Svc.Addresses(ctx)
	if err != nil {
		return httpError(err)
	}
	if addrs == nil {
		addrs = []account.Address{}
	}
	return c.JSON(http.StatusOK, addrs)
}

func (h *ProfileHTTP) AddAddress(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.add_address")

	var req account.Address
	if err := c.Bind(&req); err != nil {
		l.Warn("add_address_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	addr, err := h.Svc.AddAddress(ctx, req)
	if err != nil {
		l.Warn("add_address_failed", "error", err)
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, addr)
}

func (h *ProfileHTTP) SetDefaultAddress(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.set_default_address")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		l.Warn("set_default_address_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	if err := h.Svc.SetDefaultAddress(ctx, id); err != nil {
		l.Warn("set_default_address_failed", "address_id", id, "error", err)
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "default address updated"})
}

func (h *ProfileHTTP) DeleteAddress(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.delete_address")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		l.Warn("delete_address_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	if err := h.Svc.DeleteAddress(ctx, id); err != nil {
		l.Warn("delete_address_failed", "address_id", id, "error", err)
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "address deleted"})
}

func (h *ProfileHTTP) GetSettings(c echo.Context) error {
	settings, err := h.Svc.Settings(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, settings)
}

func (h *ProfileHTTP) SaveSettings(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.save_settings")

	var req account.Settings
	if err := c.Bind(&req); err != nil {
		l.Warn("save_settings_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.SaveSettings(ctx, req); err != nil {
		l.Warn("save_settings_failed", "error", err)
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "settings saved"})
}
