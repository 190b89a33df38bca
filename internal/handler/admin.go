package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rdyansyah/skygate/internal/adminapi"
	"github.com/rdyansyah/skygate/internal/models"
)

const refreshCookieName = "refreshToken"

// AdminHandler fronts the admin back end. Tokens travel in cookies; when a
// call rotates the access token the fresh one is re-set on the response.
type AdminHandler struct {
	admin      *adminapi.Client
	cookieName string
}

func NewAdminHandler(client *adminapi.Client, sessionCookieName string) *AdminHandler {
	return &AdminHandler{
		admin:      client,
		cookieName: sessionCookieName,
	}
}

func (h *AdminHandler) credentials(c echo.Context) *adminapi.Credentials {
	creds := &adminapi.Credentials{}
	if ck, err := c.Cookie(h.cookieName); err == nil {
		creds.Access = ck.Value
	}
	if ck, err := c.Cookie(refreshCookieName); err == nil {
		creds.Refresh = ck.Value
	}
	return creds
}

func (h *AdminHandler) setSessionCookies(c echo.Context, access, refresh string) {
	expires := time.Now().AddDate(0, 0, 7)
	c.SetCookie(&http.Cookie{Name: h.cookieName, Value: access, Path: "/", Expires: expires, HttpOnly: true})
	if refresh != "" {
		c.SetCookie(&http.Cookie{Name: refreshCookieName, Value: refresh, Path: "/", Expires: expires, HttpOnly: true})
	}
}

// finish re-sets the session cookie when the access token was refreshed
// during the call.
func (h *AdminHandler) finish(c echo.Context, creds *adminapi.Credentials) {
	if creds.Rotated {
		h.setSessionCookies(c, creds.Access, "")
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AdminHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}
	if req.Email == "" || req.Password == "" {
		return writeError(c, &models.ValidationError{Field: "email", Message: "email and password are required"})
	}

	pair, err := h.admin.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return adminError(c, err)
	}

	h.setSessionCookies(c, pair.AccessToken, pair.RefreshToken)
	return c.JSON(http.StatusOK, pair)
}

func (h *AdminHandler) Logout(c echo.Context) error {
	expired := time.Unix(0, 0)
	c.SetCookie(&http.Cookie{Name: h.cookieName, Value: "", Path: "/", Expires: expired})
	c.SetCookie(&http.Cookie{Name: refreshCookieName, Value: "", Path: "/", Expires: expired})
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) Me(c echo.Context) error {
	creds := h.credentials(c)
	user, err := h.admin.Me(c.Request().Context(), creds)
	if err != nil {
		return adminError(c, err)
	}
	h.finish(c, creds)
	return c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	creds := h.credentials(c)
	users, err := h.admin.ListUsers(c.Request().Context(), creds, c.QueryParams())
	if err != nil {
		return adminError(c, err)
	}
	h.finish(c, creds)
	return c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) UpdateUser(c echo.Context) error {
	var dto adminapi.UserUpdate
	if err := c.Bind(&dto); err != nil {
		return writeError(c, &models.ValidationError{Field: "body", Message: err.Error()})
	}

	creds := h.credentials(c)
	user, err := h.admin.UpdateUser(c.Request().Context(), creds, c.Param("id"), dto)
	if err != nil {
		return adminError(c, err)
	}
	h.finish(c, creds)
	return c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	creds := h.credentials(c)
	if err := h.admin.DeleteUser(c.Request().Context(), creds, c.Param("id")); err != nil {
		return adminError(c, err)
	}
	h.finish(c, creds)
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) InviteUser(c echo.Context) error {
	var dto adminapi.UserInvite
	if err := c.Bind(&dto); err != nil {
		return writeError(c, &models.ValidationError{Field: "body", Message: err.Error()})
	}

	creds := h.credentials(c)
	if err := h.admin.InviteUser(c.Request().Context(), creds, dto); err != nil {
		return adminError(c, err)
	}
	h.finish(c, creds)
	return c.NoContent(http.StatusCreated)
}

func (h *AdminHandler) Stats(c echo.Context) error {
	creds := h.credentials(c)
	stats, err := h.admin.Stats(c.Request().Context(), creds)
	if err != nil {
		return adminError(c, err)
	}
	h.finish(c, creds)
	return c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) ListSites(c echo.Context) error {
	creds := h.credentials(c)
	sites, err := h.admin.ListSites(c.Request().Context(), creds, c.QueryParams())
	if err != nil {
		return adminError(c, err)
	}
	h.finish(c, creds)
	return c.JSON(http.StatusOK, sites)
}

func (h *AdminHandler) ApplyBan(c echo.Context) error {
	var dto adminapi.BanRequest
	if err := c.Bind(&dto); err != nil {
		return writeError(c, &models.ValidationError{Field: "body", Message: err.Error()})
	}

	creds := h.credentials(c)
	if err := h.admin.ApplyBan(c.Request().Context(), creds, dto); err != nil {
		return adminError(c, err)
	}
	h.finish(c, creds)
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) Roles(c echo.Context) error {
	creds := h.credentials(c)
	roles, err := h.admin.Roles(c.Request().Context(), creds)
	if err != nil {
		return adminError(c, err)
	}
	h.finish(c, creds)
	return c.JSON(http.StatusOK, roles)
}

// adminError forwards the back end's status and payload unchanged.
func adminError(c echo.Context, err error) error {
	var apiErr *adminapi.APIError
	if errors.As(err, &apiErr) {
		return c.JSON(apiErr.StatusCode, models.ErrorResponse{
			Error:   "admin_api_error",
			Message: string(apiErr.Body),
			Code:    apiErr.StatusCode,
		})
	}
	return writeError(c, err)
}
