package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/fixora/adminapi/internal/dto"
	"github.com/fixora/adminapi/internal/service/authservice"
	pkgauth "github.com/fixora/adminapi/pkg/auth"
	"github.com/fixora/adminapi/pkg/utils"
	"github.com/fixora/adminapi/pkg/validate"
)

type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
	SignOut(ctx context.Context, token string) error
}

type AuthHandler struct {
	authService   Service
	dashboardPath string
}

func New(authService Service, dashboardPath string) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		dashboardPath: dashboardPath,
	}
}

// Login godoc
//
//	@Summary		Sign in to the admin panel
//	@Description	Authenticate with the allow-listed admin account and receive a session token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     pkgauth.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Token:    token,
		Email:    req.Email,
		Redirect: h.redirectTarget(r.URL.Query().Get("next")),
	})
}

// redirectTarget only honours local paths; anything absolute or
// scheme-relative falls back to the dashboard.
func (h *AuthHandler) redirectTarget(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return h.dashboardPath
}

// Logout godoc
//
//	@Summary		Sign out of the admin panel
//	@Description	Invalidate the current session and clear the session cookie
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	dto.LogoutResponseDTO
//	@Router			/api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := tokenFromRequest(r); token != "" {
		if err := h.authService.SignOut(r.Context(), token); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     pkgauth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.RespondWithJSON(w, http.StatusOK, dto.LogoutResponseDTO{Message: "signed out"})
}

// LoginPage is the boundary unauthenticated requests are redirected to. It
// echoes the redirect reason and the originally requested path so the UI in
// front of the API can render them.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"error": r.URL.Query().Get("error"),
		"next":  r.URL.Query().Get("next"),
	})
}

func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := r.Cookie(pkgauth.SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}
