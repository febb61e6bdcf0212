package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"ecovista-backend/pkg/auth"
	"ecovista-backend/pkg/common"
)

const sessionCookieName = "access_token"

// AuthHandler issues and clears the development session cookie. Both routes
// answer 404 in production, where sessions come from the real identity
// provider.
type AuthHandler struct {
	issuer     *auth.JWTIssuer
	production bool
	logger     *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(issuer *auth.JWTIssuer, production bool, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{issuer: issuer, production: production, logger: logger}
}

type devLoginRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type devLoginResponse struct {
	OK   bool `json:"ok"`
	User struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"user"`
}

// DevLogin handles POST /auth/dev-login
func (h *AuthHandler) DevLogin(w http.ResponseWriter, r *http.Request) {
	if h.production {
		common.RespondError(w, http.StatusNotFound, "not found")
		return
	}

	var req devLoginRequest
	// Body is optional; defaults stand in for anything missing
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Email == "" {
		req.Email = "dev@test.com"
	}
	if req.Name == "" {
		req.Name = "Dev User"
	}

	token, err := h.issuer.Sign(auth.Principal{
		UserID: req.Email,
		Email:  req.Email,
		Name:   req.Name,
	})
	if err != nil {
		h.logger.Error("Failed to sign dev token", zap.Error(err))
		common.RespondError(w, http.StatusInternalServerError, "failed to issue session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.issuer.TTL().Seconds()),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	})

	resp := devLoginResponse{OK: true}
	resp.User.Email = req.Email
	resp.User.Name = req.Name
	common.RespondJSON(w, http.StatusOK, resp)
}

// DevLogout handles POST /auth/dev-logout
func (h *AuthHandler) DevLogout(w http.ResponseWriter, r *http.Request) {
	if h.production {
		common.RespondError(w, http.StatusNotFound, "not found")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	common.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
