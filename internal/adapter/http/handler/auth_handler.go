package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fletero/backoffice/internal/adapter/http/dto"
	"github.com/fletero/backoffice/internal/domain"
	"github.com/fletero/backoffice/internal/infrastructure/auth"
	"github.com/fletero/backoffice/internal/usecase"
)

// UserService defines the behavior needed by AuthHandler.
type UserService interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
}

// AuthHandler handles signup, signin and session requests. Sessions are
// carried in an HttpOnly cookie rather than an Authorization header so
// the browser front end never touches the token.
type AuthHandler struct {
	userUC       UserService
	jwtManager   *auth.JWTManager
	cookieName   string
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userUC UserService, jwtManager *auth.JWTManager, cookieName string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		userUC:       userUC,
		jwtManager:   jwtManager,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
	}
}

// Signup creates a new account.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.Register(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create account", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.UserFromDomain(user))
}

// Signin verifies credentials and sets the session cookie.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req dto.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to sign in", err.Error())
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue session", err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.jwtManager.TokenDuration().Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}

// Signout clears the session cookie.
func (h *AuthHandler) Signout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}

// Profile returns the account behind the current session.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	user, err := h.userUC.GetProfile(r.Context(), actor.UserID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get profile", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}
