package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fletero/backoffice/internal/domain"
	"github.com/fletero/backoffice/internal/infrastructure/auth"
)

const testCookie = "session"

func newTestJWT(t *testing.T, duration time.Duration) *auth.JWTManager {
	t.Helper()
	return auth.NewJWTManager("test-secret", duration)
}

func TestAuthMiddlewareAttachesPrincipal(t *testing.T) {
	jwtManager := newTestJWT(t, time.Hour)
	token, err := jwtManager.Generate(&domain.User{
		ID:        "u1",
		Username:  "maria",
		RoleID:    domain.RoleUser,
		Localidad: "cordoba",
		Sucursal:  "centro",
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	var got domain.Principal
	handler := AuthMiddleware(jwtManager, testCookie)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := PrincipalFromContext(r.Context())
		if !ok {
			t.Fatalf("expected principal in context")
		}
		got = actor
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/ingresos", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if got.UserID != "u1" || got.Localidad != "cordoba" {
		t.Fatalf("unexpected principal: %+v", got)
	}
}

func TestAuthMiddlewareRejectsMissingCookie(t *testing.T) {
	handler := AuthMiddleware(newTestJWT(t, time.Hour), testCookie)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/ingresos", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	expired := newTestJWT(t, -time.Minute)
	token, err := expired.Generate(&domain.User{ID: "u1", Localidad: "cordoba"})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	handler := AuthMiddleware(newTestJWT(t, time.Hour), testCookie)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/ingresos", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	jwtManager := newTestJWT(t, time.Hour)

	cases := []struct {
		name   string
		roleID int
		want   int
	}{
		{"admin passes", domain.RoleAdmin, http.StatusOK},
		{"user forbidden", domain.RoleUser, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := jwtManager.Generate(&domain.User{ID: "u1", RoleID: tc.roleID, Localidad: "cordoba"})
			if err != nil {
				t.Fatalf("generate failed: %v", err)
			}

			handler := AuthMiddleware(jwtManager, testCookie)(RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})))

			req := httptest.NewRequest(http.MethodGet, "/api/ingresos/admin", nil)
			req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rr.Code)
			}
		})
	}
}
