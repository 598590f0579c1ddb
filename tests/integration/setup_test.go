package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"

	adaptershttp "github.com/fletero/backoffice/internal/adapter/http"
	"github.com/fletero/backoffice/internal/adapter/http/dto"
	"github.com/fletero/backoffice/internal/adapter/http/handler"
	postgresrepo "github.com/fletero/backoffice/internal/adapter/repository/postgres"
	redisrepo "github.com/fletero/backoffice/internal/adapter/repository/redis"
	"github.com/fletero/backoffice/internal/infrastructure/auth"
	infraredis "github.com/fletero/backoffice/internal/infrastructure/redis"
	"github.com/fletero/backoffice/internal/usecase"
	"github.com/fletero/backoffice/tests/testutil"
)

const (
	testJWTSecret  = "integration-test-secret"
	testCookieName = "session"
)

// newTestRouter wires the full API against the test database, the way
// the server binary does.
func newTestRouter(t *testing.T, testDB *testutil.TestDB) http.Handler {
	t.Helper()

	ctx := context.Background()
	pool := testDB.Pool

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	txManager := postgresrepo.NewTxManager(pool)
	cajaRepo := postgresrepo.NewCajaRepository(pool)
	outboxRepo := postgresrepo.NewOutboxRepository(pool)
	idGen := postgresrepo.NewULIDGenerator()

	runner := usecase.NewTxRunner(txManager, postgresrepo.NewRetrier(), 10*time.Second)
	deps := usecase.LedgerDeps{
		Runner:     runner,
		CajaRepo:   cajaRepo,
		OutboxRepo: outboxRepo,
		IDGen:      idGen,
	}

	jwtManager := auth.NewJWTManager(testJWTSecret, time.Hour)

	return adaptershttp.NewRouter(adaptershttp.RouterConfig{
		AuthHandler:         handler.NewAuthHandler(usecase.NewUserUseCase(postgresrepo.NewUserRepository(pool), idGen), jwtManager, testCookieName, false),
		CajaHandler:         handler.NewCajaHandler(usecase.NewCajaUseCase(cajaRepo, idGen)),
		IngresoHandler:      handler.NewIngresoHandler(usecase.NewIngresoUseCase(deps, postgresrepo.NewIngresoRepository(pool))),
		GastoHandler:        handler.NewGastoHandler(usecase.NewGastoUseCase(deps, postgresrepo.NewGastoRepository(pool))),
		RemuneracionHandler: handler.NewRemuneracionHandler(usecase.NewRemuneracionUseCase(deps, postgresrepo.NewRemuneracionRepository(pool))),
		LegalHandler:        handler.NewLegalHandler(usecase.NewLegalUseCase(deps, postgresrepo.NewLegalRepository(pool))),
		RendicionHandler:    handler.NewRendicionHandler(usecase.NewRendicionUseCase(deps, postgresrepo.NewRendicionRepository(pool))),
		SalidaHandler:       handler.NewSalidaHandler(usecase.NewSalidaUseCase(postgresrepo.NewSalidaRepository(pool), outboxRepo, idGen, 0)),
		OrdenHandler:        handler.NewOrdenHandler(usecase.NewOrdenUseCase(postgresrepo.NewOrdenRepository(pool), idGen, 0)),
		ChoferHandler:       handler.NewChoferHandler(usecase.NewChoferUseCase(postgresrepo.NewChoferRepository(pool), idGen)),
		HealthHandler:       handler.NewHealthHandler(pool, redisClient),
		JWTManager:          jwtManager,
		CookieName:          testCookieName,
		IdempotencyStore:    redisrepo.NewIdempotencyStore(redisClient),
		Logger:              zerolog.Nop(),
	})
}

// signupAndSignin creates an account and returns its session cookie.
func signupAndSignin(t *testing.T, router http.Handler, email string, roleID int, localidad, sucursal string) *http.Cookie {
	t.Helper()

	signup := dto.SignupRequest{
		Username:  "tester",
		Email:     email,
		Password:  "s3cret-pass",
		RoleID:    roleID,
		Localidad: localidad,
		Sucursal:  sucursal,
	}
	body, _ := json.Marshal(signup)

	r := httptest.NewRequest(http.MethodPost, "/api/signup", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	if w.Code != http.StatusCreated {
		t.Fatalf("signup failed: status %d, body %s", w.Code, w.Body.String())
	}

	signin := dto.SigninRequest{Email: email, Password: "s3cret-pass"}
	body, _ = json.Marshal(signin)

	r = httptest.NewRequest(http.MethodPost, "/api/signin", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("signin failed: status %d, body %s", w.Code, w.Body.String())
	}

	for _, c := range w.Result().Cookies() {
		if c.Name == testCookieName {
			return c
		}
	}
	t.Fatal("signin response carried no session cookie")
	return nil
}

// testutilSetup connects to the test database and starts from a clean slate.
func testutilSetup(t *testing.T, ctx context.Context) *testutil.TestDB {
	t.Helper()

	testDB := testutil.NewTestDB(t)
	t.Cleanup(testDB.Cleanup)
	testDB.TruncateAll(ctx)
	return testDB
}

// doJSON issues an authenticated JSON request against the router.
func doJSON(t *testing.T, router http.Handler, cookie *http.Cookie, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	return doJSONWithHeader(t, router, cookie, method, path, payload, "", "")
}

// doJSONWithHeader issues an authenticated JSON request with one extra header.
func doJSONWithHeader(t *testing.T, router http.Handler, cookie *http.Cookie, method, path string, payload any, header, value string) *httptest.ResponseRecorder {
	t.Helper()

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
	}

	r := httptest.NewRequest(method, path, bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	if header != "" {
		r.Header.Set(header, value)
	}
	if cookie != nil {
		r.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}
