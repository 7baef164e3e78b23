package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/domunity/backend/internal/logging"
	"github.com/domunity/backend/internal/server/auth"
	"github.com/domunity/backend/internal/server/metrics"
	"github.com/domunity/backend/internal/server/password"
	"github.com/domunity/backend/internal/server/repositories/contacts"
	"github.com/domunity/backend/internal/server/repositories/offers"
	"github.com/domunity/backend/internal/server/repositories/users"
	"github.com/domunity/backend/internal/server/services"
	"github.com/domunity/backend/internal/server/validation"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	gs "github.com/domunity/backend/internal/server/grpc"
)

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

func newTestRouter(db Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	return NewRouter(RouterConfig{
		ServiceName:    "domunity-test",
		AllowedOrigins: []string{"https://domunity.bg"},
		DB:             db,
		Gatherer:       reg,
		Metrics:        metrics.New(reg),
	})
}

func do(r http.Handler, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	w := do(newTestRouter(nil), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestReadyz(t *testing.T) {
	w := do(newTestRouter(fakePinger{}), http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(newTestRouter(fakePinger{err: errors.New("down")}), http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "down")
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(nil)
	do(r, http.MethodGet, "/healthz", nil)

	w := do(r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "domunity_http_requests_total"))
}

func TestCORS(t *testing.T) {
	r := newTestRouter(nil)

	w := do(r, http.MethodOptions, "/healthz", map[string]string{"Origin": "https://domunity.bg"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://domunity.bg", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(r, http.MethodGet, "/healthz", map[string]string{"Origin": "https://evil.example"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_StopsOnContextCancel(t *testing.T) {
	srv := NewServer("127.0.0.1:0", newTestRouter(nil), logging.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

const frontendOrigin = "http://localhost:5173"

func newRPCRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logging.Discard()
	v := validation.New()
	authSvc := services.NewAuthService(users.NewMemoryRepository(), auth.NewTokenService("0123456789abcdef0123456789abcdef"),
		password.NewHasher(bcrypt.MinCost), v, services.TokenTTLs{})
	rpc := gs.NewGRPCServer("unused", log, authSvc,
		services.NewContactService(contacts.NewMemoryRepository(), v, log),
		services.NewOfferService(offers.NewMemoryRepository(), v, log, nil))

	return NewRouter(RouterConfig{
		ServiceName:    "domunity-test",
		AllowedOrigins: []string{frontendOrigin},
		RPC:            rpc,
	})
}

func postRPC(r http.Handler, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Connect-Protocol-Version", "1")
	req.Header.Set("Origin", frontendOrigin)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type authBody struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		FullName string `json:"fullName"`
	} `json:"user"`
}

func TestConnectRoutes_AuthFlowFromBrowser(t *testing.T) {
	r := newRPCRouter(t)

	w := postRPC(r, "/api.v1.AuthService/Signup",
		`{"email":"ana@example.com","password":"Secret123","fullName":"Ana Ivanova"}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, frontendOrigin, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var signup authBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signup))
	assert.NotEmpty(t, signup.AccessToken)
	assert.Equal(t, "ana@example.com", signup.User.Email)

	w = postRPC(r, "/api.v1.AuthService/Login", `{"email":"ana@example.com","password":"Secret123"}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login authBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	assert.Equal(t, signup.User.ID, login.User.ID)

	w = postRPC(r, "/api.v1.AuthService/GetCurrentUser", `{}`, map[string]string{"Authorization": "Bearer " + login.AccessToken})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var current struct {
		User struct {
			ID       string `json:"id"`
			FullName string `json:"fullName"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))
	assert.Equal(t, signup.User.ID, current.User.ID)
	assert.Equal(t, "Ana Ivanova", current.User.FullName)
}

func TestConnectRoutes_ErrorBody(t *testing.T) {
	r := newRPCRouter(t)

	w := postRPC(r, "/api.v1.AuthService/GetCurrentUser", `{}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, frontendOrigin, w.Header().Get("Access-Control-Allow-Origin"))

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unauthenticated", body.Code)
	assert.NotEmpty(t, body.Message)

	w = postRPC(r, "/api.v1.AuthService/Login", `{"email":"nobody@example.com","password":"Secret123"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestConnectRoutes_Preflight(t *testing.T) {
	r := newRPCRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api.v1.AuthService/Login", nil)
	req.Header.Set("Origin", frontendOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type,connect-protocol-version")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, frontendOrigin, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Connect-Protocol-Version")
}
