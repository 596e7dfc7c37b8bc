package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"leadboard_backend/internal/auth/service"
	"leadboard_backend/internal/auth/transport"
	"leadboard_backend/internal/events"
	"leadboard_backend/platform/httpkit"
	"leadboard_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

type noopBus struct{}

func (noopBus) Publish(context.Context, events.Event)           {}
func (noopBus) PublishSync(context.Context, events.Event) error { return nil }
func (noopBus) Subscribe(string, events.Handler)                {}

type testAuthConfig struct{}

func (testAuthConfig) GetJWTAccessSecret() string       { return "test-secret" }
func (testAuthConfig) GetAccessTokenTTL() time.Duration { return time.Hour }
func (testAuthConfig) GetAdminEmail() string            { return "admin@example.com" }
func (testAuthConfig) GetAdminPassword() string         { return "s3cret-pass" }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testAuthConfig{}
	svc, err := service.New(cfg, noopBus{})
	if err != nil {
		t.Fatalf("service init failed: %v", err)
	}
	h := New(svc, validator.New())

	engine := gin.New()
	h.RegisterRoutes(engine.Group("/auth"))

	protected := engine.Group("")
	protected.Use(httpkit.AuthRequired(cfg))
	protected.GET("/auth/me", h.Me)

	return engine
}

func login(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestLogin_ValidCredentialsReturnTokenAndAdmin(t *testing.T) {
	engine := newTestRouter(t)

	rec := login(t, engine, `{"email":"admin@example.com","password":"s3cret-pass"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp transport.AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}
	if resp.Admin.ID == "" || resp.Admin.Email != "admin@example.com" {
		t.Fatalf("unexpected admin payload: %+v", resp.Admin)
	}
}

func TestLogin_WrongCredentialsReturn401(t *testing.T) {
	engine := newTestRouter(t)

	for _, body := range []string{
		`{"email":"admin@example.com","password":"wrong"}`,
		`{"email":"other@example.com","password":"s3cret-pass"}`,
	} {
		rec := login(t, engine, body)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s, got %d", body, rec.Code)
		}
	}
}

func TestLogin_MalformedRequestReturns400(t *testing.T) {
	engine := newTestRouter(t)

	for _, body := range []string{
		`{"email":"not-an-email","password":"x"}`,
		`{"email":"admin@example.com"}`,
		`{`,
	} {
		rec := login(t, engine, body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", body, rec.Code)
		}
	}
}

func TestMe_RequiresAndHonorsAccessToken(t *testing.T) {
	engine := newTestRouter(t)

	rec := login(t, engine, `{"email":"admin@example.com","password":"s3cret-pass"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d", rec.Code)
	}
	var resp transport.AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d: %s", rec.Code, rec.Body.String())
	}
	var admin transport.AdminResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &admin); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if admin.ID != resp.Admin.ID || admin.Email != resp.Admin.Email {
		t.Fatalf("identity mismatch: %+v vs %+v", admin, resp.Admin)
	}

	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with garbage token, got %d", rec.Code)
	}
}
