package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"leadboard_backend/internal/events"

	"github.com/golang-jwt/jwt/v5"
)

type noopBus struct {
	published []events.Event
}

func (b *noopBus) Publish(_ context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *noopBus) PublishSync(_ context.Context, event events.Event) error {
	b.published = append(b.published, event)
	return nil
}

func (b *noopBus) Subscribe(string, events.Handler) {}

type testAuthConfig struct{}

func (testAuthConfig) GetJWTAccessSecret() string       { return "test-secret" }
func (testAuthConfig) GetAccessTokenTTL() time.Duration { return time.Hour }
func (testAuthConfig) GetAdminEmail() string            { return "admin@example.com" }
func (testAuthConfig) GetAdminPassword() string         { return "s3cret-pass" }

func newTestService(t *testing.T) (*Service, *noopBus) {
	t.Helper()
	bus := &noopBus{}
	svc, err := New(testAuthConfig{}, bus)
	if err != nil {
		t.Fatalf("service init failed: %v", err)
	}
	return svc, bus
}

func TestSignIn_ValidCredentialsIssueAccessToken(t *testing.T) {
	svc, bus := newTestService(t)

	token, admin, err := svc.SignIn(context.Background(), "admin@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	if admin.Email != "admin@example.com" {
		t.Fatalf("unexpected admin email %q", admin.Email)
	}

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}

	claims := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != admin.ID.String() {
		t.Fatalf("expected sub %q, got %v", admin.ID, claims["sub"])
	}
	if claims["type"] != "access" {
		t.Fatalf("expected access token type, got %v", claims["type"])
	}
	if claims["email"] != "admin@example.com" {
		t.Fatalf("unexpected email claim %v", claims["email"])
	}

	if len(bus.published) != 1 {
		t.Fatalf("expected signed-in event, got %d events", len(bus.published))
	}
}

func TestSignIn_EmailComparisonIsCaseInsensitive(t *testing.T) {
	svc, _ := newTestService(t)

	if _, _, err := svc.SignIn(context.Background(), "  ADMIN@Example.COM ", "s3cret-pass"); err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
}

func TestSignIn_WrongCredentialsCollapseIntoOneError(t *testing.T) {
	svc, bus := newTestService(t)
	ctx := context.Background()

	_, _, badEmail := svc.SignIn(ctx, "other@example.com", "s3cret-pass")
	_, _, badPassword := svc.SignIn(ctx, "admin@example.com", "wrong")

	if !errors.Is(badEmail, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", badEmail)
	}
	if !errors.Is(badPassword, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", badPassword)
	}
	if badEmail.Error() != badPassword.Error() {
		t.Fatal("credential failures should be indistinguishable")
	}
	if len(bus.published) != 0 {
		t.Fatalf("expected no events on failed sign-in, got %d", len(bus.published))
	}
}

func TestAdmin_IdentityIsStableAcrossSignIns(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, first, err := svc.SignIn(ctx, "admin@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	_, second, err := svc.SignIn(ctx, "admin@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("admin id changed between sign-ins: %s vs %s", first.ID, second.ID)
	}
	if first.ID != svc.Admin().ID {
		t.Fatal("Admin() does not match sign-in identity")
	}
}
