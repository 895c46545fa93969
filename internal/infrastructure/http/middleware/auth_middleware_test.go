package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/transcript-assistant/pkg/jwt"
)

func newProtectedServer(manager *jwt.Manager, scope string) *echo.Echo {
	e := echo.New()
	g := e.Group("", EchoAuth(manager))
	g.GET("/protected", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get(ClientIDKey).(string))
	}, RequireScope(scope))
	return e
}

func doGet(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestEchoAuth(t *testing.T) {
	manager := jwt.NewManager("s3cret", "", time.Hour)
	e := newProtectedServer(manager, jwt.ScopeTranscriptsRead)

	token, err := manager.GenerateServiceToken("worker", nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	rec := doGet(e, "Bearer "+token)
	if rec.Code != http.StatusOK || rec.Body.String() != "worker" {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}

	rec = doGet(e, "")
	if rec.Code != http.StatusUnauthorized || !strings.Contains(rec.Body.String(), "UNAUTHENTICATED") {
		t.Fatalf("expected 401 UNAUTHENTICATED, got %d %s", rec.Code, rec.Body.String())
	}

	rec = doGet(e, "Bearer garbage")
	if rec.Code != http.StatusUnauthorized || !strings.Contains(rec.Body.String(), "AUTH_INVALID_TOKEN") {
		t.Fatalf("expected 401 AUTH_INVALID_TOKEN, got %d %s", rec.Code, rec.Body.String())
	}

	expired, _ := jwt.NewManager("s3cret", "", -time.Minute).GenerateServiceToken("worker", nil)
	rec = doGet(e, "Bearer "+expired)
	if rec.Code != http.StatusUnauthorized || !strings.Contains(rec.Body.String(), "AUTH_TOKEN_EXPIRED") {
		t.Fatalf("expected 401 AUTH_TOKEN_EXPIRED, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestRequireScope(t *testing.T) {
	manager := jwt.NewManager("s3cret", "", time.Hour)
	e := newProtectedServer(manager, jwt.ScopeAnalysesWrite)

	token, _ := manager.GenerateServiceToken("reader", []string{jwt.ScopeTranscriptsRead})
	rec := doGet(e, "Bearer "+token)
	if rec.Code != http.StatusForbidden || !strings.Contains(rec.Body.String(), "FORBIDDEN") {
		t.Fatalf("expected 403, got %d %s", rec.Code, rec.Body.String())
	}
}
