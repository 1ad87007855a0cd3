package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hkbertoson/form-relay/internal/config"
	"github.com/hkbertoson/form-relay/internal/handler"
	"github.com/hkbertoson/form-relay/internal/lib/email"
	"github.com/hkbertoson/form-relay/internal/middleware"
	"github.com/hkbertoson/form-relay/internal/server"
	"github.com/hkbertoson/form-relay/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const testOrigin = "https://example.com"

type recordingSender struct {
	sent []email.Message
}

func (s *recordingSender) Send(_ context.Context, msg email.Message) error {
	s.sent = append(s.sent, msg)
	return nil
}

func newTestRouter(t *testing.T) (*echo.Echo, *recordingSender) {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Email = "sender@example.com"
	cfg.Pass = "secret"
	cfg.AllowedOrigins = testOrigin
	cfg.AllowList = config.ParseOrigins(cfg.AllowedOrigins)

	logger := zerolog.Nop()
	sender := &recordingSender{}
	srv := server.New(cfg, &logger)
	relay := handler.NewRelayHandler(cfg, logger, service.NewMailDispatcher(cfg, sender))

	return NewRouter(srv, handler.NewHandlers(srv, relay)), sender
}

func serve(r *echo.Echo, method, path, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Origin", testOrigin)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestFunctionRoute_JSONSubmission(t *testing.T) {
	r, sender := newTestRouter(t)

	rec := serve(r, http.MethodPost, FunctionPath, "application/json",
		`{"email":"a@b.com","subject":"hi","message":"hello"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body %q: %v", rec.Body.String(), err)
	}
	if body["message"] != "Email sent successfully" {
		t.Errorf("unexpected body %v", body)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != testOrigin {
		t.Errorf("expected allow-origin %q, got %q", testOrigin, got)
	}
	if rec.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("expected a request id header")
	}
	if len(sender.sent) != 1 || sender.sent[0].To != "a@b.com" {
		t.Errorf("expected one message to a@b.com, got %+v", sender.sent)
	}
}

func TestFunctionRoute_FormSubmissionRedirects(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := serve(r, http.MethodPost, FunctionPath, "application/x-www-form-urlencoded",
		"email=a@b.com&subject=hi&message=hello")

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != testOrigin+"/#success" {
		t.Errorf("unexpected location %q", got)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}
}

func TestFunctionRoute_MethodEnforcedByRelay(t *testing.T) {
	r, sender := newTestRouter(t)

	preflight := serve(r, http.MethodOptions, FunctionPath, "", "")
	if preflight.Code != http.StatusNoContent {
		t.Errorf("expected 204 for OPTIONS, got %d", preflight.Code)
	}

	get := serve(r, http.MethodGet, FunctionPath, "application/json", "")
	if get.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405 for GET, got %d", get.Code)
	}
	if got := strings.TrimSpace(get.Body.String()); got != `{"error":"Method Not Allowed"}` {
		t.Errorf("unexpected body %s", got)
	}

	if len(sender.sent) != 0 {
		t.Errorf("expected no mail, got %d", len(sender.sent))
	}
}

func TestStatusRoute(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := serve(r, http.MethodGet, "/status", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Status string `json:"status"`
		Checks struct {
			Mail struct {
				Transport string `json:"transport"`
				Host      string `json:"host"`
				Port      int    `json:"port"`
			} `json:"mail"`
			Origins struct {
				Allowed int `json:"allowed"`
			} `json:"origins"`
		} `json:"checks"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Status != "healthy" {
		t.Errorf("expected healthy, got %q", body.Status)
	}
	if body.Checks.Mail.Transport != "smtp" {
		t.Errorf("expected smtp transport, got %q", body.Checks.Mail.Transport)
	}
	if body.Checks.Mail.Host != "smtp.gmail.com" || body.Checks.Mail.Port != 465 {
		t.Errorf("expected smtp.gmail.com:465 from the gmail service, got %s:%d", body.Checks.Mail.Host, body.Checks.Mail.Port)
	}
	if body.Checks.Origins.Allowed != 1 {
		t.Errorf("expected 1 allowed origin, got %d", body.Checks.Origins.Allowed)
	}
}

func TestUnknownRoute(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := serve(r, http.MethodGet, "/nope", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"Not Found"}` {
		t.Errorf("unexpected body %s", got)
	}
}
