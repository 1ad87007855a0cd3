package middleware

import (
	"net/http"
	"testing"
)

var testAllowList = []string{"https://example.com", "https://www.example.com"}

func TestOriginGate_Headers(t *testing.T) {
	g := NewOriginGate(testAllowList)

	allowed := g.Headers("https://example.com")
	if allowed["Access-Control-Allow-Origin"] != "https://example.com" {
		t.Errorf("expected origin echoed, got %q", allowed["Access-Control-Allow-Origin"])
	}
	if allowed["Access-Control-Allow-Headers"] != "Content-Type" {
		t.Errorf("unexpected allow-headers %q", allowed["Access-Control-Allow-Headers"])
	}
	if allowed["Access-Control-Allow-Methods"] != "POST, OPTIONS" {
		t.Errorf("unexpected allow-methods %q", allowed["Access-Control-Allow-Methods"])
	}

	denied := g.Headers("https://evil.example")
	if v, ok := denied["Access-Control-Allow-Origin"]; !ok || v != "" {
		t.Errorf("expected empty allow-origin for unknown origin, got %q (present=%v)", v, ok)
	}
}

// Preflight is answered for every origin, including ones that would be
// rejected on POST. This is intentional; browsers still block the POST
// because the allow-origin header is empty.
func TestOriginGate_PreflightIgnoresAllowList(t *testing.T) {
	g := NewOriginGate(testAllowList)

	for _, origin := range []string{"https://example.com", "https://evil.example", ""} {
		headers, resp := g.Check(http.MethodOptions, origin, true)
		if resp == nil {
			t.Fatalf("expected a terminal response for OPTIONS from %q", origin)
		}
		if resp.StatusCode != http.StatusNoContent || resp.Body != "" {
			t.Errorf("expected 204 with empty body for %q, got %d %q", origin, resp.StatusCode, resp.Body)
		}
		if resp.Headers["Access-Control-Allow-Origin"] != headers["Access-Control-Allow-Origin"] {
			t.Errorf("expected response to carry the computed headers")
		}
	}
}

func TestOriginGate_ForbiddenOrigin(t *testing.T) {
	g := NewOriginGate(testAllowList)

	methods := []string{http.MethodPost, http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodHead}
	for _, method := range methods {
		_, resp := g.Check(method, "https://evil.example", true)
		if resp == nil || resp.StatusCode != http.StatusForbidden {
			t.Fatalf("expected 403 for %s from disallowed origin, got %+v", method, resp)
		}
		if resp.Body != `{"error":"Access denied. Origin not allowed."}` {
			t.Errorf("unexpected JSON body %q", resp.Body)
		}
	}

	_, resp := g.Check(http.MethodPost, "", false)
	if resp == nil || resp.StatusCode != http.StatusForbidden || resp.Body != "" {
		t.Errorf("expected 403 with empty body for form request without origin, got %+v", resp)
	}
}

func TestOriginGate_MethodNotAllowed(t *testing.T) {
	g := NewOriginGate(testAllowList)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodHead} {
		_, resp := g.Check(method, "https://example.com", true)
		if resp == nil || resp.StatusCode != http.StatusMethodNotAllowed {
			t.Fatalf("expected 405 for %s, got %+v", method, resp)
		}
		if resp.Body != `{"error":"Method Not Allowed"}` {
			t.Errorf("unexpected JSON body %q", resp.Body)
		}

		_, resp = g.Check(method, "https://example.com", false)
		if resp == nil || resp.StatusCode != http.StatusMethodNotAllowed || resp.Body != "" {
			t.Errorf("expected 405 with empty body in form mode, got %+v", resp)
		}
	}
}

func TestOriginGate_Pass(t *testing.T) {
	g := NewOriginGate(testAllowList)

	headers, resp := g.Check(http.MethodPost, "https://www.example.com", false)
	if resp != nil {
		t.Fatalf("expected POST from allowed origin to pass, got %+v", resp)
	}
	if headers["Access-Control-Allow-Origin"] != "https://www.example.com" {
		t.Errorf("expected headers for later stages, got %v", headers)
	}
}

func TestHeader_CaseInsensitive(t *testing.T) {
	headers := map[string]string{"Content-Type": "application/json", "origin": "https://example.com"}

	if got := Header(headers, "content-type"); got != "application/json" {
		t.Errorf("expected application/json, got %q", got)
	}
	if got := Header(headers, "Origin"); got != "https://example.com" {
		t.Errorf("expected origin, got %q", got)
	}
	if got := Header(headers, "x-missing"); got != "" {
		t.Errorf("expected empty value, got %q", got)
	}
}

func TestIsJSON(t *testing.T) {
	tests := map[string]bool{
		"application/json":                  true,
		"application/json; charset=utf-8":   true,
		"Application/JSON":                  true,
		"application/x-www-form-urlencoded": false,
		"multipart/form-data; boundary=x":   false,
		"text/plain":                        false,
		"":                                  false,
	}
	for contentType, want := range tests {
		if got := IsJSON(contentType); got != want {
			t.Errorf("IsJSON(%q) = %v, want %v", contentType, got, want)
		}
	}
}
