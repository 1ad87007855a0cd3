package response

import (
	"net/http"
	"testing"

	"github.com/hkbertoson/form-relay/internal/errs"
)

func TestRedirect_DoesNotMutateHeaders(t *testing.T) {
	headers := Headers{"Access-Control-Allow-Origin": "https://example.com"}

	resp := Redirect(headers, "https://example.com/#success")

	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("expected 303, got %d", resp.StatusCode)
	}
	if resp.Headers["Location"] != "https://example.com/#success" {
		t.Errorf("unexpected Location %q", resp.Headers["Location"])
	}
	if resp.Headers["Access-Control-Allow-Origin"] != "https://example.com" {
		t.Error("expected CORS header to be carried over")
	}
	if _, ok := headers["Location"]; ok {
		t.Error("expected caller headers to stay untouched")
	}
	if resp.Body != "" {
		t.Errorf("expected empty body, got %q", resp.Body)
	}
}

func TestError_JSONAndForm(t *testing.T) {
	err := errs.NewForbiddenError(errs.MessageOriginNotAllowed)

	asJSON := Error(err, Headers{}, true)
	if asJSON.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403, got %d", asJSON.StatusCode)
	}
	if asJSON.Body != `{"error":"Access denied. Origin not allowed."}` {
		t.Errorf("unexpected body %q", asJSON.Body)
	}

	asForm := Error(err, Headers{}, false)
	if asForm.StatusCode != http.StatusForbidden || asForm.Body != "" {
		t.Errorf("expected 403 with empty body, got %d %q", asForm.StatusCode, asForm.Body)
	}
}

func TestSent(t *testing.T) {
	resp := Sent(nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if resp.Body != `{"message":"Email sent successfully"}` {
		t.Errorf("unexpected body %q", resp.Body)
	}
	if resp.Headers == nil {
		t.Error("expected a non-nil header map")
	}
}
