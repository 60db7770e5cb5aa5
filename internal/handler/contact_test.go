package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/mkessler/folio-go/internal/guard"
	"github.com/mkessler/folio-go/internal/i18n"
	"github.com/mkessler/folio-go/internal/mailer"
)

type failMailer struct{}

func (failMailer) Send(ctx context.Context, msg mailer.Message) error {
	return errors.New("smtp unavailable")
}

func newContactHandler(t *testing.T, m mailer.Mailer) *ContactHandler {
	t.Helper()
	if err := i18n.Init(nil); err != nil {
		t.Fatalf("i18n.Init failed: %v", err)
	}
	if m == nil {
		m = mailer.NewLogMailer(nil)
	}
	g := guard.New(5, time.Hour, nil)
	return NewContactHandler(g, m, nil)
}

func postJSON(h *ContactHandler, addr string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Real-IP", addr)
	rec := httptest.NewRecorder()
	h.Submit(rec, req)
	return rec
}

const validBody = `{"name":"Jane","email":"jane@example.com","subject":"Hello","message":"This is long enough."}`

func TestContactSubmit_Valid(t *testing.T) {
	h := newContactHandler(t, nil)

	rec := postJSON(h, "203.0.113.7", validBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["success"] != true {
		t.Error("success = false, want true")
	}
	if id, _ := resp["id"].(string); id == "" {
		t.Error("response missing submission id")
	}
}

func TestContactSubmit_MissingField(t *testing.T) {
	h := newContactHandler(t, nil)

	rec := postJSON(h, "203.0.113.7", `{"name":"Jane","email":"","subject":"Hi","message":"This is long enough."}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestContactSubmit_SubjectOptional(t *testing.T) {
	h := newContactHandler(t, nil)

	rec := postJSON(h, "203.0.113.7", `{"name":"Jane","email":"jane@example.com","message":"This is long enough."}`)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestContactSubmit_InvalidEmail(t *testing.T) {
	h := newContactHandler(t, nil)

	rec := postJSON(h, "203.0.113.7", `{"name":"Jane","email":"not-an-email","subject":"Hi","message":"This is long enough."}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestContactSubmit_MessageLength(t *testing.T) {
	h := newContactHandler(t, nil)

	// 9 bytes is rejected, 10 is accepted
	rec := postJSON(h, "203.0.113.7", `{"name":"J","email":"j@x.de","subject":"Hi","message":"123456789"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("9-byte message: status = %d, want 400", rec.Code)
	}

	rec = postJSON(h, "203.0.113.7", `{"name":"J","email":"j@x.de","subject":"Hi","message":"1234567890"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("10-byte message: status = %d, want 200", rec.Code)
	}
}

func TestContactSubmit_RateLimit(t *testing.T) {
	h := newContactHandler(t, nil)

	for i := 0; i < 5; i++ {
		if rec := postJSON(h, "203.0.113.7", validBody); rec.Code != http.StatusOK {
			t.Fatalf("submission %d: status = %d, want 200", i+1, rec.Code)
		}
	}

	rec := postJSON(h, "203.0.113.7", validBody)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("6th submission: status = %d, want 429", rec.Code)
	}

	// Another address is unaffected
	if rec := postJSON(h, "198.51.100.9", validBody); rec.Code != http.StatusOK {
		t.Errorf("other address: status = %d, want 200", rec.Code)
	}
}

func TestContactSubmit_InvalidRequestsConsumeQuota(t *testing.T) {
	h := newContactHandler(t, nil)

	// The guard runs before validation, so rejected submissions still count
	for i := 0; i < 5; i++ {
		if rec := postJSON(h, "203.0.113.7", `{"name":"","email":"","subject":"","message":""}`); rec.Code != http.StatusBadRequest {
			t.Fatalf("submission %d: status = %d, want 400", i+1, rec.Code)
		}
	}

	rec := postJSON(h, "203.0.113.7", validBody)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("valid submission after exhausted quota: status = %d, want 429", rec.Code)
	}
}

func TestContactSubmit_MailerFailure(t *testing.T) {
	h := newContactHandler(t, failMailer{})

	rec := postJSON(h, "203.0.113.7", validBody)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["success"] != false {
		t.Error("success = true, want false")
	}
}

func TestContactSubmit_FormEncoded(t *testing.T) {
	h := newContactHandler(t, nil)

	form := url.Values{
		"name":    {"Jane"},
		"email":   {"jane@example.com"},
		"subject": {"Hello"},
		"message": {"This is long enough."},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Real-IP", "203.0.113.7")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
}

func TestContactSubmit_LocalizedError(t *testing.T) {
	h := newContactHandler(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/contact?lang=de", strings.NewReader(`{"name":"","email":"","subject":"","message":""}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Real-IP", "203.0.113.7")
	rec := httptest.NewRecorder()

	// Locale middleware is not mounted here; the handler reads the default.
	h.Submit(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), i18n.T("en", "contact.err_required")) {
		t.Errorf("body missing localized error: %s", rec.Body.String())
	}
}
