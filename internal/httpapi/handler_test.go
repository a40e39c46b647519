package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ventaroai/storefront/internal/app"
	"github.com/ventaroai/storefront/internal/config"
	"github.com/ventaroai/storefront/internal/notify"
	"github.com/ventaroai/storefront/internal/storage/memory"
)

const testAdmin = "chris.t@ventarosales.com"

type fakeSender struct {
	sent []notify.Envelope
	err  error
}

func (s *fakeSender) Send(_ context.Context, env notify.Envelope) error {
	s.sent = append(s.sent, env)
	return s.err
}

func newTestHandler(t *testing.T) (http.Handler, *fakeSender, *memory.Store) {
	t.Helper()

	store := memory.New()
	sender := &fakeSender{}
	application, err := app.New(
		&config.Config{AdminEmail: testAdmin},
		app.Stores{Products: store, Projects: store},
		sender,
		nil,
	)
	if err != nil {
		t.Fatalf("build application: %v", err)
	}
	return NewHandler(application, nil), sender, store
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestCreateBooking(t *testing.T) {
	h, sender, _ := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/coaching-booking", `{
		"userEmail": "client@example.com",
		"userName": "Jordan",
		"selectedDate": "2025-03-10",
		"selectedTime": "14:00",
		"timezone": "EST",
		"sessionType": "AI Strategy Session"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
	details, ok := body["bookingDetails"].(map[string]any)
	if !ok {
		t.Fatalf("missing bookingDetails in %v", body)
	}
	if details["dateTime"] != "Monday, March 10, 2025 at 2:00 PM EST" {
		t.Errorf("dateTime = %v", details["dateTime"])
	}

	if len(sender.sent) != 2 {
		t.Fatalf("got %d sends, want 2", len(sender.sent))
	}
	if sender.sent[0].To != "client@example.com" {
		t.Errorf("first send to %q, want submitter", sender.sent[0].To)
	}
	if sender.sent[1].To != testAdmin {
		t.Errorf("second send to %q, want operator", sender.sent[1].To)
	}
}

func TestCreateBookingMissingFields(t *testing.T) {
	h, sender, _ := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/coaching-booking", `{"userEmail": "client@example.com"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if body := decodeBody(t, rec); body["error"] != "Missing required fields" {
		t.Errorf("error = %v", body["error"])
	}
	if len(sender.sent) != 0 {
		t.Errorf("validation failure triggered %d sends", len(sender.sent))
	}
}

func TestCreateBookingInvalidDate(t *testing.T) {
	h, sender, _ := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/coaching-booking", `{
		"userEmail": "client@example.com",
		"userName": "Jordan",
		"selectedDate": "next tuesday",
		"selectedTime": "14:00",
		"timezone": "EST",
		"sessionType": "AI Strategy Session"
	}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if body := decodeBody(t, rec); body["error"] != "Invalid date or time" {
		t.Errorf("error = %v", body["error"])
	}
	if len(sender.sent) != 0 {
		t.Errorf("invalid date triggered %d sends", len(sender.sent))
	}
}

func TestCreateBookingSendFailureStillSucceeds(t *testing.T) {
	h, sender, _ := newTestHandler(t)
	sender.err = errors.New("sendgrid down")

	rec := do(t, h, http.MethodPost, "/api/coaching-booking", `{
		"userEmail": "client@example.com",
		"userName": "Jordan",
		"selectedDate": "2025-03-10",
		"selectedTime": "14:00",
		"timezone": "EST",
		"sessionType": "AI Strategy Session"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if len(sender.sent) != 2 {
		t.Errorf("got %d send attempts, want 2", len(sender.sent))
	}
}

func TestCreateBookingMalformedBody(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/coaching-booking", `{not json`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["success"] != false {
		t.Errorf("success = %v", body["success"])
	}
}

func TestAvailableSlots(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/api/coaching-booking?date=2025-03-10", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	slots, ok := body["availableSlots"].([]any)
	if !ok || len(slots) != 6 {
		t.Fatalf("availableSlots = %v", body["availableSlots"])
	}
	if slots[0] != "09:00" || slots[5] != "16:00" {
		t.Errorf("slot bounds = %v, %v", slots[0], slots[5])
	}
	if body["date"] != "2025-03-10" {
		t.Errorf("date = %v", body["date"])
	}
}

func TestAvailableSlotsMissingDate(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/api/coaching-booking", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestSubmitIntake(t *testing.T) {
	h, sender, _ := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/coaching-intake", `{
		"userEmail": "founder@example.com",
		"projectType": "E-commerce site",
		"timeline": "2-4 weeks",
		"specificChallenges": "Scaling checkout",
		"preferredTimes": "Weekday mornings",
		"timezone": "AEST"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if body := decodeBody(t, rec); body["message"] != "Coaching intake form submitted successfully" {
		t.Errorf("message = %v", body["message"])
	}
	if len(sender.sent) != 2 {
		t.Errorf("got %d sends, want 2", len(sender.sent))
	}
}

func TestSubmitContactAndNewsletter(t *testing.T) {
	h, sender, _ := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/contact", `{
		"name": "Sam",
		"email": "sam@example.com",
		"message": "Do you offer team licenses?"
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("contact status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodPost, "/api/newsletter", `{"email": "sam@example.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("newsletter status = %d, body = %s", rec.Code, rec.Body.String())
	}

	if len(sender.sent) != 4 {
		t.Errorf("got %d sends, want 4", len(sender.sent))
	}
}

func TestGetProductFallback(t *testing.T) {
	// The memory store is empty, so every lookup routes to the fallback
	// catalog.
	h, _, _ := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/api/products/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	p, ok := body["product"].(map[string]any)
	if !ok {
		t.Fatalf("missing product in %v", body)
	}
	if p["name"] != "AI Tools Mastery Guide 2025" {
		t.Errorf("name = %v", p["name"])
	}
	if p["productType"] != "digital" {
		t.Errorf("productType = %v", p["productType"])
	}
}

func TestGetProductNotFound(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/api/products/999", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestListProductsFallback(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/api/products", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	products, ok := body["products"].([]any)
	if !ok || len(products) != 3 {
		t.Fatalf("products = %v", body["products"])
	}
}

func TestProjectActionDispatch(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/web-gen", `{
		"action": "create",
		"project": {"name": "My Site", "user_id": "user-1"}
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body.String())
	}
	created, ok := decodeBody(t, rec)["project"].(map[string]any)
	if !ok {
		t.Fatalf("missing project in %s", rec.Body.String())
	}
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatal("created project has no id")
	}

	rec = do(t, h, http.MethodGet, "/api/web-gen?userId=user-1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, body = %s", rec.Code, rec.Body.String())
	}
	projects, ok := decodeBody(t, rec)["projects"].([]any)
	if !ok || len(projects) != 1 {
		t.Fatalf("projects = %v", projects)
	}

	rec = do(t, h, http.MethodPost, "/api/web-gen", `{"action": "delete", "projectId": "`+id+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodGet, "/api/web-gen?userId=user-1", "")
	projects, _ = decodeBody(t, rec)["projects"].([]any)
	if len(projects) != 0 {
		t.Errorf("projects after delete = %v", projects)
	}
}

func TestProjectActionDispatchErrors(t *testing.T) {
	h, _, _ := newTestHandler(t)

	cases := []struct {
		name string
		body string
		code int
		err  string
	}{
		{"unknown action", `{"action": "publish"}`, http.StatusBadRequest, "unknown action"},
		{"malformed body", `{not json`, http.StatusBadRequest, "invalid request payload"},
		{"create without name", `{"action": "create", "project": {"user_id": "u"}}`, http.StatusBadRequest, "project name is required"},
		{"delete unknown id", `{"action": "delete", "projectId": "nope"}`, http.StatusNotFound, "project not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/web-gen", tc.body)
			if rec.Code != tc.code {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			if body := decodeBody(t, rec); body["error"] != tc.err {
				t.Errorf("error = %v, want %q", body["error"], tc.err)
			}
		})
	}
}

func TestListProjectsRequiresUser(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/api/web-gen", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "OK") {
		t.Errorf("body = %q", rec.Body.String())
	}
}
