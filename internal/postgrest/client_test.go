package postgrest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func testClient(t *testing.T, handler http.HandlerFunc, retry RetryConfig) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{URL: srv.URL, APIKey: "test-key", Retry: retry})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func TestNewValidation(t *testing.T) {
	if _, err := New(Config{APIKey: "k"}); err == nil {
		t.Error("missing URL accepted")
	}
	if _, err := New(Config{URL: "http://localhost"}); err == nil {
		t.Error("missing APIKey accepted")
	}
}

func TestQueryRequest(t *testing.T) {
	var gotPath, gotQuery, gotAPIKey, gotAuth, gotAccept string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"id":"1"}`))
	}, RetryConfig{})

	resp, err := client.From("products").
		Select("*").
		Eq("id", "1").
		Eq("is_active", "true").
		Single().
		Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	if gotPath != "/rest/v1/products" {
		t.Errorf("path = %q", gotPath)
	}
	for _, fragment := range []string{"select=%2A", "id=eq.1", "is_active=eq.true"} {
		if !containsParam(gotQuery, fragment) {
			t.Errorf("query %q missing %q", gotQuery, fragment)
		}
	}
	if gotAPIKey != "test-key" {
		t.Errorf("apikey header = %q", gotAPIKey)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("authorization header = %q", gotAuth)
	}
	if gotAccept != "application/vnd.pgrst.object+json" {
		t.Errorf("accept header = %q", gotAccept)
	}
}

func TestQueryOrderAndLimit(t *testing.T) {
	var gotQuery string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}, RetryConfig{})

	_, err := client.From("web_gen_projects").
		Eq("user_id", "u1").
		Order("last_edited_at", false).
		Limit(5).
		Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !containsParam(gotQuery, "order=last_edited_at.desc") {
		t.Errorf("query %q missing order", gotQuery)
	}
	if !containsParam(gotQuery, "limit=5") {
		t.Errorf("query %q missing limit", gotQuery)
	}
}

func TestInsertRequest(t *testing.T) {
	var gotMethod, gotPrefer, gotContentType string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPrefer = r.Header.Get("Prefer")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"id":"1"}]`))
	}, RetryConfig{})

	resp, err := client.From("products").Insert(context.Background(), map[string]string{"id": "1"})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("method = %q", gotMethod)
	}
	if gotPrefer != "return=representation" {
		t.Errorf("prefer = %q", gotPrefer)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q", gotContentType)
	}
}

func TestRetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[]`))
	}, RetryConfig{
		MaxRetries:        3,
		InitialBackoff:    time.Millisecond,
		MaxBackoff:        5 * time.Millisecond,
		BackoffMultiplier: 2.0,
	})

	resp, err := client.From("products").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("got %d calls, want 3", got)
	}
}

func TestRetryExhaustionReturnsLastStatus(t *testing.T) {
	var calls atomic.Int32
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, RetryConfig{
		MaxRetries:        2,
		InitialBackoff:    time.Millisecond,
		MaxBackoff:        5 * time.Millisecond,
		BackoffMultiplier: 2.0,
	})

	// The final retryable response is surfaced rather than swallowed.
	resp, err := client.From("products").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("got %d calls, want 3", got)
	}
}

func TestNoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}, RetryConfig{MaxRetries: 3, InitialBackoff: time.Millisecond, BackoffMultiplier: 2.0})

	resp, err := client.From("products").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("got %d calls, want 1", got)
	}
}

func TestResponseErr(t *testing.T) {
	ok := &Response{StatusCode: http.StatusOK}
	if err := ok.Err(); err != nil {
		t.Errorf("Err on 200 = %v", err)
	}

	withMessage := &Response{StatusCode: http.StatusBadRequest, Body: []byte(`{"message":"bad filter"}`)}
	if err := withMessage.Err(); err == nil || err.Error() != "postgrest error: bad filter" {
		t.Errorf("Err = %v", err)
	}

	opaque := &Response{StatusCode: http.StatusBadGateway, Body: []byte("html")}
	if err := opaque.Err(); err == nil {
		t.Error("Err on 502 = nil")
	}
}

func containsParam(query, param string) bool {
	for _, part := range strings.Split(query, "&") {
		if part == param {
			return true
		}
	}
	return false
}
