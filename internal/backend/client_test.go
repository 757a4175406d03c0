package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mastersolis/site-gateway/internal/core/domain"
)

// memoryStore is an in-memory session store for tests.
type memoryStore struct {
	mu    sync.Mutex
	token string
	err   error
}

func (s *memoryStore) Get(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.err
}

func (s *memoryStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.token = token
	return nil
}

func (s *memoryStore) IsActive(ctx context.Context) bool {
	t, err := s.Get(ctx)
	return err == nil && t != ""
}

func TestClient_RequestHeaders_WithSession(t *testing.T) {
	var gotAuth, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, &memoryStore{token: "tok-123"}, zerolog.Nop())
	if _, err := client.Get(context.Background(), "/api/blog"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Fatalf("expected json accept header, got %q", gotAccept)
	}
}

func TestClient_RequestHeaders_WithoutSession(t *testing.T) {
	var authPresent bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, authPresent = r.Header["Authorization"]
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, &memoryStore{}, zerolog.Nop())
	if _, err := client.Get(context.Background(), "/"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if authPresent {
		t.Fatal("authorization header must be absent without a stored token")
	}
}

func TestClient_TrailingSlashBaseURL(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", &memoryStore{}, zerolog.Nop())
	if _, err := client.Get(context.Background(), "/api/jobs"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/jobs" {
		t.Fatalf("expected single-slash path, got %q", gotPath)
	}
}

func TestClient_ContentTypeDispatch(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		body        string
		wantJSON    bool
	}{
		{"declared json", "application/json", `{"ok":true}`, true},
		{"declared json with charset", "application/json; charset=utf-8", `[]`, true},
		{"plain text", "text/plain", "hello", false},
		{"json-shaped text stays text", "text/plain", `{"looks":"like json"}`, false},
		{"no declaration", "", `{"still":"text"}`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tc.contentType != "" {
					w.Header().Set("Content-Type", tc.contentType)
				} else {
					// Suppress net/http content sniffing.
					w.Header()["Content-Type"] = nil
				}
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, &memoryStore{}, zerolog.Nop())
			payload, err := client.Get(context.Background(), "/")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if payload.IsJSON() != tc.wantJSON {
				t.Fatalf("IsJSON() = %v, want %v", payload.IsJSON(), tc.wantJSON)
			}
			if !tc.wantJSON && payload.Text != tc.body {
				t.Fatalf("text body = %q, want %q", payload.Text, tc.body)
			}
		})
	}
}

func TestClient_DeclaredJSONMustParse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, &memoryStore{}, zerolog.Nop())
	if _, err := client.Get(context.Background(), "/"); err == nil {
		t.Fatal("expected decode error for malformed declared-JSON body")
	}
}

func TestClient_FailureMessagePrecedence(t *testing.T) {
	cases := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantMsg     string
	}{
		{"json error field", 400, "application/json", `{"error":"bad request body"}`, "bad request body"},
		{"json without error field", 500, "application/json", `{"detail":"nope"}`, domain.GenericFailureMessage},
		{"json empty error field", 422, "application/json", `{"error":""}`, domain.GenericFailureMessage},
		{"text body", 503, "text/html", "<h1>oops</h1>", domain.GenericFailureMessage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tc.contentType)
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, &memoryStore{}, zerolog.Nop())
			_, err := client.Get(context.Background(), "/")

			var apiErr *domain.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %v", err)
			}
			if apiErr.StatusCode != tc.status {
				t.Fatalf("status = %d, want %d", apiErr.StatusCode, tc.status)
			}
			if apiErr.Message != tc.wantMsg {
				t.Fatalf("message = %q, want %q", apiErr.Message, tc.wantMsg)
			}
		})
	}
}

func TestClient_UnreachableBackend(t *testing.T) {
	// Reserve a port, then close it so the dial fails.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	addr := srv.URL
	srv.Close()

	client := NewClient(addr, &memoryStore{}, zerolog.Nop())
	_, err := client.Get(context.Background(), "/")

	var cerr *domain.ConnectivityError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConnectivityError, got %v", err)
	}
	if cerr.CORS {
		t.Fatal("a refused connection must not classify as CORS")
	}
}

func TestClassifyTransport_CORSSubstring(t *testing.T) {
	cases := []struct {
		msg  string
		cors bool
	}{
		{"blocked by CORS policy", true},
		{"CORS", true},
		{"connection refused", false},
		{"cors lowercase does not match", false},
	}
	for _, tc := range cases {
		cerr := classifyTransport(errors.New(tc.msg))
		if cerr.CORS != tc.cors {
			t.Fatalf("classifyTransport(%q).CORS = %v, want %v", tc.msg, cerr.CORS, tc.cors)
		}
	}
}

func TestConnectivityError_Messages(t *testing.T) {
	cors := &domain.ConnectivityError{Err: errors.New("blocked by CORS policy"), CORS: true}
	if cors.Error() != domain.CORSGuidance {
		t.Fatalf("CORS failure must surface the guidance message, got %q", cors.Error())
	}

	plain := &domain.ConnectivityError{Err: errors.New("dial tcp: connection refused")}
	if plain.Error() == domain.CORSGuidance {
		t.Fatal("non-CORS failure must not surface CORS guidance")
	}
}
