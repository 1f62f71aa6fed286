package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// mockServer creates a test HTTP server for mocking API responses.
func mockServer(handler http.HandlerFunc) *httptest.Server {
	return httptest.NewServer(handler)
}

// testClient returns a client pointed at the mock server.
func testClient(server *httptest.Server) *Client {
	client := NewClient(server.URL)
	return client
}

func TestNewClient(t *testing.T) {
	client := NewClient("")
	if client.baseURL != DefaultBaseURL {
		t.Errorf("default base URL = %q, want %q", client.baseURL, DefaultBaseURL)
	}

	client = NewClient("http://example.test:9000")
	if client.baseURL != "http://example.test:9000" {
		t.Errorf("unexpected base URL: %s", client.baseURL)
	}
}

func TestHealth(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("expected path /health, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(HealthStatus{Status: "ok"})
	})
	defer server.Close()

	status, err := testClient(server).Health()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Status != "ok" {
		t.Errorf("status = %q, want ok", status.Status)
	}
}

func TestAPIErrorFromStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		check      func(*APIError) bool
	}{
		{"not found", http.StatusNotFound, (*APIError).IsNotFound},
		{"bad request", http.StatusBadRequest, (*APIError).IsBadRequest},
		{"conflict", http.StatusConflict, (*APIError).IsConflict},
		{"service unavailable", http.StatusServiceUnavailable, (*APIError).IsServiceUnavailable},
		{"server error", http.StatusInternalServerError, (*APIError).IsServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := mockServer(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte("nope"))
			})
			defer server.Close()

			_, err := testClient(server).GetBoards()
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError in chain, got %T: %v", err, err)
			}
			if apiErr.StatusCode != tt.statusCode {
				t.Errorf("status = %d, want %d", apiErr.StatusCode, tt.statusCode)
			}
			if !tt.check(apiErr) {
				t.Errorf("predicate for %s returned false", tt.name)
			}
		})
	}
}

func TestPatchSetsContentType(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("expected PATCH, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		w.WriteHeader(http.StatusOK)
	})
	defer server.Close()

	if err := testClient(server).Patch("/ideas/1/position", PositionUpdate{X: 1, Y: 2}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
