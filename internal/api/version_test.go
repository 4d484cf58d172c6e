package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVersionCurrent(t *testing.T) {
	tests := []struct {
		name         string
		statusCode   int
		responseBody string
		expectError  bool
		expected     string
	}{
		{
			name:         "successful unwrap",
			statusCode:   http.StatusOK,
			responseBody: `{"version": {"release": "1.0.0"}}`,
			expected:     "1.0.0",
		},
		{
			name:         "missing envelope key",
			statusCode:   http.StatusOK,
			responseBody: `{"release": "1.0.0"}`,
			expectError:  true,
		},
		{
			name:         "server error",
			statusCode:   http.StatusInternalServerError,
			responseBody: `{"error": "internal"}`,
			expectError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("Expected GET, got %s", r.Method)
				}
				if r.URL.Path != "/version/current.json" {
					t.Errorf("Expected path /version/current.json, got %s", r.URL.Path)
				}
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.responseBody))
			}))
			defer server.Close()

			client := newTestClient(server.URL, "test-key")
			release, err := client.Version().Current(context.Background())

			if tt.expectError && err == nil {
				t.Error("Expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if !tt.expectError && release != tt.expected {
				t.Errorf("Expected release %q, got %q", tt.expected, release)
			}
		})
	}
}

func TestVersionCurrentMissingKeyIsDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-key")
	_, err := client.Version().Current(context.Background())
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("Expected *DecodeError, got %T: %v", err, err)
	}
}

func TestVersionSupported(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/version/supported.json" {
			t.Errorf("Expected path /version/supported.json, got %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"supported": [{"release": "1.0.0"}, {"release": "0.9.5"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-key")
	versions, err := client.Version().Supported(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(versions) != 2 {
		t.Fatalf("Expected 2 versions, got %d", len(versions))
	}
	if versions[0].Release != "1.0.0" {
		t.Errorf("Expected first release 1.0.0, got %s", versions[0].Release)
	}
}
