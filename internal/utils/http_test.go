package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type echoPayload struct {
	Message string `json:"message"`
}

func TestDoPostSync(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("content type = %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("authorization = %q", got)
		}

		var received map[string]string
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("body not JSON: %v", err)
		}
		_ = json.NewEncoder(w).Encode(echoPayload{Message: received["hello"]})
	}))
	defer server.Close()

	httpResponse, payload, err := DoPostSync[echoPayload](context.Background(), server.Client(), server.URL, "secret", map[string]string{"hello": "world"})
	if err != nil {
		t.Fatalf("DoPostSync() failed: %v", err)
	}
	if httpResponse.StatusCode != http.StatusOK {
		t.Errorf("status = %d", httpResponse.StatusCode)
	}
	if payload == nil || payload.Message != "world" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestDoPostSync_NoAPIKeyOmitsAuthHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("authorization = %q, want no header", got)
		}
		_, _ = w.Write([]byte(`{"message": "ok"}`))
	}))
	defer server.Close()

	if _, _, err := DoPostSync[echoPayload](context.Background(), nil, server.URL, "", struct{}{}); err != nil {
		t.Fatalf("DoPostSync() failed: %v", err)
	}
}

func TestDoPostSync_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	httpResponse, payload, err := DoPostSync[echoPayload](context.Background(), server.Client(), server.URL, "k", struct{}{})
	if err == nil {
		t.Fatal("DoPostSync() succeeded on a 502")
	}
	if payload != nil {
		t.Errorf("payload = %+v, want nil on error", payload)
	}
	if httpResponse == nil || httpResponse.StatusCode != http.StatusBadGateway {
		t.Error("http response should still be returned for inspection")
	}
	if !strings.Contains(err.Error(), "upstream exploded") {
		t.Errorf("error = %v, want the response body included", err)
	}
}

func TestDoPostSync_MalformedResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer server.Close()

	_, _, err := DoPostSync[echoPayload](context.Background(), server.Client(), server.URL, "k", struct{}{})
	if err == nil {
		t.Fatal("DoPostSync() succeeded on a non-JSON body")
	}
	if !strings.Contains(err.Error(), "Response preview") {
		t.Errorf("error = %v, want a response preview", err)
	}
}

func TestDoPostSync_ContextCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, err := DoPostSync[echoPayload](ctx, server.Client(), server.URL, "k", struct{}{})
	if err == nil {
		t.Fatal("DoPostSync() succeeded past its deadline")
	}
}

func TestDoPostSync_UnmarshalableBody(t *testing.T) {
	if _, _, err := DoPostSync[echoPayload](context.Background(), nil, "http://unused", "", map[string]any{"ch": make(chan int)}); err == nil {
		t.Error("DoPostSync() succeeded with an unmarshalable request body")
	}
}
