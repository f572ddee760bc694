package relay

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAnalyzePassesBodyThrough(t *testing.T) {
	analyzerBody := `{"word_count":3,"line_count":2,"summary":"hi","keywords":["a","b"]}`

	var gotContent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/analyze" {
			t.Errorf("expected /analyze, got %s", r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		var req struct {
			Content string `json:"content"`
		}
		if err := json.Unmarshal(raw, &req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		gotContent = req.Content

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, analyzerBody)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	result, err := client.Analyze(context.Background(), "hello world\nfoo")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if string(result) != analyzerBody {
		t.Fatalf("expected body %s, got %s", analyzerBody, result)
	}
	if gotContent != "hello world\nfoo" {
		t.Fatalf("expected content field, got %q", gotContent)
	}
}

func TestAnalyzeNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, `{"error":"upstream down"}`)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	result, err := client.Analyze(context.Background(), "text")
	if err == nil {
		t.Fatalf("expected error, got body %s", result)
	}
	var relayErr *Error
	if !errors.As(err, &relayErr) {
		t.Fatalf("expected *relay.Error, got %T", err)
	}
	if relayErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", relayErr.StatusCode)
	}
	if result != nil {
		t.Fatalf("expected no partial result, got %s", result)
	}
}

func TestAnalyzeNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client, err := NewHTTPClient(srv.URL, time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.Analyze(context.Background(), "text")
	var relayErr *Error
	if !errors.As(err, &relayErr) {
		t.Fatalf("expected *relay.Error, got %v", err)
	}
	if relayErr.StatusCode != 0 {
		t.Fatalf("expected zero status for transport failure, got %d", relayErr.StatusCode)
	}
}

func TestNewHTTPClientRequiresBaseURL(t *testing.T) {
	if _, err := NewHTTPClient("   ", time.Second); err == nil {
		t.Fatalf("expected error for empty base url")
	}
}
