package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestRequestIDHonorsClientHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())

	var seen string
	router.GET("/", func(c *gin.Context) {
		seen = RequestIDFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "client-chosen-id")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if seen != "client-chosen-id" {
		t.Fatalf("expected client id in context, got %q", seen)
	}
	if got := resp.Header().Get("X-Request-Id"); got != "client-chosen-id" {
		t.Fatalf("expected client id echoed, got %q", got)
	}
}

func TestRequestIDGeneratesUUID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	id := resp.Header().Get("X-Request-Id")
	if id == "" {
		t.Fatalf("expected generated request id header")
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected UUID request id, got %q: %v", id, err)
	}
}
