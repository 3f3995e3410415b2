package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newRequestIDEngine() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seen string
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		seen = RequestIDFrom(c)
		c.Status(http.StatusNoContent)
	})
	return r, &seen
}

func TestRequestIDMintsWhenAbsent(t *testing.T) {
	r, seen := newRequestIDEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	rid := w.Header().Get(HeaderRequestID)
	if _, err := uuid.Parse(rid); err != nil {
		t.Fatalf("minted id %q is not a uuid: %v", rid, err)
	}
	if *seen != rid {
		t.Fatalf("handler saw %q, response carried %q", *seen, rid)
	}
}

func TestRequestIDEchoesCallerID(t *testing.T) {
	r, seen := newRequestIDEngine()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "trace-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(HeaderRequestID); got != "trace-42" {
		t.Fatalf("echoed id = %q, want trace-42", got)
	}
	if *seen != "trace-42" {
		t.Fatalf("handler saw %q", *seen)
	}
}
