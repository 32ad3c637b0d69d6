package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kailas-cloud/skillmatch/internal/logger"
)

func TestJSONRecoverer(t *testing.T) {
	core, observed := observer.New(zapcore.ErrorLevel)
	h := JSONRecoverer(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/match", http.NoBody))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d", rr.Code)
	}
	var resp ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != ErrorCodeInternalError {
		t.Errorf("code: got %s", resp.Code)
	}
	if observed.FilterMessage("panic recovered").Len() != 1 {
		t.Error("expected the panic to be logged")
	}
}

func TestWideEventMiddleware(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	h := chiMiddleware.RequestID(WideEventMiddleware(zap.New(core))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.FromContext(r.Context(), nil).Info("inside handler")
			w.WriteHeader(http.StatusTeapot)
		}),
	))

	req := httptest.NewRequest(http.MethodPost, "/v1/rankings", http.NoBody)
	req.Header.Set(chiMiddleware.RequestIDHeader, "req-42")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got != "req-42" {
		t.Errorf("X-Request-ID: got %q", got)
	}
	inside := observed.FilterMessage("inside handler").All()
	if len(inside) != 1 || inside[0].ContextMap()[logger.FieldRequestID] != "req-42" {
		t.Fatal("handler should log through the request logger")
	}

	entries := observed.FilterMessage("http_request").All()
	if len(entries) != 1 {
		t.Fatalf("expected one canonical line, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields[logger.FieldRequestID] != "req-42" {
		t.Errorf("request_id: got %v", fields[logger.FieldRequestID])
	}
	if fields["status"] != int64(http.StatusTeapot) {
		t.Errorf("status: got %v (%T)", fields["status"], fields["status"])
	}
	if fields["path"] != "/v1/rankings" {
		t.Errorf("path: got %v", fields["path"])
	}
}
