package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func serveAuth(keys []string, method, path, header string) *httptest.ResponseRecorder {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(method, path, http.NoBody)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rr := httptest.NewRecorder()
	BearerAuthMiddleware(keys)(ok).ServeHTTP(rr, req)
	return rr
}

func TestBearerAuth(t *testing.T) {
	tests := []struct {
		name   string
		keys   []string
		path   string
		header string
		want   int
	}{
		{"no keys", nil, "/v1/rankings", "", http.StatusOK},
		{"blank keys", []string{"", "  "}, "/v1/rankings", "", http.StatusOK},
		{"missing header", []string{"secret"}, "/v1/rankings", "", http.StatusUnauthorized},
		{"basic scheme", []string{"secret"}, "/v1/match", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"wrong key", []string{"secret"}, "/v1/threshold", "Bearer wrong-key", http.StatusUnauthorized},
		{"valid key", []string{"secret"}, "/v1/rankings", "Bearer secret", http.StatusOK},
		{"padded token", []string{"secret"}, "/v1/rankings", "Bearer  secret ", http.StatusOK},
		{"second key", []string{"key1", "key2"}, "/v1/rankings", "Bearer key2", http.StatusOK},
		{"prefix of key", []string{"secret"}, "/v1/rankings", "Bearer sec", http.StatusUnauthorized},
		{"health exempt", []string{"secret"}, "/health", "", http.StatusOK},
		{"metrics exempt", []string{"secret"}, "/metrics", "", http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			method := http.MethodPost
			if tc.path == "/health" || tc.path == "/metrics" {
				method = http.MethodGet
			}
			rr := serveAuth(tc.keys, method, tc.path, tc.header)
			if rr.Code != tc.want {
				t.Errorf("got %d, want %d", rr.Code, tc.want)
			}
		})
	}
}

func TestBearerAuth_ErrorBody(t *testing.T) {
	rr := serveAuth([]string{"secret"}, http.MethodPost, "/v1/rankings", "")

	var errResp ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != ErrorCodeUnauthorized {
		t.Errorf("error code: got %s, want %s", errResp.Code, ErrorCodeUnauthorized)
	}
	if errResp.Message != "missing authorization header" {
		t.Errorf("message: got %q", errResp.Message)
	}
}
