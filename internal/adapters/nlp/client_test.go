package nlp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "voiceforce/internal/platform/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Options{Endpoint: srv.URL, APIKey: "key-123"})
}

func TestClassifySendsWireContract(t *testing.T) {
	var gotBody map[string]any
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		buf, _ := io.ReadAll(r.Body)
		json.Unmarshal(buf, &gotBody)
		w.Write([]byte(`{"action":"search","object":"Account","keyword":"田中","confidence":0.7}`))
	})

	raw, err := c.Classify(context.Background(), "田中さんを調べたい", `{"objects":{}}`, "user-1")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if gotAuth != "Bearer key-123" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotBody["text"] != "田中さんを調べたい" || gotBody["metadata"] != `{"objects":{}}` || gotBody["user_id"] != "user-1" {
		t.Fatalf("request body = %v", gotBody)
	}
	if len(raw) == 0 {
		t.Fatal("want raw intent JSON back")
	}
}

func TestClassifyStatusMapping(t *testing.T) {
	cases := []struct {
		status int
		want   perr.ErrorCode
	}{
		{http.StatusTooManyRequests, perr.ErrorCodeTooManyRequests},
		{http.StatusUnauthorized, perr.ErrorCodeUnauthorized},
		{http.StatusBadGateway, perr.ErrorCodeUnavailable},
		{http.StatusServiceUnavailable, perr.ErrorCodeUnavailable},
		{http.StatusInternalServerError, perr.ErrorCodeUnknown},
		{http.StatusBadRequest, perr.ErrorCodeUnknown},
	}
	for _, tc := range cases {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		})
		_, err := c.Classify(context.Background(), "text", "", "user-1")
		if err == nil {
			t.Fatalf("status %d: want error", tc.status)
		}
		if got := perr.CodeOf(err); got != tc.want {
			t.Fatalf("status %d: code = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestClassifyDoesNotRetry(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	_, _ = c.Classify(context.Background(), "text", "", "user-1")
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}
