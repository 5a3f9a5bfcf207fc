package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

// Дымовой тест: проверяем, что мидлварь логирования не паникует и корректно проксирует ответ
func TestWithLogging_Smoke(t *testing.T) {
	SetLogger(zap.NewNop().Sugar())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"InvalidState"}`))
	})

	h := WithLogging(next)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/borrow/abc/approve", nil)
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status passthrough failed: got %d", rr.Code)
	}
	if rr.Body.String() != `{"error":"InvalidState"}` {
		t.Fatalf("body passthrough failed: %q", rr.Body.String())
	}
}
