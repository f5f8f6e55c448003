package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	_ "github.com/bornholm/bbs/internal/metrics"
)

func TestHandler(t *testing.T) {
	handler := NewHandler("prom", "secret")

	res := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	handler.ServeHTTP(res, req)

	if e, g := http.StatusUnauthorized, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	res = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetBasicAuth("prom", "secret")

	handler.ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	if !strings.Contains(res.Body.String(), "bbs_") {
		t.Errorf("res.Body: expected bbs metrics")
	}
}
