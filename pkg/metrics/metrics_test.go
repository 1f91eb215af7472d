package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordEvaluation(t *testing.T) {
	m := NewManager()

	m.RecordEvaluation("bills", "renewal", 0)
	m.RecordEvaluation("bills", "renewal", 0)
	m.RecordEvaluation("consignment", "valuation", 3)

	if got := testutil.ToFloat64(m.evaluations.WithLabelValues("bills", "renewal")); got != 2 {
		t.Errorf("bills/renewal evaluations = %v, expected 2", got)
	}
	if got := testutil.ToFloat64(m.nonFiniteOutputs.WithLabelValues("consignment", "valuation")); got != 3 {
		t.Errorf("non-finite outputs = %v, expected 3", got)
	}
	if got := testutil.ToFloat64(m.nonFiniteOutputs.WithLabelValues("bills", "renewal")); got != 0 {
		t.Errorf("non-finite outputs for bills = %v, expected 0", got)
	}
}

func TestRecordAuth(t *testing.T) {
	m := NewManager()

	m.RecordAuth("signin", "")
	m.RecordAuth("signin", "auth/wrong-password")

	if got := testutil.ToFloat64(m.authRequests.WithLabelValues("signin", "ok")); got != 1 {
		t.Errorf("successful sign-ins = %v, expected 1", got)
	}
	if got := testutil.ToFloat64(m.authRequests.WithLabelValues("signin", "auth/wrong-password")); got != 1 {
		t.Errorf("failed sign-ins = %v, expected 1", got)
	}
}

func TestMiddlewareRecordsStatus(t *testing.T) {
	m := NewManager()
	handler := m.Middleware("evaluate", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("fail") != "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))

	for _, target := range []string{"/", "/", "/?fail=1"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, target, nil))
	}

	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("evaluate", http.MethodPost, "200")); got != 2 {
		t.Errorf("200 responses = %v, expected 2", got)
	}
	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("evaluate", http.MethodPost, "400")); got != 1 {
		t.Errorf("400 responses = %v, expected 1", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewManager(WithRegistry(registry), WithNamespace("tutor_test"))
	m.RecordEvaluation("incomplete", "capital", 0)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `tutor_test_calculator_evaluations_total{mode="capital",module="incomplete"} 1`) {
		t.Errorf("expected evaluation counter in output, got:\n%s", rec.Body.String())
	}
	if m.Registry() != registry {
		t.Error("expected the supplied registry to be used")
	}
}
