package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware_RecordsDurationAndCount(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/assets/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/assets/{id}", "404"))

	req := httptest.NewRequest(http.MethodGet, "/assets/7", http.NoBody)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/assets/{id}", "404"))
	if after-before != 1 {
		t.Errorf("expected counter to grow by 1, got %f", after-before)
	}
	if testutil.CollectAndCount(httpRequestDuration) < 1 {
		t.Error("expected duration series")
	}
}

func TestMiddleware_WithoutRouter(t *testing.T) {
	h := Middleware()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "unknown", "200"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "unknown", "200"))

	if after-before != 1 {
		t.Errorf("expected unknown path to be counted, got %f", after-before)
	}
}

func TestObserveOperation(t *testing.T) {
	tests := []struct {
		phase   string
		err     error
		counter func() float64
	}{
		{"Ingest", nil, func() float64 { return testutil.ToFloat64(IngestTotal.WithLabelValues(StatusOK)) }},
		{"Ingest", errors.New("boom"), func() float64 { return testutil.ToFloat64(IngestTotal.WithLabelValues(StatusError)) }},
		{"Search", nil, func() float64 { return testutil.ToFloat64(SearchTotal.WithLabelValues(StatusOK)) }},
	}

	for _, tt := range tests {
		t.Run(tt.phase, func(t *testing.T) {
			before := tt.counter()
			ObserveOperation(tt.phase, "test", 3*time.Millisecond, tt.err)
			if got := tt.counter() - before; got != 1 {
				t.Errorf("expected counter +1, got %f", got)
			}
		})
	}

	if testutil.CollectAndCount(OperationDuration) < 1 {
		t.Error("expected duration series")
	}
}
