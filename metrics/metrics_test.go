package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounters(t *testing.T) {
	m := New()
	m.Rendered("first quadrant", 10)
	m.Rendered("first quadrant", 20)
	m.Rendered("at origin", 10)
	m.Rejected()

	if got := testutil.ToFloat64(m.renders.WithLabelValues("first quadrant")); got != 2 {
		t.Fatalf("first quadrant renders = %v", got)
	}
	if got := testutil.ToFloat64(m.rejected); got != 1 {
		t.Fatalf("rejected = %v", got)
	}
	if got := testutil.ToFloat64(m.scale); got != 10 {
		t.Fatalf("scale = %v", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.Rendered("at origin", 10)
	m.Rejected()
}

func TestHandler(t *testing.T) {
	m := New()
	m.Rejected()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "quadgrid_rejected_inputs_total 1") {
		t.Fatalf("missing counter in:\n%s", rec.Body.String())
	}
}
