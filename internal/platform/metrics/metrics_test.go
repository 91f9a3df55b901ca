package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestContentFallback_Counts(t *testing.T) {
	m := New()

	m.ContentFallback("plans", ReasonEmpty)
	m.ContentFallback("plans", ReasonEmpty)
	m.ContentFallback("testimonials", ReasonError)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.contentFallbacks.WithLabelValues("plans", ReasonEmpty)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.contentFallbacks.WithLabelValues("testimonials", ReasonError)))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ContentFallback("plans", ReasonPanic)
	m.ContentLoaded(time.Second)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_ExposesContentMetrics(t *testing.T) {
	m := New()
	m.ContentLoaded(150 * time.Millisecond)
	m.ContentFallback("testimonials", ReasonNotConfigured)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(body, "petcare_content_load_duration_seconds"))
	assert.True(t, strings.Contains(body, `petcare_content_fallback_total{kind="testimonials",reason="not_configured"} 1`))
}
