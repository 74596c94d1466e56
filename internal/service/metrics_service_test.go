package service

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workshop-portal/stats-api/internal/models"
)

func TestMetricsServiceRecordsProposals(t *testing.T) {
	m := NewMetricsService()
	m.RecordProposal()
	m.RecordProposal(models.RejectionWeekend, models.RejectionTermsNotAccepted)
	m.RecordProposal(models.RejectionWeekend)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.proposals.WithLabelValues(ProposalOutcomeAccepted)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.proposals.WithLabelValues(string(models.RejectionWeekend))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.proposals.WithLabelValues(string(models.RejectionTermsNotAccepted))))
}

func TestMetricsServiceCacheRatio(t *testing.T) {
	m := NewMetricsService()
	m.RecordCacheOperation(true, time.Millisecond)
	m.RecordCacheOperation(false, time.Millisecond)
	m.RecordCacheOperation(true, time.Millisecond)
	m.RecordCacheOperation(true, time.Millisecond)

	assert.InDelta(t, 0.75, testutil.ToFloat64(m.cacheHitRatio), 0.0001)
}

func TestMetricsServiceHandlerExposesCollectors(t *testing.T) {
	m := NewMetricsService()
	m.ObserveHTTPRequest(http.MethodGet, "/statistics/workshops", http.StatusOK, 10*time.Millisecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "http_requests_total"))
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var m *MetricsService
	m.RecordProposal(models.RejectionTooFar)
	m.ObserveDBQuery("x", time.Second)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
