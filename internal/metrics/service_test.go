package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceRecordsOnPrivateRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.IncPairingsGenerated()
	s.IncPairingsGenerated()
	s.IncByesAssigned()
	s.IncRoundsProcessed()
	s.IncSlackNotifSent()
	s.IncSlackNotifFailed()
	s.ObserveGenerationDuration(0.02)
	s.SetStartupTime(1.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(s.PairingsGenerated))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.ByesAssigned))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.RoundsProcessed))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.SlackNotifSent))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.SlackNotifFailed))
	assert.Equal(t, 1.5, testutil.ToFloat64(s.StartupTimeSeconds))
	assert.Equal(t, 1, testutil.CollectAndCount(s.GenerationDuration))

	assert.Panics(t, func() { NewService(reg) }, "metrics register once per registry")
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)
	s.IncByesAssigned()

	rec := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "duels_byes_assigned_total 1")
}
