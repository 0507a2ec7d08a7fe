package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	Init()
	Init()

	ingestBefore := testutil.ToFloat64(ingestTotal.WithLabelValues(ResultParseError))
	ObserveIngest(ResultParseError, time.Millisecond)
	assert.Equal(t, ingestBefore+1, testutil.ToFloat64(ingestTotal.WithLabelValues(ResultParseError)))

	defaultBefore := testutil.ToFloat64(ingestTotal.WithLabelValues(ResultSuccess))
	ObserveIngest("", time.Millisecond)
	assert.Equal(t, defaultBefore+1, testutil.ToFloat64(ingestTotal.WithLabelValues(ResultSuccess)))

	loadsBefore := testutil.ToFloat64(recordsTotal.WithLabelValues("load"))
	AddRecords("load", 3)
	AddRecords("load", 0)
	assert.Equal(t, loadsBefore+3, testutil.ToFloat64(recordsTotal.WithLabelValues("load")))

	statsBefore := testutil.ToFloat64(statsTotal.WithLabelValues("Weekly", ResultSuccess))
	ObserveStats("Weekly", "", time.Millisecond)
	assert.Equal(t, statsBefore+1, testutil.ToFloat64(statsTotal.WithLabelValues("Weekly", ResultSuccess)))

	exportBefore := testutil.ToFloat64(exportTotal.WithLabelValues("pdf", ResultError))
	ObserveExport("pdf", ResultError, time.Millisecond)
	assert.Equal(t, exportBefore+1, testutil.ToFloat64(exportTotal.WithLabelValues("pdf", ResultError)))

	publishBefore := testutil.ToFloat64(publishErrors.WithLabelValues("unknown"))
	IncPublishError("")
	assert.Equal(t, publishBefore+1, testutil.ToFloat64(publishErrors.WithLabelValues("unknown")))
}

func TestHandler(t *testing.T) {
	Init()
	ObserveIngest(ResultSuccess, time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "drivahub_ingest_total")
}
