package visits

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Recorder {
	t.Helper()
	rec, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { rec.Close() })
	return rec
}

func TestHashIPIsStableAndOpaque(t *testing.T) {
	rec := openTest(t)
	a := rec.HashIP("203.0.113.7")
	assert.Equal(t, a, rec.HashIP("203.0.113.7"))
	assert.NotEqual(t, a, rec.HashIP("203.0.113.8"))
	assert.Len(t, a, 16)
	assert.NotContains(t, a, "203")
}

func TestRecordAndStats(t *testing.T) {
	rec := openTest(t)
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	rec.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, rec.Record(ctx, Visit{HashedIP: "a", Path: "/", At: now}))
	require.NoError(t, rec.Record(ctx, Visit{HashedIP: "a", Path: "/", At: now.Add(-time.Hour)}))
	require.NoError(t, rec.Record(ctx, Visit{HashedIP: "b", Path: "/", At: now.AddDate(0, 0, -2)}))

	stats, err := rec.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 3, Unique: 2, Today: 2}, stats)
}

func TestRecordDefaultsTimestamp(t *testing.T) {
	rec := openTest(t)
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	rec.now = func() time.Time { return now }

	require.NoError(t, rec.Record(context.Background(), Visit{HashedIP: "a"}))
	stats, err := rec.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.Today)
}

func TestCleanupRemovesOnlyExpired(t *testing.T) {
	rec := openTest(t)
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	rec.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, rec.Record(ctx, Visit{HashedIP: "old", At: now.AddDate(-1, -1, 0)}))
	require.NoError(t, rec.Record(ctx, Visit{HashedIP: "new", At: now.AddDate(0, -1, 0)}))

	n, err := rec.Cleanup(ctx, 12)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	stats, err := rec.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.Total)
}

func TestTracked(t *testing.T) {
	cases := []struct {
		method, path, dnt string
		want              bool
	}{
		{http.MethodGet, "/", "", true},
		{http.MethodGet, "/tabs/About", "", true},
		{http.MethodGet, "/", "1", false},
		{http.MethodGet, "/static/js/theme.js", "", false},
		{http.MethodGet, "/assets/images/map.svg", "", false},
		{http.MethodGet, "/healthz", "", false},
		{http.MethodPost, "/theme", "", false},
	}
	for _, tc := range cases {
		r := httptest.NewRequest(tc.method, tc.path, nil)
		if tc.dnt != "" {
			r.Header.Set("DNT", tc.dnt)
		}
		assert.Equal(t, tc.want, Tracked(r), "%s %s dnt=%q", tc.method, tc.path, tc.dnt)
	}
}

func TestMiddlewareRecordsInBackground(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := openTest(t)

	r := gin.New()
	r.Use(Middleware(rec, nil))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/static/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/static/x", nil))

	assert.Eventually(t, func() bool {
		stats, err := rec.Stats(context.Background())
		return err == nil && stats.Total == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestMiddlewareWithoutRecorder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(nil, nil))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestScheduleCleanupRejectsBadSpec(t *testing.T) {
	rec := openTest(t)
	_, err := ScheduleCleanup("every day", 12, rec, nil)
	require.Error(t, err)
}

func TestScheduleCleanupStarts(t *testing.T) {
	rec := openTest(t)
	c, err := ScheduleCleanup("0 0 3 * * *", 12, rec, nil)
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
	<-c.Stop().Done()
}
