package web_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gstcheck/internal/gstapi"
	"github.com/dmitrymomot/gstcheck/internal/lookup"
	"github.com/dmitrymomot/gstcheck/internal/metrics"
	"github.com/dmitrymomot/gstcheck/internal/web"
	"github.com/dmitrymomot/gstcheck/pkg/gstin"
	"github.com/dmitrymomot/gstcheck/pkg/httpserver"
	"github.com/dmitrymomot/gstcheck/pkg/ratelimiter"
	"github.com/dmitrymomot/gstcheck/pkg/requestid"
)

const (
	rawID     = "27AABCU9603R1ZM"
	canonical = "/gst-return-checker/abc-traders-27aabcu9603r1zm/"
)

type fetchFunc func(ctx context.Context, id gstin.GSTIN) (*gstapi.Envelope, error)

func (f fetchFunc) Fetch(ctx context.Context, id gstin.GSTIN) (*gstapi.Envelope, error) {
	return f(ctx, id)
}

func foundFetcher(tradeName string) fetchFunc {
	return func(_ context.Context, id gstin.GSTIN) (*gstapi.Envelope, error) {
		return &gstapi.Envelope{
			Success: true,
			Source:  "gst-portal",
			Data: &gstapi.Summary{
				GSTIN:     id.String(),
				LegalName: "ABC Co Pvt Ltd",
				TradeName: tradeName,
				Status:    "Active",
				Filings: []gstapi.Filing{
					{ReturnType: "GSTR-3B", Period: "032024", DateOfFiling: "20-04-2024", Status: "Filed", ARN: "AA270324000001"},
				},
				Compliance: gstapi.Compliance{TotalReturns: 1, FiledOnTime: 1, OnTimePercent: 100, FiledPercent: 100},
			},
		}, nil
	}
}

func failingFetcher(err error) fetchFunc {
	return func(context.Context, gstin.GSTIN) (*gstapi.Envelope, error) {
		return nil, err
	}
}

func newRouter(t *testing.T, f lookup.Fetcher, opts ...web.Option) http.Handler {
	t.Helper()
	svc, err := lookup.New(lookup.DefaultConfig(), f)
	require.NoError(t, err)
	return web.NewRouter(svc, opts...)
}

func serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func formRequest(values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/gst-return-checker/", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestSearchPage(t *testing.T) {
	t.Parallel()

	rec := serve(newRouter(t, foundFetcher("ABC Traders")), httptest.NewRequest(http.MethodGet, "/gst-return-checker/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.NotEmpty(t, rec.Header().Get(requestid.Header))
	assert.Contains(t, rec.Body.String(), `id="gst-search"`)
	assert.Contains(t, rec.Body.String(), "GST Return Checker")
}

func TestSearch(t *testing.T) {
	t.Parallel()

	router := newRouter(t, foundFetcher("ABC Traders"))

	t.Run("query redirects to identifier page", func(t *testing.T) {
		t.Parallel()
		rec := serve(router, httptest.NewRequest(http.MethodGet, "/gst-return-checker/search?gstin=27aabcu9603r1zm", nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/gst-return-checker/27aabcu9603r1zm/", rec.Header().Get("Location"))
	})

	t.Run("form redirects to identifier page", func(t *testing.T) {
		t.Parallel()
		rec := serve(router, formRequest(url.Values{"gstin": {" 27AABCU 9603R1ZM "}}))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/gst-return-checker/27aabcu9603r1zm/", rec.Header().Get("Location"))
	})

	t.Run("invalid input re-renders the form", func(t *testing.T) {
		t.Parallel()
		rec := serve(router, formRequest(url.Values{"gstin": {"27AABCU9603R1Z"}}))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "GSTIN must be exactly 15 characters")
		assert.Contains(t, rec.Body.String(), `value="27AABCU9603R1Z"`)
	})

	t.Run("empty query", func(t *testing.T) {
		t.Parallel()
		rec := serve(router, httptest.NewRequest(http.MethodGet, "/gst-return-checker/search", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Please enter a GSTIN")
	})

	t.Run("datastar gets a form patch", func(t *testing.T) {
		t.Parallel()
		r := formRequest(url.Values{"gstin": {"AB AABCU9603R1ZM"}})
		r.Header.Set("Datastar-Request", "true")
		rec := serve(router, r)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#gst-search")
		assert.Contains(t, body, "1st character must be a digit")
	})

	t.Run("datastar gets a script redirect", func(t *testing.T) {
		t.Parallel()
		r := formRequest(url.Values{"gstin": {rawID}})
		r.Header.Set("Datastar-Request", "true")
		rec := serve(router, r)

		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
		assert.Contains(t, rec.Body.String(), "/gst-return-checker/27aabcu9603r1zm/")
	})
}

func TestResultPage(t *testing.T) {
	t.Parallel()

	t.Run("identifier-only path redirects to canonical", func(t *testing.T) {
		t.Parallel()
		rec := serve(newRouter(t, foundFetcher("ABC Traders")),
			httptest.NewRequest(http.MethodGet, "/gst-return-checker/27aabcu9603r1zm/", nil))

		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, canonical, rec.Header().Get("Location"))
	})

	t.Run("canonical path renders result", func(t *testing.T) {
		t.Parallel()
		rec := serve(newRouter(t, foundFetcher("ABC Traders")), httptest.NewRequest(http.MethodGet, canonical, nil))

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "<h2>ABC Traders</h2>")
		assert.Contains(t, body, "Maharashtra")
		assert.Contains(t, body, "GSTR-3B")
		assert.Contains(t, body, "AA270324000001")
	})

	t.Run("name containing another identifier stays on its own page", func(t *testing.T) {
		t.Parallel()
		router := newRouter(t, foundFetcher("29AAAAA0000A0ZZ Holdings"))
		rec := serve(router, httptest.NewRequest(http.MethodGet, "/gst-return-checker/29aaaaa0000a0zz-holdings-27aabcu9603r1zm/", nil))

		require.Equal(t, http.StatusOK, rec.Code, rec.Header().Get("Location"))
		assert.Contains(t, rec.Body.String(), "<dd>27AABCU9603R1ZM</dd>")
	})

	t.Run("names are escaped", func(t *testing.T) {
		t.Parallel()
		router := newRouter(t, foundFetcher("<script>x</script> Co"))
		rec := serve(router, httptest.NewRequest(http.MethodGet, "/gst-return-checker/script-x-script-co-27aabcu9603r1zm/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "<script>x</script>")
		assert.Contains(t, rec.Body.String(), "&lt;script&gt;")
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		rec := serve(newRouter(t, failingFetcher(gstapi.ErrNotFound)),
			httptest.NewRequest(http.MethodGet, "/gst-return-checker/27aabcu9603r1zm/", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), lookup.NotFoundMessage)
	})

	t.Run("upstream error offers retry", func(t *testing.T) {
		t.Parallel()
		rec := serve(newRouter(t, failingFetcher(&gstapi.APIError{Status: 503, Message: "portal is down"})),
			httptest.NewRequest(http.MethodGet, "/gst-return-checker/27aabcu9603r1zm/", nil))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "portal is down")
		assert.Contains(t, rec.Body.String(), "Try again")
	})

	t.Run("slug without identifier", func(t *testing.T) {
		t.Parallel()
		rec := serve(newRouter(t, foundFetcher("ABC Traders")),
			httptest.NewRequest(http.MethodGet, "/gst-return-checker/some-business/", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "No GSTIN found in this address")
	})

	t.Run("datastar result patch", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, canonical, nil)
		r.Header.Set("Datastar-Request", "true")
		rec := serve(newRouter(t, foundFetcher("ABC Traders")), r)

		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
		assert.Contains(t, rec.Body.String(), "#result")
		assert.NotContains(t, rec.Body.String(), "<!DOCTYPE html>")
	})
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestLookupAPI(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		rec := serve(newRouter(t, foundFetcher("ABC Traders")),
			httptest.NewRequest(http.MethodGet, "/api/lookup/27aabcu9603r1zm", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		data := body["data"].(map[string]any)
		meta := body["meta"].(map[string]any)
		assert.Equal(t, "ABC Co Pvt Ltd", data["legalName"])
		assert.Equal(t, canonical, meta["canonicalPath"])
		assert.Equal(t, "Maharashtra", meta["region"])
		assert.Equal(t, rawID, meta["gstin"])
	})

	t.Run("validation error", func(t *testing.T) {
		t.Parallel()
		rec := serve(newRouter(t, foundFetcher("ABC Traders")),
			httptest.NewRequest(http.MethodGet, "/api/lookup/27AABCU9603R1XM", nil))

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		errBody := decode(t, rec)["error"].(map[string]any)
		assert.Equal(t, "validation_error", errBody["code"])
		assert.Contains(t, errBody["details"], "gstin")
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		rec := serve(newRouter(t, failingFetcher(gstapi.ErrNotFound)),
			httptest.NewRequest(http.MethodGet, "/api/lookup/"+rawID, nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", decode(t, rec)["error"].(map[string]any)["code"])
	})

	t.Run("upstream error", func(t *testing.T) {
		t.Parallel()
		rec := serve(newRouter(t, failingFetcher(gstapi.ErrTransport)),
			httptest.NewRequest(http.MethodGet, "/api/lookup/"+rawID, nil))

		require.Equal(t, http.StatusBadGateway, rec.Code)
		errBody := decode(t, rec)["error"].(map[string]any)
		assert.Equal(t, "bad_gateway", errBody["code"])
		assert.Equal(t, gstapi.GenericMessage, errBody["message"])
	})
}

func TestOperationalEndpoints(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	svc, err := lookup.New(lookup.DefaultConfig(), foundFetcher("ABC Traders"), lookup.WithMetrics(m))
	require.NoError(t, err)

	failing := httpserver.Probe{Name: "redis", Check: func(context.Context) error { return errors.New("down") }}

	router := web.NewRouter(svc, web.WithMetrics(reg))
	notReady := web.NewRouter(svc, web.WithProbes(failing))

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())

	rec = serve(router, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(notReady, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	serve(router, httptest.NewRequest(http.MethodGet, "/api/lookup/"+rawID, nil))
	rec = serve(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `gstcheck_lookups_total{outcome="success"} 1`)

	rec = serve(notReady, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	t.Cleanup(store.Close)
	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Hour})
	require.NoError(t, err)

	router := newRouter(t, foundFetcher("ABC Traders"), web.WithRateLimit(bucket))

	call := func(target, ip string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, target, nil)
		r.Header.Set("X-Real-IP", ip)
		return serve(router, r)
	}

	assert.Equal(t, http.StatusOK, call("/api/lookup/"+rawID, "198.51.100.1").Code)
	assert.Equal(t, http.StatusOK, call(canonical, "198.51.100.1").Code)

	rec := call("/api/lookup/"+rawID, "198.51.100.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "too_many_requests", decode(t, rec)["error"].(map[string]any)["code"])

	rec = call(canonical, "198.51.100.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Too many lookups")

	// The search page and other clients are unaffected.
	assert.Equal(t, http.StatusOK, call("/gst-return-checker/", "198.51.100.1").Code)
	assert.Equal(t, http.StatusOK, call(canonical, "198.51.100.2").Code)
}
