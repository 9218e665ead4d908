//go:build unit

package platform_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"museum-booking/internal/domain/booking"
	"museum-booking/internal/infra/platform"
	"museum-booking/internal/mockplatform"
	"museum-booking/internal/pkg/clock"
	"museum-booking/internal/pkg/config"
	"museum-booking/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	discard = slog.New(slog.DiscardHandler)
	testNow = time.Date(2025, 1, 1, 17, 0, 1, 0, time.UTC)
)

func newMockSite(t *testing.T) (*mockplatform.Platform, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	site := mockplatform.New(clock.NewMockClock(testNow))
	site.Register(engine.Group("/mock"))
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return site, srv
}

func newClient(baseURL string) *platform.Client {
	return platform.NewClient(baseURL, time.Second, platform.NewLimiter(1000, 1000))
}

func platformConfig() config.PlatformConfig {
	return config.NewTestConfig().Platform
}

func TestTiersAgainstMockSite(t *testing.T) {
	req := builder.NewBookingRequestBuilder().MustBuildDomain()
	cfg := platformConfig()
	cfg.ImpersonationEnabled = true

	tiers := map[booking.Provenance]func(config.PlatformConfig, *platform.Client, clock.Clock, *slog.Logger) *platform.HTTPStrategy{
		booking.ProvenanceDirectAPI:         platform.NewDirectAPI,
		booking.ProvenanceEnhancedAPI:       platform.NewEnhancedAPI,
		booking.ProvenanceMobileApp:         platform.NewMobileApp,
		booking.ProvenanceWeChatMiniProgram: platform.NewWeChatMiniProgram,
	}

	for name, build := range tiers {
		t.Run(name.String(), func(t *testing.T) {
			site, srv := newMockSite(t)
			s := build(cfg, newClient(srv.URL+"/mock"), clock.NewMockClock(testNow), discard)

			res := s.Attempt(context.Background(), req)

			require.True(t, res.Success(), res.ErrorDetail())
			assert.Equal(t, name, res.Provenance())
			assert.True(t, strings.HasPrefix(res.BookingID(), "SM"))
			assert.Len(t, res.ConfirmationCode(), 8)
			_, stored := site.Lookup(res.BookingID())
			assert.True(t, stored)
		})
	}
}

func TestHTTPStrategyFailures(t *testing.T) {
	req := builder.NewBookingRequestBuilder().MustBuildDomain()

	t.Run("rejected channel reports the platform message", func(t *testing.T) {
		site, srv := newMockSite(t)
		site.SetBehavior(mockplatform.Behavior{Reject: map[mockplatform.Channel]bool{mockplatform.ChannelAPI: true}})

		res := platform.NewDirectAPI(platformConfig(), newClient(srv.URL+"/mock"), clock.NewMockClock(testNow), discard).
			Attempt(context.Background(), req)

		assert.False(t, res.Success())
		assert.Contains(t, res.ErrorDetail(), "预约通道繁忙")
		assert.Empty(t, site.Bookings())
	})

	t.Run("falls through endpoints until one accepts", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			switch r.URL.Path {
			case "/broken":
				w.WriteHeader(http.StatusInternalServerError)
			case "/html":
				w.Header().Set("Content-Type", "text/html")
				_, _ = io.WriteString(w, "<html><body>maintenance</body></html>")
			default:
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, `{"bookingId":"SM123","confirmationCode":"ABC"}`)
			}
		}))
		defer srv.Close()

		cfg := platformConfig()
		cfg.BookingPaths = []string{"/broken", "/html", "/ok"}
		res := platform.NewDirectAPI(cfg, newClient(srv.URL), clock.NewMockClock(testNow), discard).
			Attempt(context.Background(), req)

		require.True(t, res.Success())
		assert.Equal(t, "SM123", res.BookingID())
		assert.Equal(t, "ABC", res.ConfirmationCode())
		assert.EqualValues(t, 3, hits.Load())
	})

	t.Run("every endpoint failing aggregates reasons", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		cfg := platformConfig()
		cfg.BookingPaths = []string{"/a", "/b"}
		res := platform.NewDirectAPI(cfg, newClient(srv.URL), clock.NewMockClock(testNow), discard).
			Attempt(context.Background(), req)

		assert.False(t, res.Success())
		assert.Equal(t, "all endpoints failed: /a (status 503), /b (status 503)", res.ErrorDetail())
	})

	t.Run("unreachable platform", func(t *testing.T) {
		res := platform.NewDirectAPI(platformConfig(), newClient("http://127.0.0.1:1"), clock.NewMockClock(testNow), discard).
			Attempt(context.Background(), req)

		assert.False(t, res.Success())
		assert.Contains(t, res.ErrorDetail(), "transport")
	})

	t.Run("no endpoints", func(t *testing.T) {
		cfg := platformConfig()
		cfg.BookingPaths = nil
		res := platform.NewDirectAPI(cfg, newClient("http://127.0.0.1:1"), clock.NewMockClock(testNow), discard).
			Attempt(context.Background(), req)

		assert.Equal(t, "no endpoints configured", res.ErrorDetail())
	})
}

func TestEnhancedAPISendsFormWithWarmupCookie(t *testing.T) {
	var gotCookie, gotContentType, gotFetchMode string
	mux := http.NewServeMux()
	mux.HandleFunc("/booking", func(w http.ResponseWriter, _ *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "warm", Path: "/"})
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/booking/create", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("JSESSIONID"); err == nil {
			gotCookie = c.Value
		}
		gotContentType = r.Header.Get("Content-Type")
		gotFetchMode = r.Header.Get("Sec-Fetch-Mode")
		_ = r.ParseForm()
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"code":0,"data":{"orderNo":"`+r.PostForm.Get("visitorName")+`-1"}}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	res := platform.NewEnhancedAPI(platformConfig(), newClient(srv.URL), clock.NewMockClock(testNow), discard).
		Attempt(context.Background(), builder.NewBookingRequestBuilder().MustBuildDomain())

	require.True(t, res.Success(), res.ErrorDetail())
	assert.Equal(t, "张三-1", res.BookingID())
	assert.Equal(t, "warm", gotCookie)
	assert.Contains(t, gotContentType, "application/x-www-form-urlencoded")
	assert.Equal(t, "cors", gotFetchMode)
}

func TestIdentityOnlyWhenImpersonationEnabled(t *testing.T) {
	var deviceID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deviceID = r.Header.Get("X-Device-Id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"bookingId":"SM1"}`)
	}))
	defer srv.Close()
	req := builder.NewBookingRequestBuilder().MustBuildDomain()

	cfg := platformConfig()
	platform.NewMobileApp(cfg, newClient(srv.URL), clock.NewMockClock(testNow), discard).Attempt(context.Background(), req)
	assert.Empty(t, deviceID)

	cfg.ImpersonationEnabled = true
	platform.NewMobileApp(cfg, newClient(srv.URL), clock.NewMockClock(testNow), discard).Attempt(context.Background(), req)
	assert.NotEmpty(t, deviceID)
}
