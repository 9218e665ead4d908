//go:build e2e

package browser_test

import (
	"log/slog"
	"net/http/httptest"
	"os/exec"
	"testing"

	"museum-booking/internal/domain/booking"
	"museum-booking/internal/infra/browser"
	"museum-booking/internal/mockplatform"
	"museum-booking/internal/pkg/clock"
	"museum-booking/internal/pkg/config"
	"museum-booking/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findChrome(t *testing.T) string {
	t.Helper()
	for _, name := range []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "headless-shell"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	t.Skip("no Chrome binary on PATH")
	return ""
}

func TestBrowserStrategyBooksThroughTheForm(t *testing.T) {
	chrome := findChrome(t)
	gin.SetMode(gin.TestMode)

	site := mockplatform.New(clock.NewRealClock())
	engine := gin.New()
	site.Register(engine.Group("/mock"))
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	cfg := config.NewTestConfig().Browser
	cfg.Enabled = true
	cfg.ExecPath = chrome

	strategy := browser.NewStrategy(browser.Options{
		Config:    cfg,
		BaseURL:   srv.URL + "/mock",
		PagePaths: []string{"/missing", "/booking"},
		Clock:     clock.NewRealClock(),
		Logger:    slog.New(slog.DiscardHandler),
	})

	t.Run("success", func(t *testing.T) {
		res := strategy.Attempt(t.Context(), builder.NewBookingRequestBuilder().MustBuildDomain())
		require.True(t, res.Success(), res.ErrorDetail())
		assert.Equal(t, booking.ProvenanceBrowser, res.Provenance())

		stored, ok := site.Lookup(res.BookingID())
		require.True(t, ok)
		assert.Equal(t, mockplatform.ChannelPage, stored.Channel)
		assert.Equal(t, builder.ValidIDNumber, stored.IDNumber)
	})

	t.Run("page reports failure", func(t *testing.T) {
		site.SetBehavior(mockplatform.Behavior{Reject: map[mockplatform.Channel]bool{mockplatform.ChannelPage: true}})
		t.Cleanup(func() { site.SetBehavior(mockplatform.Behavior{}) })

		res := strategy.Attempt(t.Context(), builder.NewBookingRequestBuilder().MustBuildDomain())
		assert.False(t, res.Success())
		assert.Contains(t, res.ErrorDetail(), "预约通道繁忙")
	})
}
