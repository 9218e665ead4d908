//go:build unit

package mockplatform_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"museum-booking/internal/mockplatform"
	"museum-booking/internal/pkg/clock"
	"museum-booking/tests/common/builder"
	"museum-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSite(t *testing.T) (*mockplatform.Platform, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	site := mockplatform.New(clock.NewMockClock(time.Date(2025, 1, 1, 17, 0, 1, 0, time.UTC)))
	r := gin.New()
	site.Register(r.Group("/mock"))
	return site, r
}

func submission() map[string]any {
	return map[string]any{
		"visitorName":  "张三",
		"idNumber":     builder.ValidIDNumber,
		"museum":       "qinhan",
		"visitDate":    "2025-01-04",
		"timeSlot":     "8:30-10:30",
		"visitorCount": 2,
	}
}

type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		BookingID        string `json:"bookingId"`
		ConfirmationCode string `json:"confirmationCode"`
	} `json:"data"`
}

func TestAPIBooking(t *testing.T) {
	t.Run("accepted and stored", func(t *testing.T) {
		site, r := newSite(t)
		w := httptest.PerformRequest(t, r, http.MethodPost, "/mock/mobile/api/booking", submission())

		var got apiResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.True(t, got.Success)
		assert.Regexp(t, `^QH250104[A-Z0-9]{4}$`, got.Data.BookingID)
		assert.Len(t, got.Data.ConfirmationCode, 8)

		stored, ok := site.Lookup(got.Data.BookingID)
		require.True(t, ok)
		assert.Equal(t, mockplatform.ChannelMobile, stored.Channel)
		assert.Equal(t, 2, stored.VisitorCount)
	})

	t.Run("validation messages", func(t *testing.T) {
		tests := []struct {
			name    string
			field   string
			value   any
			message string
		}{
			{name: "bad checksum", field: "idNumber", value: "610103199003071235", message: "证件号码格式错误"},
			{name: "unknown museum", field: "museum", value: "louvre", message: "请选择参观场馆"},
			{name: "bad date", field: "visitDate", value: "04/01/2025", message: "请选择参观日期"},
			{name: "bad slot", field: "timeSlot", value: "morning", message: "请选择参观时段"},
			{name: "blank name", field: "visitorName", value: " ", message: "请填写参观人姓名"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				site, r := newSite(t)
				body := submission()
				body[tt.field] = tt.value

				w := httptest.PerformRequest(t, r, http.MethodPost, "/mock/api/booking/create", body)
				var got apiResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
				assert.False(t, got.Success)
				assert.Equal(t, tt.message, got.Message)
				assert.Empty(t, site.Bookings())
			})
		}
	})

	t.Run("rejected channel", func(t *testing.T) {
		site, r := newSite(t)
		site.SetBehavior(mockplatform.Behavior{Reject: map[mockplatform.Channel]bool{mockplatform.ChannelWeChat: true}})

		w := httptest.PerformRequest(t, r, http.MethodPost, "/mock/wx/api/booking", submission())
		var got apiResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.False(t, got.Success)

		w = httptest.PerformRequest(t, r, http.MethodPost, "/mock/api/booking/create", submission())
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.True(t, got.Success)
	})
}

func TestQuery(t *testing.T) {
	site, r := newSite(t)
	w := httptest.PerformRequest(t, r, http.MethodPost, "/mock/api/booking/create", submission())
	var created apiResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &created)

	var got map[string]any
	w = httptest.PerformRequest(t, r, http.MethodGet, "/mock/api/booking/query?bookingId="+created.Data.BookingID, nil)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
	assert.Equal(t, true, got["found"])
	assert.Equal(t, created.Data.BookingID, got["bookingId"])

	w = httptest.PerformRequest(t, r, http.MethodGet, "/mock/api/booking/query?bookingId=SM000000AAAA", nil)
	got = nil
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
	assert.Equal(t, map[string]any{"found": false}, got)

	site.SetBehavior(mockplatform.Behavior{DropBookings: true})
	w = httptest.PerformRequest(t, r, http.MethodPost, "/mock/api/booking/create", submission())
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &created)
	_, ok := site.Lookup(created.Data.BookingID)
	assert.False(t, ok)
}

func TestBookingPageAndForm(t *testing.T) {
	_, r := newSite(t)

	w := httptest.PerformRequest(t, r, http.MethodGet, "/mock/booking", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/mock/booking/submit"`)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "mock_session=guest")

	form := url.Values{
		"visitorName": {"张三"},
		"idNumber":    {builder.ValidIDNumber},
		"museum":      {"main"},
		"visitDate":   {"2025-01-04"},
		"timeSlot":    {"8:30-10:30"},
	}
	req, err := http.NewRequest(http.MethodPost, "/mock/booking/submit", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.ServeRequest(r, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-booking-status="success"`)
	assert.Regexp(t, `data-booking-id="SM250104[A-Z0-9]{4}"`, rec.Body.String())
}

func TestBehaviorEndpoint(t *testing.T) {
	site, r := newSite(t)

	w := httptest.PerformRequest(t, r, http.MethodPut, "/mock/_behavior", map[string]any{
		"reject":       map[string]bool{"api": true},
		"dropBookings": true,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, site.Behavior().Reject[mockplatform.ChannelAPI])
	assert.True(t, site.Behavior().DropBookings)
}
