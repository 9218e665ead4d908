//go:build unit

package platform_test

import (
	"testing"

	"museum-booking/internal/infra/platform"

	"github.com/stretchr/testify/assert"
)

func TestJSONMarkerParser(t *testing.T) {
	cases := []struct {
		name string
		body string
		want platform.Outcome
	}{
		{
			name: "nested data envelope",
			body: `{"success":true,"code":0,"data":{"bookingId":"SM123","confirmationCode":"ABC"}}`,
			want: platform.Outcome{Success: true, BookingID: "SM123", ConfirmationCode: "ABC"},
		},
		{
			name: "booking id alone counts as success",
			body: `{"bookingId":"SM123","confirmationCode":"ABC"}`,
			want: platform.Outcome{Success: true, BookingID: "SM123", ConfirmationCode: "ABC"},
		},
		{
			name: "snake case and numeric id",
			body: `{"result":{"order_no":20250101001}}`,
			want: platform.Outcome{Success: true, BookingID: "20250101001"},
		},
		{
			name: "status string",
			body: `{"status":"CONFIRMED"}`,
			want: platform.Outcome{Success: true},
		},
		{
			name: "explicit failure with message",
			body: `{"success":false,"code":500,"message":"预约已满"}`,
			want: platform.Outcome{Detail: "预约已满"},
		},
		{
			name: "failure flag wins over an id",
			body: `{"success":false,"bookingId":"SM123"}`,
			want: platform.Outcome{BookingID: "SM123", Detail: "no success marker in response"},
		},
		{
			name: "error field",
			body: `{"error":"sold out"}`,
			want: platform.Outcome{Detail: "sold out"},
		},
		{
			name: "empty object",
			body: `{}`,
			want: platform.Outcome{Detail: "no success marker in response"},
		},
		{
			name: "not an object",
			body: `[1,2]`,
			want: platform.Outcome{Detail: "response is not a JSON object"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, platform.JSONMarkerParser{}.Parse("application/json", []byte(tc.body)))
		})
	}
}

func TestHTMLMarkerParser(t *testing.T) {
	p := platform.HTMLMarkerParser{Markers: platform.DefaultHTMLMarkers()}

	t.Run("success page with attributes", func(t *testing.T) {
		out := p.Parse("text/html", []byte(`<div id="booking-success">
			<span id="booking-id" data-booking-id="SM123">SM123</span>
			<span id="confirmation-code" data-confirmation-code="ABC">ABC</span></div>`))
		assert.Equal(t, platform.Outcome{Success: true, BookingID: "SM123", ConfirmationCode: "ABC"}, out)
	})

	t.Run("id from element text", func(t *testing.T) {
		out := p.Parse("text/html", []byte(`<p class="order-no"> QH250102WXYZ </p>`))
		assert.True(t, out.Success)
		assert.Equal(t, "QH250102WXYZ", out.BookingID)
	})

	t.Run("error marker wins", func(t *testing.T) {
		out := p.Parse("text/html", []byte(`<div class="booking-error">证件号码格式错误</div><div id="booking-id">SM1</div>`))
		assert.False(t, out.Success)
		assert.Equal(t, "error marker: 证件号码格式错误", out.Detail)
	})

	t.Run("plain page", func(t *testing.T) {
		out := p.Parse("text/html", []byte(`<html><body>hello</body></html>`))
		assert.False(t, out.Success)
	})
}

func TestAutoParser(t *testing.T) {
	p := platform.NewAutoParser()

	assert.True(t, p.Parse("application/json", []byte(`{"success":true}`)).Success)
	assert.True(t, p.Parse("", []byte(` {"bookingId":"SM1"}`)).Success)
	assert.True(t, p.Parse("text/html; charset=utf-8", []byte(`<div id="booking-success"></div>`)).Success)
	assert.True(t, p.Parse("text/plain", []byte(`<div data-booking-id="SM1"></div>`)).Success)

	out := p.Parse("text/plain", []byte("ok"))
	assert.False(t, out.Success)
	assert.Contains(t, out.Detail, "unrecognised response content type")
}
