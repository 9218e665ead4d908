package mockplatform

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "mock_session"

// Register mounts the mock site on g. Paths mirror the default platform
// endpoint candidates.
func (p *Platform) Register(g *gin.RouterGroup) {
	submitPath := g.BasePath() + "/booking/submit"

	for _, path := range []string{"/", "/booking", "/reservation"} {
		g.GET(path, p.bookingPage(submitPath))
	}
	g.POST("/booking/submit", p.submitPage)

	g.POST("/api/booking/create", p.apiBooking(ChannelAPI))
	g.POST("/mobile/api/booking", p.apiBooking(ChannelMobile))
	g.POST("/wx/api/booking", p.apiBooking(ChannelWeChat))

	g.GET("/api/booking/query", p.query)
	g.POST("/api/booking/query", p.query)

	g.GET("/_behavior", func(c *gin.Context) { c.JSON(http.StatusOK, p.Behavior()) })
	g.PUT("/_behavior", p.updateBehavior)
	g.GET("/_bookings", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"bookings": p.Bookings()}) })
}

func (p *Platform) bookingPage(submitPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(sessionCookie, "guest", 0, "/", "", false, true)
		render(c, http.StatusOK, formTemplate, gin.H{"Action": submitPath})
	}
}

func (p *Platform) submitPage(c *gin.Context) {
	var s submission
	if err := c.ShouldBind(&s); err != nil {
		render(c, http.StatusOK, resultTemplate, gin.H{"Error": "提交内容无法识别"})
		return
	}
	b, msg := p.accept(ChannelPage, s)
	if msg != "" {
		render(c, http.StatusOK, resultTemplate, gin.H{"Error": msg})
		return
	}
	render(c, http.StatusOK, resultTemplate, gin.H{"Booking": b})
}

func (p *Platform) apiBooking(ch Channel) gin.HandlerFunc {
	return func(c *gin.Context) {
		var s submission
		if err := c.ShouldBind(&s); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": 400, "message": "invalid payload"})
			return
		}
		b, msg := p.accept(ch, s)
		if msg != "" {
			c.JSON(http.StatusOK, gin.H{"success": false, "code": 500, "message": msg})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"code":    0,
			"data": gin.H{
				"bookingId":        b.BookingID,
				"confirmationCode": b.ConfirmationCode,
			},
		})
	}
}

type queryRequest struct {
	BookingID string `json:"bookingId" form:"bookingId"`
}

// query answers without echoing the booking id when nothing matches.
func (p *Platform) query(c *gin.Context) {
	var q queryRequest
	if err := c.ShouldBind(&q); err != nil || q.BookingID == "" {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	b, ok := p.Lookup(q.BookingID)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"found":     true,
		"bookingId": b.BookingID,
		"status":    "booked",
	})
}

func (p *Platform) updateBehavior(c *gin.Context) {
	var b Behavior
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request format"}})
		return
	}
	p.SetBehavior(b)
	c.JSON(http.StatusOK, p.Behavior())
}

func render(c *gin.Context, status int, t *template.Template, data any) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		_ = c.Error(err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

var formTemplate = template.Must(template.New("form").Parse(`<!DOCTYPE html>
<html lang="zh-CN">
<head><meta charset="utf-8"><title>参观预约</title></head>
<body>
<form id="booking-form" method="post" action="{{.Action}}">
	<label>姓名 <input id="visitorName" name="visitorName" type="text"></label>
	<label>证件类型
		<select id="idType" name="idType">
			<option value="id_card">身份证</option>
			<option value="passport">护照</option>
			<option value="other">其他</option>
		</select>
	</label>
	<label>证件号码 <input id="idNumber" name="idNumber" type="text"></label>
	<label>场馆
		<select id="museum" name="museum">
			<option value="main">陕西历史博物馆</option>
			<option value="qinhan">陕西历史博物馆秦汉馆</option>
		</select>
	</label>
	<label>参观日期 <input id="visitDate" name="visitDate" type="date"></label>
	<label>参观时段 <input id="timeSlot" name="timeSlot" type="text"></label>
	<label>人数 <input id="visitorCount" name="visitorCount" type="number" min="1" max="5" value="1"></label>
	<button id="submit-booking" type="submit">提交预约</button>
</form>
</body>
</html>`))

var resultTemplate = template.Must(template.New("result").Parse(`<!DOCTYPE html>
<html lang="zh-CN">
<head><meta charset="utf-8"><title>预约结果</title></head>
<body>
{{if .Error}}
<div class="booking-error" data-booking-status="failed">{{.Error}}</div>
{{else}}
<div id="booking-success" data-booking-status="success">
	<p>预约成功</p>
	<p>预约号 <span id="booking-id" data-booking-id="{{.Booking.BookingID}}">{{.Booking.BookingID}}</span></p>
	<p>核验码 <span id="confirmation-code" data-confirmation-code="{{.Booking.ConfirmationCode}}">{{.Booking.ConfirmationCode}}</span></p>
</div>
{{end}}
</body>
</html>`))
