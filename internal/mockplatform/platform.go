// Package mockplatform is a stand-in for the museum booking site, mounted
// under /mock when no real platform URL is configured.
package mockplatform

import (
	"strings"
	"sync"
	"time"

	"museum-booking/internal/domain/booking"
	"museum-booking/internal/domain/manual"
	"museum-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

// Channel is the surface a booking arrived through.
type Channel string

const (
	ChannelAPI    Channel = "api"
	ChannelMobile Channel = "mobile"
	ChannelWeChat Channel = "wechat"
	ChannelPage   Channel = "page"
)

type Behavior struct {
	// channels listed here answer every booking with a failure
	Reject map[Channel]bool `json:"reject"`
	// accepted bookings are not stored, so lookups never find them
	DropBookings bool `json:"dropBookings"`
}

type Booking struct {
	BookingID        string    `json:"bookingId"`
	ConfirmationCode string    `json:"confirmationCode"`
	Channel          Channel   `json:"channel"`
	VisitorName      string    `json:"visitorName"`
	IDNumber         string    `json:"idNumber"`
	Museum           string    `json:"museum"`
	VisitDate        string    `json:"visitDate"`
	TimeSlot         string    `json:"timeSlot"`
	VisitorCount     int       `json:"visitorCount"`
	CreatedAt        time.Time `json:"createdAt"`
}

type Platform struct {
	mu         sync.RWMutex
	bookings   map[string]Booking
	behavior   Behavior
	references *manual.ReferenceGenerator
	clock      clock.Clock
}

func New(clk clock.Clock) *Platform {
	return &Platform{
		bookings:   make(map[string]Booking),
		references: manual.NewReferenceGenerator(),
		clock:      clk,
	}
}

func (p *Platform) SetBehavior(b Behavior) {
	p.mu.Lock()
	defer p.mu.Unlock()
	reject := make(map[Channel]bool, len(b.Reject))
	for k, v := range b.Reject {
		reject[k] = v
	}
	b.Reject = reject
	p.behavior = b
}

func (p *Platform) Behavior() Behavior {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.behavior
}

func (p *Platform) Bookings() []Booking {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]Booking, 0, len(p.bookings))
	for _, b := range p.bookings {
		out = append(out, b)
	}
	return out
}

func (p *Platform) Lookup(bookingID string) (Booking, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	b, ok := p.bookings[strings.TrimSpace(bookingID)]
	return b, ok
}

type submission struct {
	VisitorName  string `json:"visitorName" form:"visitorName"`
	IDNumber     string `json:"idNumber" form:"idNumber"`
	IDType       string `json:"idType" form:"idType"`
	Museum       string `json:"museum" form:"museum"`
	VisitDate    string `json:"visitDate" form:"visitDate"`
	TimeSlot     string `json:"timeSlot" form:"timeSlot"`
	VisitorCount int    `json:"visitorCount" form:"visitorCount"`
}

// accept validates a submission the way the site's own form does and
// records it. The returned message explains a rejection.
func (p *Platform) accept(ch Channel, s submission) (Booking, string) {
	if p.Behavior().Reject[ch] {
		return Booking{}, "预约通道繁忙，请稍后再试"
	}
	if strings.TrimSpace(s.VisitorName) == "" {
		return Booking{}, "请填写参观人姓名"
	}
	idType := booking.IDType(s.IDType)
	if idType == "" {
		idType = booking.IDTypeIDCard
	}
	idNumber := booking.NormalizeIDNumber(s.IDNumber)
	if idNumber == "" || (idType == booking.IDTypeIDCard && !booking.ValidIDCardNumber(idNumber)) {
		return Booking{}, "证件号码格式错误"
	}
	museum := booking.Museum(s.Museum)
	if !museum.IsValid() {
		return Booking{}, "请选择参观场馆"
	}
	visitDate, err := time.Parse("2006-01-02", strings.TrimSpace(s.VisitDate))
	if err != nil {
		return Booking{}, "请选择参观日期"
	}
	if _, err := booking.ParseTimeSlot(s.TimeSlot); err != nil {
		return Booking{}, "请选择参观时段"
	}
	count := s.VisitorCount
	if count == 0 {
		count = 1
	}

	b := Booking{
		BookingID:        p.references.Generate(museum, visitDate),
		ConfirmationCode: strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8]),
		Channel:          ch,
		VisitorName:      strings.TrimSpace(s.VisitorName),
		IDNumber:         idNumber,
		Museum:           museum.String(),
		VisitDate:        visitDate.Format("2006-01-02"),
		TimeSlot:         strings.TrimSpace(s.TimeSlot),
		VisitorCount:     count,
		CreatedAt:        p.clock.Now(),
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.behavior.DropBookings {
		p.bookings[b.BookingID] = b
	}
	return b, ""
}
