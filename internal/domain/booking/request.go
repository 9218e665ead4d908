package booking

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	MinVisitors = 1
	MaxVisitors = 5

	visitDateLayout = "2006-01-02"
)

var (
	ErrEmptyVisitorName     = errors.New("visitor name is required")
	ErrInvalidIDNumber      = errors.New("invalid id number")
	ErrInvalidIDType        = errors.New("invalid id type")
	ErrInvalidMuseum        = errors.New("invalid museum")
	ErrInvalidVisitDate     = errors.New("invalid visit date")
	ErrInvalidTimeSlot      = errors.New("invalid time slot")
	ErrVisitorCountRange    = errors.New("visitor count must be between 1 and 5")
	ErrVisitorCountMismatch = errors.New("visitor count does not match visitor details")
)

var timeSlotPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*-\s*(\d{1,2}):(\d{2})$`)

type VisitorDetail struct {
	name     string
	idNumber string
	idType   IDType
	age      *int
}

func NewVisitorDetail(name, idNumber string, idType IDType, age *int) (VisitorDetail, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return VisitorDetail{}, ErrEmptyVisitorName
	}
	if idType == "" {
		idType = IDTypeIDCard
	}
	if !idType.IsValid() {
		return VisitorDetail{}, ErrInvalidIDType
	}
	idNumber = NormalizeIDNumber(idNumber)
	if err := validateIDNumber(idNumber, idType); err != nil {
		return VisitorDetail{}, err
	}
	if age != nil && (*age < 0 || *age > 150) {
		return VisitorDetail{}, fmt.Errorf("visitor %s: age out of range", name)
	}
	return VisitorDetail{name: name, idNumber: idNumber, idType: idType, age: age}, nil
}

func (v VisitorDetail) Name() string     { return v.name }
func (v VisitorDetail) IDNumber() string { return v.idNumber }
func (v VisitorDetail) IDType() IDType   { return v.idType }
func (v VisitorDetail) Age() *int        { return v.age }

type TimeSlot struct {
	raw         string
	startMinute int
	endMinute   int
}

// ParseTimeSlot accepts ranges such as "8:30-10:30".
func ParseTimeSlot(s string) (TimeSlot, error) {
	m := timeSlotPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	start, ok := clockMinutes(m[1], m[2])
	if !ok {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	end, ok := clockMinutes(m[3], m[4])
	if !ok || end <= start {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{
		raw:         fmt.Sprintf("%d:%02d-%d:%02d", start/60, start%60, end/60, end%60),
		startMinute: start,
		endMinute:   end,
	}, nil
}

func clockMinutes(h, m string) (int, bool) {
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

func (ts TimeSlot) String() string   { return ts.raw }
func (ts TimeSlot) StartMinute() int { return ts.startMinute }
func (ts TimeSlot) EndMinute() int   { return ts.endMinute }

type VisitorParams struct {
	Name     string
	IDNumber string
	IDType   IDType
	Age      *int
}

type RequestParams struct {
	VisitorName  string
	IDNumber     string
	IDType       IDType
	Contact      string
	Museum       Museum
	VisitDate    string
	TimeSlot     string
	VisitorCount int // zero means len(Visitors)
	Visitors     []VisitorParams
}

// Request is the validated input of one booking attempt. Business rules such
// as past dates and penalties are enforced before a Request reaches the engine.
type Request struct {
	visitorName string
	idNumber    string
	idType      IDType
	contact     string
	museum      Museum
	visitDate   time.Time
	timeSlot    TimeSlot
	visitors    []VisitorDetail
}

func NewRequest(p RequestParams) (*Request, error) {
	name := strings.TrimSpace(p.VisitorName)
	if name == "" {
		return nil, ErrEmptyVisitorName
	}

	idType := p.IDType
	if idType == "" {
		idType = IDTypeIDCard
	}
	if !idType.IsValid() {
		return nil, ErrInvalidIDType
	}
	idNumber := NormalizeIDNumber(p.IDNumber)
	if err := validateIDNumber(idNumber, idType); err != nil {
		return nil, err
	}

	if !p.Museum.IsValid() {
		return nil, ErrInvalidMuseum
	}

	visitDate, err := time.Parse(visitDateLayout, strings.TrimSpace(p.VisitDate))
	if err != nil {
		return nil, ErrInvalidVisitDate
	}

	slot, err := ParseTimeSlot(p.TimeSlot)
	if err != nil {
		return nil, err
	}

	count := p.VisitorCount
	if count == 0 {
		count = len(p.Visitors)
	}
	if count < MinVisitors || count > MaxVisitors {
		return nil, ErrVisitorCountRange
	}
	if count != len(p.Visitors) {
		return nil, ErrVisitorCountMismatch
	}

	visitors := make([]VisitorDetail, 0, len(p.Visitors))
	for i, vp := range p.Visitors {
		v, err := NewVisitorDetail(vp.Name, vp.IDNumber, vp.IDType, vp.Age)
		if err != nil {
			return nil, fmt.Errorf("visitor %d: %w", i+1, err)
		}
		visitors = append(visitors, v)
	}

	return &Request{
		visitorName: name,
		idNumber:    idNumber,
		idType:      idType,
		contact:     strings.TrimSpace(p.Contact),
		museum:      p.Museum,
		visitDate:   visitDate,
		timeSlot:    slot,
		visitors:    visitors,
	}, nil
}

func validateIDNumber(idNumber string, idType IDType) error {
	if idNumber == "" {
		return ErrInvalidIDNumber
	}
	if idType == IDTypeIDCard && !ValidIDCardNumber(idNumber) {
		return ErrInvalidIDNumber
	}
	return nil
}

func (r *Request) VisitorName() string  { return r.visitorName }
func (r *Request) IDNumber() string     { return r.idNumber }
func (r *Request) IDType() IDType       { return r.idType }
func (r *Request) Contact() string      { return r.contact }
func (r *Request) Museum() Museum       { return r.museum }
func (r *Request) VisitDate() time.Time { return r.visitDate }
func (r *Request) TimeSlot() TimeSlot   { return r.timeSlot }
func (r *Request) VisitorCount() int    { return len(r.visitors) }

func (r *Request) VisitDateString() string {
	return r.visitDate.Format(visitDateLayout)
}

func (r *Request) Visitors() []VisitorDetail {
	out := make([]VisitorDetail, len(r.visitors))
	copy(out, r.visitors)
	return out
}

// Params returns the request in its constructor form, for snapshots.
func (r *Request) Params() RequestParams {
	visitors := make([]VisitorParams, len(r.visitors))
	for i, v := range r.visitors {
		visitors[i] = VisitorParams{Name: v.name, IDNumber: v.idNumber, IDType: v.idType, Age: v.age}
	}
	return RequestParams{
		VisitorName:  r.visitorName,
		IDNumber:     r.idNumber,
		IDType:       r.idType,
		Contact:      r.contact,
		Museum:       r.museum,
		VisitDate:    r.VisitDateString(),
		TimeSlot:     r.timeSlot.String(),
		VisitorCount: len(r.visitors),
		Visitors:     visitors,
	}
}

// MaskedIDNumber keeps the first 6 and last 4 characters, for logs and operator views.
func MaskedIDNumber(id string) string {
	if len(id) <= 10 {
		return strings.Repeat("*", len(id))
	}
	return id[:6] + strings.Repeat("*", len(id)-10) + id[len(id)-4:]
}
