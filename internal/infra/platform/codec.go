package platform

import (
	"encoding/json"
	"net/url"
	"strconv"

	"museum-booking/internal/domain/booking"
)

type VisitorPayload struct {
	Name     string `json:"name"`
	IDNumber string `json:"idNumber"`
	IDType   string `json:"idType"`
	Age      *int   `json:"age,omitempty"`
}

// Payload mirrors the booking fields the platform's forms collect.
type Payload struct {
	VisitorName  string           `json:"visitorName"`
	IDNumber     string           `json:"idNumber"`
	IDType       string           `json:"idType"`
	Contact      string           `json:"contact,omitempty"`
	Museum       string           `json:"museum"`
	VisitDate    string           `json:"visitDate"`
	TimeSlot     string           `json:"timeSlot"`
	VisitorCount int              `json:"visitorCount"`
	Visitors     []VisitorPayload `json:"visitors"`
}

func NewPayload(req *booking.Request) Payload {
	visitors := req.Visitors()
	p := Payload{
		VisitorName:  req.VisitorName(),
		IDNumber:     req.IDNumber(),
		IDType:       req.IDType().String(),
		Contact:      req.Contact(),
		Museum:       req.Museum().String(),
		VisitDate:    req.VisitDateString(),
		TimeSlot:     req.TimeSlot().String(),
		VisitorCount: len(visitors),
		Visitors:     make([]VisitorPayload, len(visitors)),
	}
	for i, v := range visitors {
		p.Visitors[i] = VisitorPayload{Name: v.Name(), IDNumber: v.IDNumber(), IDType: v.IDType().String(), Age: v.Age()}
	}
	return p
}

type PayloadEncoder interface {
	ContentType() string
	Encode(p Payload) ([]byte, error)
}

type JSONEncoder struct{}

func (JSONEncoder) ContentType() string { return "application/json;charset=UTF-8" }

func (JSONEncoder) Encode(p Payload) ([]byte, error) {
	return json.Marshal(p)
}

// FormEncoder flattens the payload; visitors travel as a JSON array field.
type FormEncoder struct{}

func (FormEncoder) ContentType() string { return "application/x-www-form-urlencoded; charset=UTF-8" }

func (FormEncoder) Encode(p Payload) ([]byte, error) {
	visitors, err := json.Marshal(p.Visitors)
	if err != nil {
		return nil, err
	}
	v := url.Values{}
	v.Set("visitorName", p.VisitorName)
	v.Set("idNumber", p.IDNumber)
	v.Set("idType", p.IDType)
	if p.Contact != "" {
		v.Set("contact", p.Contact)
	}
	v.Set("museum", p.Museum)
	v.Set("visitDate", p.VisitDate)
	v.Set("timeSlot", p.TimeSlot)
	v.Set("visitorCount", strconv.Itoa(p.VisitorCount))
	v.Set("visitors", string(visitors))
	return []byte(v.Encode()), nil
}
