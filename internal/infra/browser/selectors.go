package browser

import "museum-booking/internal/infra/platform"

// Selectors lists CSS candidates per form field, tried in order.
type Selectors struct {
	VisitorName  []string
	IDNumber     []string
	IDType       []string
	Museum       []string
	VisitDate    []string
	TimeSlot     []string
	VisitorCount []string
	Submit       []string
	Result       platform.HTMLMarkers
}

func DefaultSelectors() Selectors {
	return Selectors{
		VisitorName: []string{
			"#visitorName", "input[name=visitorName]", "input[name=name]", "#name", "input[placeholder*='姓名']",
		},
		IDNumber: []string{
			"#idNumber", "input[name=idNumber]", "input[name=idCard]", "input[name=id_number]", "input[placeholder*='证件']",
		},
		IDType: []string{
			"#idType", "select[name=idType]", "select[name=certType]",
		},
		Museum: []string{
			"#museum", "select[name=museum]", "select[name=venue]", "input[name=museum]",
		},
		VisitDate: []string{
			"#visitDate", "input[name=visitDate]", "input[type=date]", "input[name=date]",
		},
		TimeSlot: []string{
			"#timeSlot", "select[name=timeSlot]", "select[name=period]", "input[name=timeSlot]",
		},
		VisitorCount: []string{
			"#visitorCount", "input[name=visitorCount]", "select[name=visitorCount]",
		},
		Submit: []string{
			"#submit-booking", "button[type=submit]", "input[type=submit]", ".submit-btn", "button.btn-primary",
		},
		Result: platform.DefaultHTMLMarkers(),
	}
}
