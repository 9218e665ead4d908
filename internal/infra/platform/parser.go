package platform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Outcome is what a parser could read from one platform response.
type Outcome struct {
	Success          bool
	BookingID        string
	ConfirmationCode string
	Detail           string
}

type ResponseParser interface {
	Parse(contentType string, body []byte) Outcome
}

var (
	bookingIDKeys    = []string{"bookingid", "bookingno", "bookingref", "orderid", "orderno", "reservationid", "appointmentid", "ticketno"}
	confirmationKeys = []string{"confirmationcode", "confirmcode", "verifycode", "checkcode", "qrcode"}
	messageKeys      = []string{"message", "msg", "error", "errmsg", "detail"}
	errorKeys        = []string{"error", "errmsg", "errorcode"}
	successStatuses  = []string{"success", "ok", "booked", "confirmed", "reserved"}
)

// JSONMarkerParser accepts common envelope shapes: flat objects or a nested
// "data"/"result" object, boolean success flags, zero or 200 codes and status
// strings. A booking identifier on its own also counts as success.
type JSONMarkerParser struct{}

func (JSONMarkerParser) Parse(_ string, body []byte) Outcome {
	var root map[string]any
	if err := json.Unmarshal(body, &root); err != nil {
		return Outcome{Detail: "response is not a JSON object"}
	}

	scopes := []map[string]any{normalizeKeys(root)}
	for _, k := range []string{"data", "result", "booking", "order"} {
		if nested, ok := scopes[0][k].(map[string]any); ok {
			scopes = append(scopes, normalizeKeys(nested))
		}
	}

	var out Outcome
	marker, failed := false, false
	for _, s := range scopes {
		if v, ok := s["success"].(bool); ok {
			marker = marker || v
			failed = failed || !v
		}
		if code, ok := s["code"]; ok {
			switch scalarString(code) {
			case "0", "200", "SUCCESS", "success":
				marker = true
			default:
				failed = true
			}
		}
		if st, ok := s["status"].(string); ok && containsFold(successStatuses, st) {
			marker = true
		}
		if e := firstScalar(s, errorKeys); e != "" && e != "false" && e != "0" {
			failed = true
		}
		if out.BookingID == "" {
			out.BookingID = firstScalar(s, bookingIDKeys)
		}
		if out.ConfirmationCode == "" {
			out.ConfirmationCode = firstScalar(s, confirmationKeys)
		}
		if out.Detail == "" {
			out.Detail = firstScalar(s, messageKeys)
		}
	}

	out.Success = !failed && (marker || out.BookingID != "")
	if !out.Success && out.Detail == "" {
		out.Detail = "no success marker in response"
	}
	return out
}

type HTMLMarkers struct {
	Success      []string
	Error        []string
	BookingID    []string
	Confirmation []string
}

func DefaultHTMLMarkers() HTMLMarkers {
	return HTMLMarkers{
		Success:      []string{"[data-booking-status=success]", "#booking-success", ".booking-success", ".success-message"},
		Error:        []string{"[data-booking-status=failed]", "#booking-error", ".booking-error", ".error-message", ".alert-danger"},
		BookingID:    []string{"[data-booking-id]", "#booking-id", ".booking-id", "#order-no", ".order-no"},
		Confirmation: []string{"[data-confirmation-code]", "#confirmation-code", ".confirmation-code", ".verify-code"},
	}
}

// HTMLMarkerParser reads rendered result pages.
type HTMLMarkerParser struct {
	Markers HTMLMarkers
}

func (p HTMLMarkerParser) Parse(_ string, body []byte) Outcome {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return Outcome{Detail: fmt.Sprintf("unreadable html: %v", err)}
	}

	if sel, ok := firstMatch(doc, p.Markers.Error); ok {
		return Outcome{Detail: "error marker: " + strings.TrimSpace(sel.Text())}
	}

	out := Outcome{
		BookingID:        selectionValue(doc, p.Markers.BookingID, "data-booking-id"),
		ConfirmationCode: selectionValue(doc, p.Markers.Confirmation, "data-confirmation-code"),
	}
	_, marker := firstMatch(doc, p.Markers.Success)
	out.Success = marker || out.BookingID != ""
	if !out.Success {
		out.Detail = "no success marker in page"
	}
	return out
}

// AutoParser picks JSON or HTML parsing from the content type, falling back to
// sniffing the body.
type AutoParser struct {
	JSON ResponseParser
	HTML ResponseParser
}

func NewAutoParser() AutoParser {
	return AutoParser{JSON: JSONMarkerParser{}, HTML: HTMLMarkerParser{Markers: DefaultHTMLMarkers()}}
}

func (p AutoParser) Parse(contentType string, body []byte) Outcome {
	ct := strings.ToLower(contentType)
	trimmed := bytes.TrimSpace(body)
	switch {
	case strings.Contains(ct, "json"), bytes.HasPrefix(trimmed, []byte("{")):
		return p.JSON.Parse(contentType, body)
	case strings.Contains(ct, "html"), bytes.HasPrefix(trimmed, []byte("<")):
		return p.HTML.Parse(contentType, body)
	default:
		return Outcome{Detail: "unrecognised response content type " + contentType}
	}
}

func firstMatch(doc *goquery.Document, selectors []string) (*goquery.Selection, bool) {
	for _, s := range selectors {
		if sel := doc.Find(s).First(); sel.Length() > 0 {
			return sel, true
		}
	}
	return nil, false
}

func selectionValue(doc *goquery.Document, selectors []string, attr string) string {
	for _, s := range selectors {
		sel := doc.Find(s).First()
		if sel.Length() == 0 {
			continue
		}
		if v, ok := sel.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		if v := strings.TrimSpace(sel.Text()); v != "" {
			return v
		}
	}
	return ""
}

func normalizeKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[strings.ToLower(strings.ReplaceAll(k, "_", ""))] = v
	}
	return out
}

func firstScalar(m map[string]any, keys []string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s := scalarString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
