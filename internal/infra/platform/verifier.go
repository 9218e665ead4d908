package platform

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"museum-booking/internal/usecase/shared"
)

var foundKeys = []string{"found", "exists", "verified", "valid"}

// Verifier looks a booking up on the platform's query endpoints. Every
// failure mode reads as not found.
type Verifier struct {
	client  *Client
	paths   []string
	profile HeaderProfile
	logger  *slog.Logger
}

func NewVerifier(client *Client, paths []string, profile HeaderProfile, logger *slog.Logger) *Verifier {
	return &Verifier{client: client, paths: paths, profile: profile, logger: logger}
}

func (v *Verifier) Lookup(ctx context.Context, target shared.VerificationTarget) bool {
	body, err := json.Marshal(map[string]string{
		"bookingId":   target.BookingID,
		"visitorName": target.VisitorName,
		"idNumber":    target.IDNumber,
	})
	if err != nil {
		return false
	}
	query := url.Values{}
	query.Set("bookingId", target.BookingID)
	query.Set("visitorName", target.VisitorName)
	query.Set("idNumber", target.IDNumber)

	for _, path := range v.paths {
		if strings.TrimSpace(path) == "" {
			continue
		}
		if v.ask(ctx, http.MethodPost, path, nil, body, target) || v.ask(ctx, http.MethodGet, path, query, nil, target) {
			v.logger.Info("booking found on platform", slog.String("endpoint", path), slog.String("booking_id", target.BookingID))
			return true
		}
	}
	return false
}

func (v *Verifier) ask(ctx context.Context, method, path string, query url.Values, body []byte, target shared.VerificationTarget) bool {
	contentType := ""
	if body != nil {
		contentType = JSONEncoder{}.ContentType()
	}
	resp, err := v.client.Do(ctx, method, path, query, v.profile, contentType, body)
	if err != nil {
		v.logger.Debug("verification request failed", slog.String("endpoint", path), slog.String("method", method), slog.String("error", err.Error()))
		return false
	}
	if !resp.OK() {
		return false
	}
	return foundInResponse(resp, target.BookingID)
}

// foundInResponse accepts an explicit found flag, a confirmed status, or the
// platform echoing the same booking identifier back.
func foundInResponse(resp Response, bookingID string) bool {
	if strings.Contains(strings.ToLower(resp.ContentType), "html") {
		out := HTMLMarkerParser{Markers: DefaultHTMLMarkers()}.Parse(resp.ContentType, resp.Body)
		return out.Success && (out.BookingID == "" || out.BookingID == bookingID)
	}

	var root map[string]any
	if err := json.Unmarshal(resp.Body, &root); err != nil {
		return false
	}
	scopes := []map[string]any{normalizeKeys(root)}
	if nested, ok := scopes[0]["data"].(map[string]any); ok {
		scopes = append(scopes, normalizeKeys(nested))
	}
	for _, s := range scopes {
		for _, k := range foundKeys {
			if b, ok := s[k].(bool); ok {
				return b
			}
		}
		if st, ok := s["status"].(string); ok && containsFold(successStatuses, st) {
			return true
		}
		if id := firstScalar(s, bookingIDKeys); id != "" && id == bookingID {
			return true
		}
	}
	return false
}
