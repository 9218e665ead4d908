package platform

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"museum-booking/internal/domain/booking"
	"museum-booking/internal/pkg/clock"
)

// Endpoint is one candidate booking route.
type Endpoint struct {
	Method string
	Path   string
}

func Endpoints(paths []string) []Endpoint {
	out := make([]Endpoint, 0, len(paths))
	for _, p := range paths {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, Endpoint{Method: http.MethodPost, Path: p})
		}
	}
	return out
}

// HTTPStrategy is the shared executor behind every API-shaped tier. Tiers
// differ only in their endpoints, encoder, parser and header profile.
type HTTPStrategy struct {
	name      booking.Provenance
	client    *Client
	endpoints []Endpoint
	encoder   PayloadEncoder
	parser    ResponseParser
	profile   HeaderProfile
	// pages fetched first to pick up session cookies; empty disables the warm-up
	warmup []string
	clock  clock.Clock
	logger *slog.Logger
}

type HTTPStrategyOptions struct {
	Name      booking.Provenance
	Client    *Client
	Endpoints []Endpoint
	Encoder   PayloadEncoder
	Parser    ResponseParser
	Profile   HeaderProfile
	Warmup    []string
	Clock     clock.Clock
	Logger    *slog.Logger
}

func NewHTTPStrategy(opts HTTPStrategyOptions) *HTTPStrategy {
	if opts.Encoder == nil {
		opts.Encoder = JSONEncoder{}
	}
	if opts.Parser == nil {
		opts.Parser = NewAutoParser()
	}
	return &HTTPStrategy{
		name:      opts.Name,
		client:    opts.Client,
		endpoints: opts.Endpoints,
		encoder:   opts.Encoder,
		parser:    opts.Parser,
		profile:   opts.Profile,
		warmup:    opts.Warmup,
		clock:     opts.Clock,
		logger:    opts.Logger.With(slog.String("tier", opts.Name.String())),
	}
}

func (s *HTTPStrategy) Name() booking.Provenance {
	return s.name
}

func (s *HTTPStrategy) Attempt(ctx context.Context, req *booking.Request) *booking.AttemptResult {
	if len(s.endpoints) == 0 {
		return booking.NewFailure(s.name, "no endpoints configured", s.clock.Now())
	}

	body, err := s.encoder.Encode(NewPayload(req))
	if err != nil {
		return booking.NewFailure(s.name, fmt.Sprintf("encode payload: %v", err), s.clock.Now())
	}

	client := s.client
	if len(s.warmup) > 0 {
		client, err = s.client.WithCookieJar()
		if err != nil {
			return booking.NewFailure(s.name, fmt.Sprintf("cookie jar: %v", err), s.clock.Now())
		}
		s.warmUp(ctx, client)
	}

	reasons := make([]string, 0, len(s.endpoints))
	for _, ep := range s.endpoints {
		outcome, reason := s.try(ctx, client, ep, body)
		if outcome.Success {
			s.logger.Info("platform accepted booking",
				slog.String("endpoint", ep.Path),
				slog.String("booking_id", outcome.BookingID))
			return booking.NewSuccess(s.name, outcome.BookingID, outcome.ConfirmationCode, s.clock.Now())
		}
		s.logger.Debug("endpoint rejected booking", slog.String("endpoint", ep.Path), slog.String("reason", reason))
		reasons = append(reasons, ep.Path+" "+reason)
	}

	return booking.NewFailure(s.name, "all endpoints failed: "+strings.Join(reasons, ", "), s.clock.Now())
}

func (s *HTTPStrategy) try(ctx context.Context, client *Client, ep Endpoint, body []byte) (Outcome, string) {
	resp, err := client.Do(ctx, ep.Method, ep.Path, nil, s.profile, s.encoder.ContentType(), body)
	if err != nil {
		return Outcome{}, fmt.Sprintf("(transport: %v)", err)
	}
	if !resp.OK() {
		return Outcome{}, fmt.Sprintf("(status %d)", resp.Status)
	}
	outcome := s.parser.Parse(resp.ContentType, resp.Body)
	if !outcome.Success {
		return outcome, "(" + outcome.Detail + ")"
	}
	return outcome, ""
}

// warmUp stops at the first page that answers 2xx. Failures are not fatal.
func (s *HTTPStrategy) warmUp(ctx context.Context, client *Client) {
	pageProfile := s.profile.With(map[string]string{
		"Accept": "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	})
	for _, page := range s.warmup {
		resp, err := client.Do(ctx, http.MethodGet, page, nil, pageProfile, "", nil)
		if err == nil && resp.OK() {
			s.logger.Debug("session warmed up", slog.String("page", page))
			return
		}
	}
	s.logger.Debug("no booking page answered during warm-up")
}
