package browser

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"museum-booking/internal/domain/booking"
	"museum-booking/internal/pkg/clock"
	"museum-booking/internal/pkg/config"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const resultPollInterval = 250 * time.Millisecond

type Options struct {
	Config    config.BrowserConfig
	BaseURL   string
	PagePaths []string
	Selectors Selectors
	Clock     clock.Clock
	Logger    *slog.Logger
}

// Strategy drives the platform's booking page in a real Chrome instance.
// Every Attempt owns its own browser process.
type Strategy struct {
	cfg       config.BrowserConfig
	baseURL   string
	pages     []string
	selectors Selectors
	jitter    *jitter
	clock     clock.Clock
	logger    *slog.Logger
}

func NewStrategy(opts Options) *Strategy {
	if opts.Selectors.Submit == nil {
		opts.Selectors = DefaultSelectors()
	}
	pages := make([]string, 0, len(opts.PagePaths))
	for _, p := range opts.PagePaths {
		if p = strings.TrimSpace(p); p != "" {
			pages = append(pages, p)
		}
	}
	return &Strategy{
		cfg:       opts.Config,
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		pages:     pages,
		selectors: opts.Selectors,
		jitter:    newJitter(uint64(opts.Clock.Now().UnixNano()), opts.Config.MinDelay, opts.Config.MaxDelay),
		clock:     opts.Clock,
		logger:    opts.Logger.With(slog.String("tier", booking.ProvenanceBrowser.String())),
	}
}

func (s *Strategy) Name() booking.Provenance {
	return booking.ProvenanceBrowser
}

func (s *Strategy) Attempt(ctx context.Context, req *booking.Request) *booking.AttemptResult {
	if s.cfg.TotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.TotalTimeout)
		defer cancel()
	}

	fp := s.jitter.fingerprint()
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, s.allocatorOptions(fp)...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	chromedp.ListenTarget(browserCtx, func(ev interface{}) {
		if e, ok := ev.(*page.EventJavascriptDialogOpening); ok {
			s.logger.Debug("accepting native dialog", slog.String("message", e.Message))
			go func() {
				_ = chromedp.Run(browserCtx, chromedp.ActionFunc(func(c context.Context) error {
					return page.HandleJavaScriptDialog(true).Do(c)
				}))
			}()
		}
	})

	if err := chromedp.Run(browserCtx, s.prepare()...); err != nil {
		return s.fail(fmt.Sprintf("browser start failed: %v", err))
	}

	pageURL, err := s.openBookingPage(browserCtx)
	if err != nil {
		return s.fail(err.Error())
	}
	s.logger.Info("booking page opened",
		slog.String("url", pageURL),
		slog.String("user_agent", fp.UserAgent))

	if err := s.fillForm(browserCtx, req); err != nil {
		return s.fail(err.Error())
	}

	if err := s.submit(browserCtx); err != nil {
		return s.fail(err.Error())
	}

	res, err := s.awaitResult(browserCtx)
	if err != nil {
		return s.fail(err.Error())
	}
	if res.State != "success" {
		return s.fail("platform rejected booking: " + strings.TrimSpace(res.Message))
	}

	s.logger.Info("browser booking succeeded",
		slog.String("booking_id", res.BookingID))
	return booking.NewSuccess(booking.ProvenanceBrowser, res.BookingID, res.ConfirmationCode, s.clock.Now())
}

func (s *Strategy) allocatorOptions(fp fingerprint) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", s.cfg.Headless),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.UserAgent(fp.UserAgent),
		chromedp.WindowSize(fp.Width, fp.Height),
	)
	if s.cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(s.cfg.ExecPath))
	}
	return opts
}

func (s *Strategy) prepare() []chromedp.Action {
	if !s.cfg.StealthEnabled {
		return nil
	}
	return []chromedp.Action{
		chromedp.ActionFunc(func(c context.Context) error {
			_, err := page.AddScriptToEvaluateOnNewDocument(stealthScript).Do(c)
			return err
		}),
	}
}

// openBookingPage returns the first candidate page that loads and shows a
// visitor name field.
func (s *Strategy) openBookingPage(ctx context.Context) (string, error) {
	if len(s.pages) == 0 {
		return "", fmt.Errorf("no booking page candidates configured")
	}
	var failures []string
	for _, p := range s.pages {
		target := s.baseURL + p
		for try := 0; try <= s.cfg.NavigationRetries; try++ {
			if ctx.Err() != nil {
				return "", fmt.Errorf("browser session expired: %w", ctx.Err())
			}
			err := s.step(ctx, chromedp.Navigate(target))
			if err == nil {
				var present bool
				err = s.step(ctx, chromedp.Evaluate(buildFormPresentScript(s.selectors.VisitorName), &present))
				if err == nil && present {
					return target, nil
				}
				if err == nil {
					err = fmt.Errorf("booking form not found")
				}
			}
			s.logger.Warn("booking page failed to load",
				slog.String("url", target),
				slog.Int("try", try+1),
				slog.String("error", err.Error()))
			failures = append(failures, fmt.Sprintf("%s: %v", p, err))
			s.pause(ctx)
		}
	}
	return "", fmt.Errorf("no booking page reachable: %s", strings.Join(failures, "; "))
}

type formField struct {
	name      string
	selectors []string
	values    []string
	required  bool
}

func (s *Strategy) formFields(req *booking.Request) []formField {
	slot := req.TimeSlot()
	padded := fmt.Sprintf("%02d:%02d-%02d:%02d",
		slot.StartMinute()/60, slot.StartMinute()%60, slot.EndMinute()/60, slot.EndMinute()%60)
	return []formField{
		{name: "visitor name", selectors: s.selectors.VisitorName, values: []string{req.VisitorName()}, required: true},
		{name: "id type", selectors: s.selectors.IDType, values: idTypeLabels(req.IDType())},
		{name: "id number", selectors: s.selectors.IDNumber, values: []string{req.IDNumber()}, required: true},
		{name: "museum", selectors: s.selectors.Museum, values: []string{req.Museum().String(), req.Museum().DisplayName()}},
		{name: "visit date", selectors: s.selectors.VisitDate, values: []string{req.VisitDateString()}},
		{name: "time slot", selectors: s.selectors.TimeSlot, values: []string{slot.String(), padded}},
		{name: "visitor count", selectors: s.selectors.VisitorCount, values: []string{strconv.Itoa(req.VisitorCount())}},
	}
}

func idTypeLabels(t booking.IDType) []string {
	switch t {
	case booking.IDTypePassport:
		return []string{t.String(), "护照", "2"}
	case booking.IDTypeOther:
		return []string{t.String(), "其他", "9"}
	default:
		return []string{t.String(), "身份证", "1"}
	}
}

func (s *Strategy) fillForm(ctx context.Context, req *booking.Request) error {
	for _, f := range s.formFields(req) {
		var matched string
		if err := s.step(ctx, chromedp.Evaluate(buildFillScript(f.selectors, f.values...), &matched)); err != nil {
			return fmt.Errorf("fill %s: %w", f.name, err)
		}
		if matched == "" {
			if f.required {
				return fmt.Errorf("booking form has no %s field", f.name)
			}
			s.logger.Debug("optional field not present", slog.String("field", f.name))
			continue
		}
		s.pause(ctx)
	}
	return nil
}

func (s *Strategy) submit(ctx context.Context) error {
	var matched string
	if err := s.step(ctx, chromedp.Evaluate(buildClickScript(s.selectors.Submit), &matched)); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	if matched == "" {
		return fmt.Errorf("booking form has no submit control")
	}
	return nil
}

// awaitResult polls the page until a success or error marker appears or the
// step timeout passes. Evaluation errors during navigation are retried.
func (s *Strategy) awaitResult(ctx context.Context) (pageResult, error) {
	script := buildResultScript(s.selectors)
	waitCtx := ctx
	if s.cfg.StepTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, s.cfg.StepTimeout)
		defer cancel()
	}

	ticker := time.NewTicker(resultPollInterval)
	defer ticker.Stop()
	for {
		var res pageResult
		if err := chromedp.Run(waitCtx, chromedp.Evaluate(script, &res)); err == nil && res.State != "" && res.State != "pending" {
			return res, nil
		}
		select {
		case <-waitCtx.Done():
			return pageResult{}, fmt.Errorf("no booking result shown before timeout")
		case <-ticker.C:
		}
	}
}

func (s *Strategy) step(ctx context.Context, actions ...chromedp.Action) error {
	if s.cfg.StepTimeout <= 0 {
		return chromedp.Run(ctx, actions...)
	}
	stepCtx, cancel := context.WithTimeout(ctx, s.cfg.StepTimeout)
	defer cancel()
	return chromedp.Run(stepCtx, actions...)
}

func (s *Strategy) pause(ctx context.Context) {
	d := s.jitter.delay()
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func (s *Strategy) fail(detail string) *booking.AttemptResult {
	s.logger.Warn("browser booking failed", slog.String("reason", detail))
	return booking.NewFailure(booking.ProvenanceBrowser, detail, s.clock.Now())
}
