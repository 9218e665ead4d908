package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"museum-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	RequestIDHeader = "X-Request-ID"
	// set by the operator console on manual completion calls
	OperatorHeader = "X-Operator"

	requestIDKey = "request_id"
	logAttrsKey  = "log_attrs"
)

// probes and scrapes are logged at debug so they do not drown booking traffic
var quietPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

type Logger struct {
	logger   *slog.Logger
	timezone *time.Location
}

func NewLogger(cfg config.LogConfig) *Logger {
	level, ok := levels[strings.ToLower(cfg.Level)]
	if !ok {
		level = slog.LevelInfo
	}
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key != slog.TimeKey {
				return a
			}
			if t, ok := a.Value.Any().(time.Time); ok {
				a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
			}
			return a
		},
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return &Logger{logger: logger, timezone: timezone}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

// LoggingMiddleware assigns a request ID (honouring an inbound X-Request-ID)
// and writes one completion line per request. Handlers add fields to that line
// with AddLogAttrs.
func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = l.newRequestID(start)
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(start)),
		}
		if operator := c.GetHeader(OperatorHeader); operator != "" {
			attrs = append(attrs, slog.String("operator", operator))
		}
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if extra, ok := c.Get(logAttrsKey); ok {
			attrs = append(attrs, extra.([]slog.Attr)...)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		l.logger.LogAttrs(c.Request.Context(), completionLevel(c.Request.URL.Path, status), "request completed", attrs...)
	}
}

func completionLevel(path string, status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	}
	if _, quiet := quietPaths[path]; quiet {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// AddLogAttrs attaches fields to the request's completion log line.
func AddLogAttrs(c *gin.Context, attrs ...slog.Attr) {
	var existing []slog.Attr
	if v, ok := c.Get(logAttrsKey); ok {
		existing = v.([]slog.Attr)
	}
	c.Set(logAttrsKey, append(existing, attrs...))
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func (l *Logger) newRequestID(now time.Time) string {
	timestamp := now.In(l.timezone).Format("20060102150405")
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%s-%08x", timestamp, now.UnixNano()&0xffffffff)
	}
	return timestamp + "-" + hex.EncodeToString(b)
}
