package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, endpoint candidates, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	Redis        RedisConfig
	AMQP         AMQPConfig
	CORS         CORSConfig
	Log          LogConfig
	Platform     PlatformConfig
	Release      ReleaseConfig
	Browser      BrowserConfig
	Manual       ManualConfig
	Verification VerificationConfig
}

type ServerConfig struct {
	Port           string        `envconfig:"PORT" default:"8080"`
	PublicURL      string        `envconfig:"PUBLIC_URL" default:"http://localhost:8080"`
	AttemptTimeout time.Duration `envconfig:"ATTEMPT_TIMEOUT" default:"3m"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Shanghai"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// empty URL disables operator notifications
type AMQPConfig struct {
	URL         string `envconfig:"RABBITMQ_URL"`
	ManualQueue string `envconfig:"RABBITMQ_MANUAL_QUEUE" default:"booking.manual_required"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Shanghai"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"28800"` // 8*60*60
}

// Endpoint lists are best guesses of the platform's routes and are meant to be
// replaced once the real contract is known.
type PlatformConfig struct {
	BaseURL              string        `envconfig:"PLATFORM_BASE_URL"`
	BookingPaths         []string      `envconfig:"PLATFORM_BOOKING_PATHS" default:"/api/booking/create,/api/appointment/submit,/api/reservation"`
	MobilePaths          []string      `envconfig:"PLATFORM_MOBILE_PATHS" default:"/mobile/api/booking,/app/api/v1/appointment"`
	WeChatPaths          []string      `envconfig:"PLATFORM_WECHAT_PATHS" default:"/wx/api/booking,/miniprogram/api/appointment"`
	VerifyPaths          []string      `envconfig:"PLATFORM_VERIFY_PATHS" default:"/api/booking/query,/api/appointment/detail"`
	PagePaths            []string      `envconfig:"PLATFORM_PAGE_PATHS" default:"/booking,/reservation,/"`
	RequestTimeout       time.Duration `envconfig:"PLATFORM_REQUEST_TIMEOUT" default:"15s"`
	RatePerSec           float64       `envconfig:"PLATFORM_RATE_PER_SEC" default:"5"`
	RateBurst            int           `envconfig:"PLATFORM_RATE_BURST" default:"5"`
	AcceptLanguage       string        `envconfig:"PLATFORM_ACCEPT_LANGUAGE" default:"zh-CN,zh;q=0.9,en;q=0.8"`
	ImpersonationEnabled bool          `envconfig:"PLATFORM_IMPERSONATION_ENABLED" default:"false"`
}

type ReleaseConfig struct {
	Time           string        `envconfig:"PLATFORM_RELEASE_TIME" default:"17:00"`
	TimeZone       string        `envconfig:"PLATFORM_RELEASE_TZ" default:"Asia/Shanghai"`
	TimeZoneOffset int           `envconfig:"PLATFORM_RELEASE_TZ_OFFSET" default:"28800"`
	Window         time.Duration `envconfig:"PLATFORM_RELEASE_WINDOW" default:"5m"`
}

type BrowserConfig struct {
	Enabled           bool          `envconfig:"BROWSER_ENABLED" default:"true"`
	Headless          bool          `envconfig:"BROWSER_HEADLESS" default:"true"`
	StealthEnabled    bool          `envconfig:"BROWSER_STEALTH_ENABLED" default:"false"`
	ExecPath          string        `envconfig:"BROWSER_EXEC_PATH"`
	StepTimeout       time.Duration `envconfig:"BROWSER_STEP_TIMEOUT" default:"20s"`
	TotalTimeout      time.Duration `envconfig:"BROWSER_TOTAL_TIMEOUT" default:"90s"`
	NavigationRetries int           `envconfig:"BROWSER_NAVIGATION_RETRIES" default:"2"`
	MinDelay          time.Duration `envconfig:"BROWSER_MIN_DELAY" default:"150ms"`
	MaxDelay          time.Duration `envconfig:"BROWSER_MAX_DELAY" default:"600ms"`
}

type ManualConfig struct {
	Deadline time.Duration `envconfig:"MANUAL_DEADLINE" default:"30m"`
}

type VerificationConfig struct {
	Store   string        `envconfig:"VERIFICATION_STORE" default:"postgres"`
	Timeout time.Duration `envconfig:"VERIFICATION_TIMEOUT" default:"15s"`
}

const (
	VerificationStorePostgres = "postgres"
	VerificationStoreRedis    = "redis"

	mockPlatformPath = "/mock"
)

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// MockPlatformEnabled reports whether the bundled mock platform stands in for
// the real booking site.
func (c Config) MockPlatformEnabled() bool {
	return strings.TrimSpace(c.Platform.BaseURL) == ""
}

func (c Config) PlatformBaseURL() string {
	if c.MockPlatformEnabled() {
		return strings.TrimRight(c.Server.PublicURL, "/") + mockPlatformPath
	}
	return strings.TrimRight(strings.TrimSpace(c.Platform.BaseURL), "/")
}

func (c ReleaseConfig) Location() *time.Location {
	return time.FixedZone(c.TimeZone, c.TimeZoneOffset)
}

// ReleaseClock parses Time as HH:MM.
func (c ReleaseConfig) ReleaseClock() (hour, minute int, err error) {
	t, err := time.Parse("15:04", strings.TrimSpace(c.Time))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid PLATFORM_RELEASE_TIME %q: %w", c.Time, err)
	}
	return t.Hour(), t.Minute(), nil
}

func (c Config) Validate() error {
	if _, _, err := c.Release.ReleaseClock(); err != nil {
		return err
	}
	if c.Release.Window <= 0 {
		return fmt.Errorf("PLATFORM_RELEASE_WINDOW must be positive, got %s", c.Release.Window)
	}
	switch c.Verification.Store {
	case VerificationStorePostgres, VerificationStoreRedis:
	default:
		return fmt.Errorf("unsupported VERIFICATION_STORE %q", c.Verification.Store)
	}
	if c.Browser.MaxDelay < c.Browser.MinDelay {
		return fmt.Errorf("BROWSER_MAX_DELAY (%s) is below BROWSER_MIN_DELAY (%s)", c.Browser.MaxDelay, c.Browser.MinDelay)
	}
	if c.Platform.RatePerSec <= 0 || c.Platform.RateBurst <= 0 {
		return fmt.Errorf("platform rate limit must be positive")
	}
	return nil
}

func LoadConfig() (Config, error) {
	// .env is optional; real environments inject variables directly
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadReleaseConfig reads only the release window settings, for tools that
// must work without database credentials.
func LoadReleaseConfig() (ReleaseConfig, error) {
	_ = godotenv.Load()

	var rc ReleaseConfig
	if err := envconfig.Process("", &rc); err != nil {
		return ReleaseConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if _, _, err := rc.ReleaseClock(); err != nil {
		return ReleaseConfig{}, err
	}
	return rc, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:           "8889", // Test port
			PublicURL:      "http://localhost:8889",
			AttemptTimeout: 30 * time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Shanghai",
		},
		Redis: RedisConfig{Addr: "localhost:16379"},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Shanghai",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 28800,
		},
		Platform: PlatformConfig{
			BookingPaths:   []string{"/api/booking/create"},
			MobilePaths:    []string{"/mobile/api/booking"},
			WeChatPaths:    []string{"/wx/api/booking"},
			VerifyPaths:    []string{"/api/booking/query"},
			PagePaths:      []string{"/booking"},
			RequestTimeout: 2 * time.Second,
			RatePerSec:     100,
			RateBurst:      100,
			AcceptLanguage: "zh-CN,zh;q=0.9",
		},
		Release: ReleaseConfig{
			Time:           "17:00",
			TimeZone:       "Asia/Shanghai",
			TimeZoneOffset: 28800,
			Window:         5 * time.Minute,
		},
		Browser: BrowserConfig{
			Enabled:           false,
			Headless:          true,
			StepTimeout:       5 * time.Second,
			TotalTimeout:      20 * time.Second,
			NavigationRetries: 1,
			MinDelay:          0,
			MaxDelay:          0,
		},
		Manual:       ManualConfig{Deadline: 30 * time.Minute},
		Verification: VerificationConfig{Store: VerificationStorePostgres, Timeout: 2 * time.Second},
	}
}
