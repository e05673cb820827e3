package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments, security settings
// - default: Values common across all environments (timezone, timings, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Env         string `envconfig:"APP_ENV" default:"development"`
	Server      ServerConfig
	CORS        CORSConfig
	Log         LogConfig
	Pipeline    PipelineConfig
	Idempotency IdempotencyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Paris"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

// PipelineConfig drives the simulated quote-request flow. Defaults give the
// typing, contacting and generating timings the booking UI was designed around.
type PipelineConfig struct {
	TypewriterInterval time.Duration `envconfig:"QUOTE_TYPEWRITER_INTERVAL" default:"72ms"`
	ContactingDelay    time.Duration `envconfig:"QUOTE_CONTACTING_DELAY" default:"2500ms"`
	GeneratingDelay    time.Duration `envconfig:"QUOTE_GENERATING_DELAY" default:"2500ms"`
	FailureProbability float64       `envconfig:"QUOTE_FAILURE_PROBABILITY" default:"0.08"`
	AutoDismissReady   bool          `envconfig:"QUOTE_AUTO_DISMISS_READY" default:"true"`
	SuccessBannerTTL   time.Duration `envconfig:"QUOTE_SUCCESS_BANNER_TTL" default:"3500ms"`
	RemoveFailed       bool          `envconfig:"QUOTE_REMOVE_FAILED" default:"false"`
	BadgePulse         time.Duration `envconfig:"QUOTE_BADGE_PULSE" default:"450ms"`
	RandomSeed         uint64        `envconfig:"QUOTE_RANDOM_SEED" default:"0"` // 0 = seeded from wall clock
	EventBuffer        int           `envconfig:"QUOTE_EVENT_BUFFER" default:"64"`
}

type IdempotencyConfig struct {
	TTL           time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`
	SweepInterval time.Duration `envconfig:"IDEMPOTENCY_SWEEP_INTERVAL" default:"10m"`
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func LoadConfig() (Config, error) {
	if env := os.Getenv("APP_ENV"); env == "" || env == "development" {
		// .env is optional; real environments set variables directly
		_ = godotenv.Load()
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Env: "test",
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Paris",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		Pipeline:    DefaultPipelineConfig(),
		Idempotency: IdempotencyConfig{TTL: 24 * time.Hour, SweepInterval: 10 * time.Minute},
	}
}

func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		TypewriterInterval: 72 * time.Millisecond,
		ContactingDelay:    2500 * time.Millisecond,
		GeneratingDelay:    2500 * time.Millisecond,
		FailureProbability: 0.08,
		AutoDismissReady:   true,
		SuccessBannerTTL:   3500 * time.Millisecond,
		BadgePulse:         450 * time.Millisecond,
		EventBuffer:        64,
	}
}
