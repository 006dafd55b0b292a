package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

const DefaultOfficialAddress = "UQDwWm6EWph_L4suX5o7tC4KQZYr3rTN_rWiuP7gd8U3AMC5"

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Payment    PaymentConfig
	Ledger     LedgerConfig
	Reconciler ReconcilerConfig
	Notifier   NotifierConfig
	Rewards    RewardsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"720h"`
}

// PaymentConfig describes what a premium purchase costs and where it is paid.
type PaymentConfig struct {
	Destination     string          `envconfig:"TON_DEST_ADDRESS"`
	OfficialOnly    bool            `envconfig:"OFFICIAL_ONLY" default:"false"`
	OfficialAddress string          `envconfig:"OFFICIAL_TON_ADDRESS" default:"UQDwWm6EWph_L4suX5o7tC4KQZYr3rTN_rWiuP7gd8U3AMC5"`
	PriceTON        decimal.Decimal `envconfig:"PREMIUM_PRICE_TON" default:"1.0"`
	PremiumPeriod   time.Duration   `envconfig:"PREMIUM_PERIOD" default:"720h"`
	CodePrefix      string          `envconfig:"ORDER_CODE_PREFIX" default:"BHEK"`
	OrderRetention  time.Duration   `envconfig:"ORDER_RETENTION" default:"24h"`
}

type LedgerConfig struct {
	APIURL     string        `envconfig:"TONCENTER_API" default:"https://toncenter.com/api/v2"`
	APIKey     string        `envconfig:"TONCENTER_API_KEY"`
	FetchLimit int           `envconfig:"LEDGER_FETCH_LIMIT" default:"40"`
	Timeout    time.Duration `envconfig:"LEDGER_TIMEOUT" default:"20s"`
}

type ReconcilerConfig struct {
	StartupDelay time.Duration `envconfig:"RECONCILER_STARTUP_DELAY" default:"3s"`
	Interval     time.Duration `envconfig:"RECONCILER_INTERVAL" default:"15s"`
	IdleInterval time.Duration `envconfig:"RECONCILER_IDLE_INTERVAL" default:"12s"`
}

type NotifierConfig struct {
	WebhookURL    string        `envconfig:"NOTIFY_WEBHOOK_URL"`
	WebhookSecret string        `envconfig:"NOTIFY_WEBHOOK_SECRET"`
	RatePerSecond float64       `envconfig:"NOTIFY_RATE_PER_SECOND" default:"25"`
	PollInterval  time.Duration `envconfig:"NOTIFY_POLL_INTERVAL" default:"2s"`
	BatchSize     int32         `envconfig:"NOTIFY_BATCH_SIZE" default:"10"`
	MaxAttempts   int32         `envconfig:"NOTIFY_MAX_ATTEMPTS" default:"5"`
	Timeout       time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"5s"`
	Lease         time.Duration `envconfig:"NOTIFY_LEASE" default:"2m"`
}

type RewardsConfig struct {
	ClaimPoints      int64 `envconfig:"CLAIM_POINTS" default:"10"`
	LeaderboardLimit int32 `envconfig:"LEADERBOARD_LIMIT" default:"10"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// ResolveDestination applies OFFICIAL_ONLY: the official address wins over
// whatever TON_DEST_ADDRESS says.
func (c *PaymentConfig) ResolveDestination() (string, error) {
	if c.OfficialOnly {
		if c.Destination != "" && c.Destination != c.OfficialAddress {
			slog.Warn("OFFICIAL_ONLY is on, overriding TON_DEST_ADDRESS with OFFICIAL_TON_ADDRESS")
		}
		c.Destination = c.OfficialAddress
	}
	if c.Destination == "" {
		return "", fmt.Errorf("TON_DEST_ADDRESS is empty (or set OFFICIAL_ONLY=1 with OFFICIAL_TON_ADDRESS)")
	}
	if !c.PriceTON.IsPositive() {
		return "", fmt.Errorf("PREMIUM_PRICE_TON must be positive, got %s", c.PriceTON)
	}
	return c.Destination, nil
}

func LoadConfig() (Config, error) {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded, relying on process environment")
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if _, err := cfg.Payment.ResolveDestination(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 4,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Payment: PaymentConfig{
			Destination:     "EQTestDestination",
			OfficialAddress: DefaultOfficialAddress,
			PriceTON:        decimal.NewFromInt(1),
			PremiumPeriod:   30 * 24 * time.Hour,
			CodePrefix:      "BHEK",
			OrderRetention:  24 * time.Hour,
		},
		Ledger: LedgerConfig{
			APIURL:     "http://127.0.0.1:0",
			FetchLimit: 40,
			Timeout:    2 * time.Second,
		},
		Reconciler: ReconcilerConfig{
			StartupDelay: 0,
			Interval:     50 * time.Millisecond,
			IdleInterval: 50 * time.Millisecond,
		},
		Notifier: NotifierConfig{
			RatePerSecond: 1000,
			PollInterval:  50 * time.Millisecond,
			BatchSize:     10,
			MaxAttempts:   3,
			Timeout:       time.Second,
			Lease:         time.Minute,
		},
		Rewards: RewardsConfig{
			ClaimPoints:      10,
			LeaderboardLimit: 10,
		},
	}
}
