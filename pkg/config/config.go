package config

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Leaf keys come from split_words under the parent prefix, so Export.Path
// reads EXPORT_PATH only. An envconfig tag also matches the unprefixed name
// (PATH, HOST, PORT) and must not be used on leaf fields.

type DB struct {
	Url     string `split_words:"true"`
	Driver  string `split_words:"true" default:"postgres"`
	Migrate bool   `split_words:"true" default:"true"`
}

type Jwt struct {
	Secret string        `split_words:"true"`
	Expiry time.Duration `split_words:"true" default:"24h"`
}

type Auth struct {
	Jwt         *Jwt          `envconfig:"JWT"`
	PinCost     int           `split_words:"true" default:"10"`
	MaxAttempts int           `split_words:"true" default:"5"`
	Lockout     time.Duration `split_words:"true" default:"15m"`
}

// Redis configures the login attempt store. An empty URL keeps attempts in memory.
type Redis struct {
	URL          string        `split_words:"true"`
	KeyPrefix    string        `split_words:"true" default:"banking:"`
	PoolSize     int           `split_words:"true" default:"10"`
	DialTimeout  time.Duration `split_words:"true" default:"5s"`
	ReadTimeout  time.Duration `split_words:"true" default:"3s"`
	WriteTimeout time.Duration `split_words:"true" default:"3s"`
}

type RateLimit struct {
	MaxRequests int           `split_words:"true" default:"100"`
	Window      time.Duration `split_words:"true" default:"1m"`
}

type Ledger struct {
	DepositLimit decimal.Decimal `split_words:"true" default:"10000"`
	HistoryLimit int             `split_words:"true" default:"10"`
}

// Export configures the customer CSV. POST /admin/export is only mounted
// when AdminToken is set.
type Export struct {
	Path       string `split_words:"true" default:"customers.csv"`
	OnRegister bool   `split_words:"true" default:"true"`
	AdminToken string `split_words:"true"`
}

type Log struct {
	Level      int    `split_words:"true" default:"0"`
	Format     string `split_words:"true" default:"json"`
	TimeFormat string `split_words:"true" default:"2006-01-02 15:04:05"`
	Prefix     string `split_words:"true" default:"[banking]"`
}

type Server struct {
	Scheme string `split_words:"true" default:"http"`
	Host   string `split_words:"true" default:"localhost"`
	Port   int    `split_words:"true" default:"3000"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Auth      *Auth      `envconfig:"AUTH"`
	Redis     *Redis     `envconfig:"REDIS"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Ledger    *Ledger    `envconfig:"LEDGER"`
	Export    *Export    `envconfig:"EXPORT"`
}
