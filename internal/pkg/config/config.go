package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Store   StoreConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Notify  NotifyConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type StoreConfig struct {
	Driver       string `envconfig:"STORE_DRIVER" default:"postgres"`
	MaxTxRetries int    `envconfig:"STORE_MAX_TX_RETRIES" default:"5"`
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

// JWTConfig holds the shared secret of the identity provider that signs caller tokens.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

const (
	NotifyDriverNoop   = "noop"
	NotifyDriverHTTP   = "http"
	NotifyDriverPubSub = "pubsub"
	NotifyDriverQueue  = "queue"
)

type NotifyConfig struct {
	Driver                string        `envconfig:"NOTIFY_DRIVER" default:"noop"`
	HTTPURL               string        `envconfig:"NOTIFY_HTTP_URL"`
	HTTPAuthHeader        string        `envconfig:"NOTIFY_HTTP_AUTH_HEADER"`
	HTTPTimeout           time.Duration `envconfig:"NOTIFY_HTTP_TIMEOUT" default:"10s"`
	PubSubProjectID       string        `envconfig:"PUBSUB_PROJECT_ID"`
	PubSubTopic           string        `envconfig:"PUBSUB_TOPIC" default:"push-notifications"`
	PubSubCredentialsJSON string        `envconfig:"PUBSUB_CREDENTIALS_JSON"`
	RedisAddr             string        `envconfig:"REDIS_ADDRESS" default:"localhost:6379"`
	RedisPassword         string        `envconfig:"REDIS_PASSWORD"`
	RedisDB               int           `envconfig:"REDIS_DB" default:"0"`
	WorkerConcurrency     int           `envconfig:"NOTIFY_WORKER_CONCURRENCY" default:"4"`
}

type BookingConfig struct {
	FanoutTimeout     time.Duration `envconfig:"BOOKING_FANOUT_TIMEOUT" default:"15s"`
	FanoutConcurrency int           `envconfig:"BOOKING_FANOUT_CONCURRENCY" default:"8"`
	TaskDueAfter      time.Duration `envconfig:"BOOKING_TASK_DUE_AFTER" default:"24h"`
	TaskPriority      string        `envconfig:"BOOKING_TASK_PRIORITY" default:"high"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environments inject variables directly
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Store.Driver == StoreDriverPostgres && (cfg.DB.User == "" || cfg.DB.DBName == "") {
		return Config{}, fmt.Errorf("DB_USER and DB_NAME are required when STORE_DRIVER=%s", StoreDriverPostgres)
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
			MaxConns: 10,
		},
		Store: StoreConfig{
			Driver:       StoreDriverMemory,
			MaxTxRetries: 5,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders: []string{"Authorization", "Content-Type"},
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Notify: NotifyConfig{
			Driver: NotifyDriverNoop,
		},
		Booking: BookingConfig{
			FanoutTimeout:     5 * time.Second,
			FanoutConcurrency: 4,
			TaskDueAfter:      24 * time.Hour,
			TaskPriority:      "high",
		},
	}
}
