package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - empty default: optional integrations (Redis, NATS, MQTT) that are disabled when unset
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Command   CommandConfig
	Threshold ThresholdConfig
	Alert     AlertConfig
	Redis     RedisConfig
	NATS      NATSConfig
	MQTT      MQTTConfig
	RateLimit RateLimitConfig
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
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-API-Key"`
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
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CommandConfig struct {
	DefaultTTL          time.Duration `envconfig:"COMMAND_DEFAULT_TTL" default:"5m"`
	ExpirySweepInterval time.Duration `envconfig:"COMMAND_EXPIRY_SWEEP_INTERVAL" default:"30s"`
	HistoryLimit        int           `envconfig:"COMMAND_HISTORY_LIMIT" default:"100"`
}

type ThresholdConfig struct {
	CacheTTL     time.Duration `envconfig:"THRESHOLD_CACHE_TTL" default:"10s"`
	DefaultsFile string        `envconfig:"THRESHOLD_DEFAULTS_FILE"`
}

type AlertConfig struct {
	// binary_only | uniform
	CooldownPolicy string        `envconfig:"ALERT_COOLDOWN_POLICY" default:"binary_only"`
	CooldownWindow time.Duration `envconfig:"ALERT_COOLDOWN_WINDOW" default:"60s"`
	// memory | redis
	CooldownBackend string `envconfig:"ALERT_COOLDOWN_BACKEND" default:"memory"`
	RecentLimit     int    `envconfig:"ALERT_RECENT_LIMIT" default:"50"`
}

type RedisConfig struct {
	Addr      string `envconfig:"REDIS_ADDR"`
	Password  string `envconfig:"REDIS_PASSWORD"`
	DB        int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix string `envconfig:"REDIS_KEY_PREFIX" default:"hydro:"`
}

type NATSConfig struct {
	URL           string `envconfig:"NATS_URL"`
	SubjectPrefix string `envconfig:"NATS_ALERT_SUBJECT_PREFIX" default:"hydro.alerts"`
}

type MQTTConfig struct {
	BrokerURL string `envconfig:"MQTT_BROKER_URL"`
	ClientID  string `envconfig:"MQTT_CLIENT_ID" default:"hydro-command"`
	Topic     string `envconfig:"MQTT_TELEMETRY_TOPIC" default:"hydro/+/telemetry"`
	Username  string `envconfig:"MQTT_USERNAME"`
	Password  string `envconfig:"MQTT_PASSWORD"`
	QoS       byte   `envconfig:"MQTT_QOS" default:"1"`
}

type RateLimitConfig struct {
	IngestPerMinute int `envconfig:"RATE_LIMIT_INGEST_PER_MINUTE" default:"60"`
	ExportPerMinute int `envconfig:"RATE_LIMIT_EXPORT_PER_MINUTE" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
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
		Command: CommandConfig{
			DefaultTTL:          5 * time.Minute,
			ExpirySweepInterval: time.Hour,
			HistoryLimit:        100,
		},
		Threshold: ThresholdConfig{
			CacheTTL: 10 * time.Second,
		},
		Alert: AlertConfig{
			CooldownPolicy:  "binary_only",
			CooldownWindow:  60 * time.Second,
			CooldownBackend: "memory",
			RecentLimit:     50,
		},
		Redis: RedisConfig{
			KeyPrefix: "hydro:",
		},
		NATS: NATSConfig{
			SubjectPrefix: "hydro.alerts",
		},
		RateLimit: RateLimitConfig{
			IngestPerMinute: 1000,
			ExportPerMinute: 1000,
		},
	}
}
