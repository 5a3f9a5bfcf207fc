package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN      string `env:"DATABASE_URI"`
	AuthSecret       string `env:"AUTH_SECRET"`
	KafkaBrokers     string `env:"KAFKA_BROKERS"` // comma-separated, empty = log-only notifications
	KafkaTopic       string `env:"KAFKA_TOPIC"`
	DBTimeoutSeconds int    `env:"DB_TIMEOUT_SECONDS"`
	LoanDays         int    `env:"LOAN_DAYS"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"-"`
	TokenFile string `env:"TOKEN_FILE"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для проверки подписи JWT")
	flag.StringVar(&cfg.KafkaBrokers, "kafka-brokers", cfg.KafkaBrokers, "Kafka brokers for notifications (comma-separated)")
	flag.StringVar(&cfg.KafkaTopic, "kafka-topic", cfg.KafkaTopic, "Kafka topic for notification events")
	flag.IntVar(&cfg.DBTimeoutSeconds, "db-timeout", cfg.DBTimeoutSeconds, "timeout for database operations, seconds")
	flag.IntVar(&cfg.LoanDays, "loan-days", cfg.LoanDays, "loan period in days")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the Enderbrary server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "path to auth token file (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.KafkaTopic == "" {
		cfg.KafkaTopic = "enderbrary.notifications"
	}
	if cfg.DBTimeoutSeconds <= 0 {
		cfg.DBTimeoutSeconds = 5
	}
	if cfg.LoanDays <= 0 {
		cfg.LoanDays = 14
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	// Fill client defaults if empty
	home, _ := os.UserHomeDir()
	if cfg.TokenFile == "" {
		cfg.TokenFile = filepath.Join(home, ".enderbrary_token")
	}

	return cfg
}

// DBTimeout возвращает таймаут операций БД как time.Duration.
func (c *Config) DBTimeout() time.Duration {
	return time.Duration(c.DBTimeoutSeconds) * time.Second
}

// LoanPeriod возвращает срок выдачи книги.
func (c *Config) LoanPeriod() time.Duration {
	return time.Duration(c.LoanDays) * 24 * time.Hour
}

// BrokerList разбирает KafkaBrokers в срез адресов. Пустая строка — пустой срез.
func (c *Config) BrokerList() []string {
	if strings.TrimSpace(c.KafkaBrokers) == "" {
		return nil
	}
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
