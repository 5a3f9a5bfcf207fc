package config

import (
	"flag"
	"os"
	"testing"
	"time"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	// подавляем вывод парсера флагов в тестах
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("DATABASE_URI", "")
	t.Setenv("AUTH_SECRET", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("KAFKA_TOPIC", "")
	t.Setenv("DB_TIMEOUT_SECONDS", "")
	t.Setenv("LOAN_DAYS", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("ENABLE_HTTPS", "")
	t.Setenv("TOKEN_FILE", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.AuthSecret != "dev-secret-key" {
		t.Fatalf("AuthSecret default expected 'dev-secret-key', got %q", cfg.AuthSecret)
	}
	if cfg.KafkaTopic != "enderbrary.notifications" {
		t.Fatalf("KafkaTopic default expected 'enderbrary.notifications', got %q", cfg.KafkaTopic)
	}
	if cfg.DBTimeoutSeconds != 5 {
		t.Fatalf("DBTimeoutSeconds default expected 5, got %d", cfg.DBTimeoutSeconds)
	}
	if cfg.LoanDays != 14 {
		t.Fatalf("LoanDays default expected 14, got %d", cfg.LoanDays)
	}
	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("BaseURL default expected 'localhost:8081', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "http://localhost:8081" {
		t.Fatalf("ServerURL default expected 'http://localhost:8081', got %q", cfg.ServerURL)
	}
	if cfg.TokenFile == "" {
		t.Fatalf("TokenFile default must be non-empty")
	}
	if len(cfg.BrokerList()) != 0 {
		t.Fatalf("BrokerList must be empty without KAFKA_BROKERS, got %v", cfg.BrokerList())
	}
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("AUTH_SECRET", "top")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("LOAN_DAYS", "7")
	t.Setenv("DB_TIMEOUT_SECONDS", "3")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.ServerURL != "https://example.com:443" {
		t.Fatalf("ServerURL expected 'https://example.com:443', got %q", cfg.ServerURL)
	}
	if cfg.AuthSecret != "top" {
		t.Fatalf("AuthSecret expected from env 'top', got %q", cfg.AuthSecret)
	}
	brokers := cfg.BrokerList()
	if len(brokers) != 2 || brokers[0] != "k1:9092" || brokers[1] != "k2:9092" {
		t.Fatalf("BrokerList expected [k1:9092 k2:9092], got %v", brokers)
	}
	if cfg.LoanPeriod() != 7*24*time.Hour {
		t.Fatalf("LoanPeriod expected 168h, got %v", cfg.LoanPeriod())
	}
	if cfg.DBTimeout() != 3*time.Second {
		t.Fatalf("DBTimeout expected 3s, got %v", cfg.DBTimeout())
	}
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:8081
	t.Setenv("BASE_URL", "http://example.com:8080/path")
	t.Setenv("ENABLE_HTTPS", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("invalid BASE_URL must fall back to 'localhost:8081', got %q", cfg.BaseURL)
	}
}
