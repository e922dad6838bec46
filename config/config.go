package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ServiceName = "ordersystem"

	defaultPort           = "3130"
	defaultCurrency       = "USD"
	defaultKafkaTopic     = "ordersystem-commands"
	defaultKafkaGroupID   = "ordersystem"
	defaultReportCacheTTL = 30 * time.Second
)

type Config struct {
	Port           string
	CurrencyCode   string
	RedisAddr      string
	KafkaBrokers   []string
	KafkaTopic     string
	KafkaGroupID   string
	LokiURL        string
	ReportCacheTTL time.Duration
}

// Load reads the runtime configuration from the environment. Every
// value has a default; REDIS_ADDR, KAFKA_BROKERS and LOKI_URL being
// empty disables the corresponding integration.
func Load() *Config {
	cfg := &Config{
		Port:           getenv("PORT", defaultPort),
		CurrencyCode:   getenv("CURRENCY", defaultCurrency),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		KafkaTopic:     getenv("KAFKA_TOPIC", defaultKafkaTopic),
		KafkaGroupID:   getenv("KAFKA_GROUP_ID", defaultKafkaGroupID),
		LokiURL:        os.Getenv("LOKI_URL"),
		ReportCacheTTL: defaultReportCacheTTL,
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	if s := os.Getenv("REPORT_CACHE_TTL_SECONDS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			cfg.ReportCacheTTL = time.Duration(n) * time.Second
		}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
