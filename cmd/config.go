package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string

	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	DBDriver      string
	DBAutoMigrate bool

	RedisAddr      string
	ParcelCacheTTL time.Duration

	KafkaBrokers           string
	KafkaParcelEventsTopic string

	OutboxRelaySchedule string
	OutboxBatchSize     int
	OutboxMaxAttempts   int

	LogLevel  string
	LogFormat string
}

// LoadConfig reads .env when present, then the environment. Unset
// variables take their defaults; malformed ones are reported together.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	var errList []error
	cfg := Config{
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		DBHost:                 getEnv("DB_HOST", "localhost"),
		DBPort:                 getEnv("DB_PORT", "5432"),
		DBUser:                 getEnv("DB_USER", "postgres"),
		DBPassword:             getEnv("DB_PASSWORD", ""),
		DBName:                 getEnv("DB_NAME", "parceltrack"),
		DBSslMode:              getEnv("DB_SSLMODE", "disable"),
		DBDriver:               strings.ToLower(getEnv("DB_DRIVER", "pgx")),
		DBAutoMigrate:          parseEnv("DB_AUTO_MIGRATE", true, strconv.ParseBool, &errList),
		RedisAddr:              getEnv("REDIS_ADDR", ""),
		ParcelCacheTTL:         parseEnv("PARCEL_CACHE_TTL", 5*time.Minute, time.ParseDuration, &errList),
		KafkaBrokers:           getEnv("KAFKA_BROKERS", ""),
		KafkaParcelEventsTopic: getEnv("KAFKA_PARCEL_EVENTS_TOPIC", "parcel.events"),
		OutboxRelaySchedule:    getEnv("OUTBOX_RELAY_SCHEDULE", "*/5 * * * * *"),
		OutboxBatchSize:        parseEnv("OUTBOX_BATCH_SIZE", 50, strconv.Atoi, &errList),
		OutboxMaxAttempts:      parseEnv("OUTBOX_MAX_ATTEMPTS", 10, strconv.Atoi, &errList),
		LogLevel:               strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:              strings.ToLower(getEnv("LOG_FORMAT", "json")),
	}

	if cfg.DBDriver != "pgx" && cfg.DBDriver != "postgres" {
		errList = append(errList, fmt.Errorf("DB_DRIVER: %q is neither pgx nor postgres", cfg.DBDriver))
	}

	if err := errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN is the connection string understood by both pgx and lib/pq.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func parseEnv[T any](key string, fallback T, parse func(string) (T, error), errList *[]error) T {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}

	v, err := parse(strings.TrimSpace(raw))
	if err != nil {
		*errList = append(*errList, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return v
}
