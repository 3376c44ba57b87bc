package main

import (
	"fmt"
	"time"

	"github.com/md-rashed-zaman/clinicbook/libs/config"
	"github.com/md-rashed-zaman/clinicbook/libs/kafkax"
)

type settings struct {
	Service        string
	Version        string
	Port           string
	GRPCPort       string
	LogLevel       string
	DatabaseURL    string
	DBMaxConns     int
	RedisAddr      string
	KafkaBrokers   []string
	RequestTimeout time.Duration
	BodyLimit      int64
	RateLimit      int
	RateWindow     time.Duration
	TrustProxy     bool
	Location       *time.Location
	OutboxPoll     time.Duration
	OutboxBatch    int
}

func loadSettings() (settings, error) {
	s := settings{
		Service:        config.String("SERVICE_NAME", "reservation-service"),
		Version:        config.String("SERVICE_VERSION", "dev"),
		LogLevel:       config.String("LOG_LEVEL", "info"),
		DBMaxConns:     config.Int("DB_MAX_CONNS", 10),
		RedisAddr:      config.String("REDIS_ADDR", ""),
		KafkaBrokers:   kafkax.SplitBrokers(config.String("KAFKA_BROKERS", "")),
		RequestTimeout: config.Duration("REQUEST_TIMEOUT_SECONDS", 10*time.Second),
		BodyLimit:      int64(config.Int("HTTP_BODY_LIMIT_BYTES", 64<<10)),
		RateLimit:      config.Int("RATE_LIMIT_PER_WINDOW", 30),
		RateWindow:     config.Duration("RATE_LIMIT_WINDOW", time.Minute),
		TrustProxy:     config.Bool("TRUST_PROXY_HEADERS", false),
		OutboxPoll:     config.Duration("OUTBOX_POLL_INTERVAL", 2*time.Second),
		OutboxBatch:    config.Int("OUTBOX_BATCH_SIZE", 50),
	}

	var err error
	if s.Port, err = config.Port("PORT", "8080"); err != nil {
		return settings{}, err
	}
	if s.GRPCPort, err = config.Port("GRPC_PORT", "9090"); err != nil {
		return settings{}, err
	}
	if s.DatabaseURL, err = config.RequiredString("DATABASE_URL"); err != nil {
		return settings{}, err
	}
	tz := config.String("CLINIC_TIMEZONE", "Asia/Tokyo")
	if s.Location, err = time.LoadLocation(tz); err != nil {
		return settings{}, fmt.Errorf("CLINIC_TIMEZONE: %w", err)
	}
	return s, nil
}
