package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service settings.
type Config struct {
	Port    int
	DB      DB
	Kafka   Kafka
	Jobs    Jobs
	Service Service
	Log     Log
}

// DB stores PostgreSQL connection settings.
type DB struct {
	Host    string
	Port    string
	User    string
	Pass    string
	Name    string
	SSLMode string
}

// DSN builds a postgres connection URL.
func (d DB) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Pass),
		Host:   net.JoinHostPort(d.Host, d.Port),
		Path:   "/" + d.Name,
	}
	if d.SSLMode != "" {
		u.RawQuery = "sslmode=" + url.QueryEscape(d.SSLMode)
	}
	return u.String()
}

// Kafka stores order event consumer settings.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Enabled reports whether the consumer has enough settings to start.
func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0 && k.Topic != "" && k.GroupID != ""
}

// Jobs stores scheduler settings.
type Jobs struct {
	OverdueScanSchedule string
}

// Service stores timeouts of the service layer.
type Service struct {
	OperationTimeout time.Duration
	ShutdownTimeout  time.Duration
}

// Log stores logger settings.
type Log struct {
	Level string
}

// Load reads .env if present, then the environment, then command line flags.
func Load() (*Config, error) {
	return LoadArgs(os.Args[1:])
}

// LoadArgs is Load with explicit command line arguments.
func LoadArgs(args []string) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:    defaultPort,
		DB:      defaultDB,
		Kafka:   defaultKafka,
		Jobs:    defaultJobs,
		Service: defaultService,
		Log:     defaultLog,
	}
	if err := fromEnv(cfg); err != nil {
		return nil, err
	}

	fs := pflag.NewFlagSet("logistics-dispatch", pflag.ContinueOnError)
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: debug, info, warn, error")
	fs.StringSliceVar(&cfg.Kafka.Brokers, "kafka-brokers", cfg.Kafka.Brokers, "comma separated Kafka brokers")
	fs.StringVar(&cfg.Jobs.OverdueScanSchedule, "overdue-schedule", cfg.Jobs.OverdueScanSchedule, "cron schedule of the overdue scan")
	fs.DurationVar(&cfg.Service.OperationTimeout, "op-timeout", cfg.Service.OperationTimeout, "timeout of a single service operation")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = p
	}

	setString(&cfg.DB.Host, "POSTGRES_HOST")
	setString(&cfg.DB.Port, "POSTGRES_PORT")
	setString(&cfg.DB.User, "POSTGRES_USER")
	setString(&cfg.DB.Pass, "POSTGRES_PASSWORD")
	setString(&cfg.DB.Name, "POSTGRES_DB")
	setString(&cfg.DB.SSLMode, "POSTGRES_SSLMODE")
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		return fmt.Errorf("invalid POSTGRES_PORT %q", cfg.DB.Port)
	}

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	setString(&cfg.Kafka.Topic, "KAFKA_TOPIC")
	setString(&cfg.Kafka.GroupID, "KAFKA_GROUP_ID")

	setString(&cfg.Jobs.OverdueScanSchedule, "OVERDUE_SCAN_SCHEDULE")
	setString(&cfg.Log.Level, "LOG_LEVEL")

	if err := setDuration(&cfg.Service.OperationTimeout, "SERVICE_OPERATION_TIMEOUT"); err != nil {
		return err
	}
	return setDuration(&cfg.Service.ShutdownTimeout, "SHUTDOWN_TIMEOUT")
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Service.OperationTimeout <= 0 {
		return fmt.Errorf("invalid operation timeout: %s", c.Service.OperationTimeout)
	}
	if strings.TrimSpace(c.Jobs.OverdueScanSchedule) == "" {
		return fmt.Errorf("empty overdue scan schedule")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = d
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
