package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Pipeline  PipelineConfig
	Validator ValidatorConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// PipelineConfig holds reconciliation pipeline configuration
type PipelineConfig struct {
	// DefaultTolerance absorbs rounding noise between uploaded and source
	// accounting totals when no per-document override is configured.
	DefaultTolerance float64
	// MappingFile optionally replaces the built-in document mapping table.
	MappingFile string
	UploadDir   string
}

// ValidatorConfig holds async worker configuration
type ValidatorConfig struct {
	Workers     int
	QueueSize   int
	JobTimeout  time.Duration
	MaxAttempts int
	RetryDelay  time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Pipeline: PipelineConfig{
			DefaultTolerance: getEnvAsFloat64("VALIDATION_TOLERANCE", 1000.01),
			MappingFile:      getEnv("MAPPING_FILE", ""),
			UploadDir:        getEnv("UPLOAD_DIR", "./uploads"),
		},
		Validator: ValidatorConfig{
			Workers:     getEnvAsInt("VALIDATOR_WORKERS", 4),
			QueueSize:   getEnvAsInt("VALIDATOR_QUEUE_SIZE", 256),
			JobTimeout:  getEnvAsDuration("VALIDATOR_JOB_TIMEOUT", 10*time.Minute),
			MaxAttempts: getEnvAsInt("VALIDATOR_MAX_ATTEMPTS", 3),
			RetryDelay:  getEnvAsDuration("VALIDATOR_RETRY_DELAY", 15*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Pipeline.DefaultTolerance < 0 {
		return NewAppError("CONFIG_ERROR", "VALIDATION_TOLERANCE must be non-negative", ErrInvalidInput)
	}
	if c.Validator.MaxAttempts < 1 {
		return NewAppError("CONFIG_ERROR", "VALIDATOR_MAX_ATTEMPTS must be at least 1", ErrInvalidInput)
	}
	return nil
}
