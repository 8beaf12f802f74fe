package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds payroll engine configuration.
type PayrollConfig struct {
	// Workers bounds the per-employee computation fan-out. Must stay
	// below Database.MaxConns: each worker holds one transaction while
	// swapping an entry's line items.
	Workers int
}

func Load() (*Config, error) {
	// .env is optional; real deployments pass the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "suweldo-payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: dbMaxConns,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Payroll configuration
	workers, err := strconv.Atoi(getEnv("PAYROLL_WORKERS", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_WORKERS: %w", err)
	}
	config.Payroll = PayrollConfig{Workers: workers}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.Workers < 1 {
		return fmt.Errorf("PAYROLL_WORKERS must be at least 1")
	}
	if c.Payroll.Workers >= c.Database.MaxConns {
		return fmt.Errorf("PAYROLL_WORKERS must be less than DB_MAX_CONNS")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
