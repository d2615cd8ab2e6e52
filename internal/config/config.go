package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/timesheet"
	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// AttendanceConfig holds the attendance business-policy constants. The
// thresholds are company policy, not law; they come from the environment so
// nothing is hard-coded.
type AttendanceConfig struct {
	DailyOvertimeThreshold float64
	LateArrivalHour        int
	EarlyDepartureHour     int
	DefaultBreakMinutes    int
}

// Policy converts the configured constants into the engine's policy.
func (a AttendanceConfig) Policy() timesheet.Policy {
	return timesheet.Policy{
		DailyOvertimeThreshold: a.DailyOvertimeThreshold,
		LateArrivalHour:        a.LateArrivalHour,
		EarlyDepartureHour:     a.EarlyDepartureHour,
		DefaultBreakDeduction:  time.Duration(a.DefaultBreakMinutes) * time.Minute,
	}
}

func Load() (*Config, error) {
	// A missing .env is fine in deployed environments; everything can come
	// from the process environment.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "timeclock"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Attendance policy configuration
	overtimeThreshold, err := strconv.ParseFloat(getEnv("ATTENDANCE_DAILY_OVERTIME_THRESHOLD", "8.0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_DAILY_OVERTIME_THRESHOLD: %w", err)
	}
	lateArrivalHour, err := strconv.Atoi(getEnv("ATTENDANCE_LATE_ARRIVAL_HOUR", "9"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_LATE_ARRIVAL_HOUR: %w", err)
	}
	earlyDepartureHour, err := strconv.Atoi(getEnv("ATTENDANCE_EARLY_DEPARTURE_HOUR", "17"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_EARLY_DEPARTURE_HOUR: %w", err)
	}
	defaultBreakMinutes, err := strconv.Atoi(getEnv("ATTENDANCE_DEFAULT_BREAK_MINUTES", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_DEFAULT_BREAK_MINUTES: %w", err)
	}

	config.Attendance = AttendanceConfig{
		DailyOvertimeThreshold: overtimeThreshold,
		LateArrivalHour:        lateArrivalHour,
		EarlyDepartureHour:     earlyDepartureHour,
		DefaultBreakMinutes:    defaultBreakMinutes,
	}

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
	if c.Attendance.DailyOvertimeThreshold <= 0 {
		return fmt.Errorf("ATTENDANCE_DAILY_OVERTIME_THRESHOLD must be positive")
	}
	if c.Attendance.LateArrivalHour < 0 || c.Attendance.LateArrivalHour > 23 {
		return fmt.Errorf("ATTENDANCE_LATE_ARRIVAL_HOUR must be between 0 and 23")
	}
	if c.Attendance.EarlyDepartureHour < 0 || c.Attendance.EarlyDepartureHour > 23 {
		return fmt.Errorf("ATTENDANCE_EARLY_DEPARTURE_HOUR must be between 0 and 23")
	}
	if c.Attendance.DefaultBreakMinutes < 0 {
		return fmt.Errorf("ATTENDANCE_DEFAULT_BREAK_MINUTES must not be negative")
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
