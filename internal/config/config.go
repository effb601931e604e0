package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Storage    StorageConfig
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

// JWTConfig holds JWT configuration for the reporting/admin surface.
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

type StorageConfig struct {
	Type     string // "local"
	BasePath string
}

// AttendanceConfig holds the fixed attendance policy. Defaults match the
// company policy; env overrides exist so staging can run a different zone
// or schedule without a rebuild.
type AttendanceConfig struct {
	TimezoneName     string        // IANA name, e.g. America/La_Paz
	AccuracyCeilingM float64       // GPS accuracy above this rejects the check-in
	ScheduleStartMin int           // minutes after local midnight
	ScheduleEndMin   int           // minutes after local midnight
	TokenTTL         time.Duration // validity window of an issued QR code
}

// ExpectedMinutes is the scheduled working minutes of one non-rest day.
func (a AttendanceConfig) ExpectedMinutes() int {
	return a.ScheduleEndMin - a.ScheduleStartMin
}

func Load() (*Config, error) {
	// Missing .env is fine in deployed environments; real env vars win.
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
		Name:     getEnv("DB_NAME", "andinaops"),
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
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Storage configuration
	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
	}

	// Attendance policy
	accuracyCeiling, err := strconv.ParseFloat(getEnv("ATTENDANCE_ACCURACY_CEILING_M", "60"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_ACCURACY_CEILING_M: %w", err)
	}

	scheduleStart, err := parseClockMinutes(getEnv("ATTENDANCE_SCHEDULE_START", "08:30"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_SCHEDULE_START: %w", err)
	}

	scheduleEnd, err := parseClockMinutes(getEnv("ATTENDANCE_SCHEDULE_END", "18:30"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_SCHEDULE_END: %w", err)
	}

	tokenTTL, err := time.ParseDuration(getEnv("ATTENDANCE_TOKEN_TTL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_TOKEN_TTL: %w", err)
	}

	config.Attendance = AttendanceConfig{
		TimezoneName:     getEnv("ATTENDANCE_TIMEZONE", "America/La_Paz"),
		AccuracyCeilingM: accuracyCeiling,
		ScheduleStartMin: scheduleStart,
		ScheduleEndMin:   scheduleEnd,
		TokenTTL:         tokenTTL,
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
	if c.Attendance.AccuracyCeilingM <= 0 {
		return fmt.Errorf("ATTENDANCE_ACCURACY_CEILING_M must be positive")
	}
	if c.Attendance.ExpectedMinutes() <= 0 {
		return fmt.Errorf("ATTENDANCE_SCHEDULE_END must be after ATTENDANCE_SCHEDULE_START")
	}
	if c.Attendance.TokenTTL <= 0 {
		return fmt.Errorf("ATTENDANCE_TOKEN_TTL must be positive")
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

// parseClockMinutes parses "HH:MM" into minutes after midnight.
func parseClockMinutes(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
