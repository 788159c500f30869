package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	// Mock controls the generated dataset and the simulated network behaviour.
	Mock struct {
		Seed          int64  `yaml:"seed" env:"MOCK_SEED"`
		Latency       string `yaml:"latency" env:"MOCK_LATENCY"`
		DemoPassword  string `yaml:"demo_password" env:"MOCK_DEMO_PASSWORD"`
		EmailDomain   string `yaml:"email_domain" env:"MOCK_EMAIL_DOMAIN"`
		Students      int    `yaml:"students" env:"MOCK_STUDENTS"`
		Lecturers     int    `yaml:"lecturers" env:"MOCK_LECTURERS"`
		Courses       int    `yaml:"courses" env:"MOCK_COURSES"`
		Payments      int    `yaml:"payments" env:"MOCK_PAYMENTS"`
		Announcements int    `yaml:"announcements" env:"MOCK_ANNOUNCEMENTS"`
		Enrollments   int    `yaml:"enrollments" env:"MOCK_ENROLLMENTS"`
	} `yaml:"mock"`

	JWT struct {
		Secret     string `yaml:"secret" env:"JWT_SECRET"`
		Expiration string `yaml:"expiration" env:"JWT_EXPIRATION"`
		Issuer     string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Notifications struct {
		Enabled bool `yaml:"enabled" env:"NOTIFICATIONS_ENABLED"`
	} `yaml:"notifications"`

	// Database is only used to export the generated snapshot.
	Database struct {
		ExportOnStart   bool   `yaml:"export_on_start" env:"DB_EXPORT_ON_START"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`
}

// LoadConfig loads configuration from a file, an optional .env file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := Default()

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// A missing .env is normal outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Default returns the configuration used when no file or environment overrides it
func Default() *Config {
	config := &Config{}
	setDefaults(config)
	return config
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// Mock defaults
	config.Mock.Latency = "500ms"
	config.Mock.DemoPassword = "password123"
	config.Mock.EmailDomain = "university.edu.gh"
	config.Mock.Students = 100
	config.Mock.Lecturers = 20
	config.Mock.Courses = 20
	config.Mock.Payments = 200
	config.Mock.Announcements = 10
	config.Mock.Enrollments = 300

	// JWT defaults
	config.JWT.Secret = "unidash-demo-secret"
	config.JWT.Expiration = "24h"
	config.JWT.Issuer = "unidash.app"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Notifications.Enabled = true

	// Database defaults
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "unidash"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 1
	config.Database.MaxOpenConns = 4
	config.Database.ConnMaxLifetime = "1h"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.Expiration); err != nil {
		return fmt.Errorf("invalid JWT expiration format: %w", err)
	}

	latency, err := time.ParseDuration(config.Mock.Latency)
	if err != nil {
		return fmt.Errorf("invalid mock latency format: %w", err)
	}
	if latency < 0 {
		return fmt.Errorf("mock latency cannot be negative")
	}

	if config.Mock.DemoPassword == "" {
		return fmt.Errorf("mock demo password is required")
	}

	counts := map[string]int{
		"students":      config.Mock.Students,
		"lecturers":     config.Mock.Lecturers,
		"courses":       config.Mock.Courses,
		"payments":      config.Mock.Payments,
		"announcements": config.Mock.Announcements,
		"enrollments":   config.Mock.Enrollments,
	}
	for name, n := range counts {
		if n < 0 {
			return fmt.Errorf("mock %s count cannot be negative", name)
		}
	}
	// Courses need a lecturer and enrollments/payments need someone to reference
	if config.Mock.Courses > 0 && config.Mock.Lecturers == 0 {
		return fmt.Errorf("mock courses require at least one lecturer")
	}
	if (config.Mock.Payments > 0 || config.Mock.Enrollments > 0) && config.Mock.Students == 0 {
		return fmt.Errorf("mock payments and enrollments require at least one student")
	}

	if config.Database.ExportOnStart {
		if config.Database.Host == "" {
			return fmt.Errorf("database host is required for export")
		}
		if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
			return fmt.Errorf("invalid database connection max lifetime: %w", err)
		}
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
