package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	LinkValidationPermissive = "permissive"
	LinkValidationStrict     = "strict"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Graph    GraphConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection  string
	AutoMigrate bool
}

type GraphConfig struct {
	LinkValidationMode   string // "permissive" or "strict"
	SuggestionTTLMinutes int
	LifecycleTopic       string // in-process watermill topic
	EventStreamName      string // NATS JetStream stream
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	corsOrigins := getEnv("CORS_ALLOWED_ORIGINS", "*")
	if frontendURL := getEnv("FRONTEND_URL", ""); frontendURL != "" {
		corsOrigins = frontendURL
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: corsOrigins,
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection:  getEnv("DB_CONNECTION_STRING", ""),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", true),
		},
		Graph: GraphConfig{
			LinkValidationMode:   getEnv("LINK_VALIDATION_MODE", LinkValidationPermissive),
			SuggestionTTLMinutes: getEnvAsInt("SUGGESTION_TTL_MINUTES", 60),
			LifecycleTopic:       getEnv("NOTE_LIFECYCLE_TOPIC", "NOTE_LIFECYCLE"),
			EventStreamName:      getEnv("NATS_EVENT_STREAM", "NOTEGRAPH_EVENTS"),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "notegraph-backend"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) Validate() error {
	switch c.Graph.LinkValidationMode {
	case LinkValidationPermissive, LinkValidationStrict:
	default:
		return fmt.Errorf("LINK_VALIDATION_MODE must be %q or %q, got %q",
			LinkValidationPermissive, LinkValidationStrict, c.Graph.LinkValidationMode)
	}
	if c.Graph.SuggestionTTLMinutes <= 0 {
		return fmt.Errorf("SUGGESTION_TTL_MINUTES must be positive, got %d", c.Graph.SuggestionTTLMinutes)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
