package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the pipeline jobs.
type Config struct {
	Env string `json:"env"`

	// Document store (Redis)
	RedisURL    string `json:"redis_url" validate:"required"`
	RedisPrefix string `json:"redis_prefix"`

	// AI configuration. The key is validated by the jobs that call the
	// AI service; the price collector runs without one.
	OpenAIAPIKey  string        `json:"openai_api_key"`
	CurationModel string        `json:"curation_model"`
	ScriptModel   string        `json:"script_model"`
	TTSModel      string        `json:"tts_model"`
	TTSVoice      string        `json:"tts_voice"`
	TTSSpeed      float64       `json:"tts_speed" validate:"gte=0.25,lte=4"`
	AITimeout     time.Duration `json:"ai_timeout"`

	// Object storage (S3-compatible, e.g. Cloudflare R2)
	S3Endpoint      string `json:"s3_endpoint"`
	S3AccessKey     string `json:"s3_access_key"`
	S3SecretKey     string `json:"s3_secret_key"`
	S3Bucket        string `json:"s3_bucket"`
	S3Region        string `json:"s3_region"`
	S3PublicBaseURL string `json:"s3_public_base_url"`

	// Job tuning
	HTTPTimeout    time.Duration `json:"http_timeout"`
	ScratchDir     string        `json:"scratch_dir"`
	FreshnessLimit time.Duration `json:"freshness_limit"`

	// Logging
	LogLevel string `json:"log_level"`
}

// Load loads configuration from environment variables and validates it.
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{
		Env: getEnv("APP_ENV", "development"),

		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),
		RedisPrefix: getEnv("REDIS_PREFIX", "chole:"),

		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		CurationModel: getEnv("CURATION_MODEL", "gpt-4o-mini"),
		ScriptModel:   getEnv("SCRIPT_MODEL", "gpt-4o"),
		TTSModel:      getEnv("TTS_MODEL", "tts-1-hd"),
		TTSVoice:      getEnv("TTS_VOICE", "onyx"),
		TTSSpeed:      getEnvAsFloat("TTS_SPEED", 1.0),
		AITimeout:     getEnvAsDuration("AI_TIMEOUT", 60*time.Second),

		S3Endpoint:      getEnv("S3_ENDPOINT", ""),
		S3AccessKey:     getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:     getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Bucket:        getEnv("S3_BUCKET", "chole-mining"),
		S3Region:        getEnv("S3_REGION", "auto"),
		S3PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),

		HTTPTimeout:    getEnvAsDuration("HTTP_TIMEOUT", 30*time.Second),
		ScratchDir:     getEnv("SCRATCH_DIR", os.TempDir()),
		FreshnessLimit: getEnvAsDuration("FRESHNESS_LIMIT", 36*time.Hour),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	return cfg
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// Helper functions for environment variable handling
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(name string, defaultVal float64) float64 {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}
