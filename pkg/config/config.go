package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Predictor PredictorConfig
	History   HistoryConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	AllowOrigins   []string
}

type PredictorConfig struct {
	EndpointURL   string
	Token         string
	AuthScheme    string
	BasicUsername string
	BasicPassword string
	Timeout       time.Duration
	ContactID     int
}

type HistoryConfig struct {
	Enabled bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

type RateLimitConfig struct {
	Enabled  bool
	Requests int
	Window   time.Duration
}

// Load reads configuration from the environment, after loading .env when one
// exists. The predictor credential is never defaulted.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	contactID, err := strconv.Atoi(getEnv("PREDICTOR_CONTACT_ID", "1"))
	if err != nil {
		return nil, errors.New("invalid predictor contact id")
	}

	rateLimitRequests, err := strconv.Atoi(getEnv("RATE_LIMIT_REQUESTS", "30"))
	if err != nil || rateLimitRequests <= 0 {
		return nil, errors.New("invalid rate limit requests")
	}

	predictorTimeout, err := getEnvDuration("PREDICTOR_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, errors.New("invalid predictor timeout")
	}

	requestTimeout, err := getEnvDuration("REQUEST_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, errors.New("invalid request timeout")
	}

	rateLimitWindow, err := getEnvDuration("RATE_LIMIT_WINDOW", time.Minute)
	if err != nil || rateLimitWindow <= 0 {
		return nil, errors.New("invalid rate limit window")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Customer Renewal API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RequestTimeout: requestTimeout,
			AllowOrigins:   splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:8080")),
		},
		Predictor: PredictorConfig{
			EndpointURL:   getEnv("PREDICTOR_ENDPOINT_URL", ""),
			Token:         getEnv("PREDICTOR_TOKEN", ""),
			AuthScheme:    strings.ToLower(getEnv("PREDICTOR_AUTH_SCHEME", "bearer")),
			BasicUsername: getEnv("PREDICTOR_BASIC_USERNAME", ""),
			BasicPassword: getEnv("PREDICTOR_BASIC_PASSWORD", ""),
			Timeout:       predictorTimeout,
			ContactID:     contactID,
		},
		History: HistoryConfig{
			Enabled: getEnvBool("HISTORY_ENABLED", false),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "customer_renewal"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		RateLimit: RateLimitConfig{
			Enabled:  getEnvBool("RATE_LIMIT_ENABLED", false),
			Requests: rateLimitRequests,
			Window:   rateLimitWindow,
		},
	}

	if cfg.Predictor.EndpointURL == "" {
		return nil, errors.New("missing predictor endpoint url")
	}

	switch cfg.Predictor.AuthScheme {
	case "bearer":
		if cfg.Predictor.Token == "" {
			return nil, errors.New("missing predictor token")
		}
	case "basic":
		if cfg.Predictor.BasicUsername == "" || cfg.Predictor.BasicPassword == "" {
			return nil, errors.New("missing predictor basic auth credentials")
		}
	default:
		return nil, errors.New("unsupported predictor auth scheme")
	}

	if cfg.History.Enabled {
		if cfg.JWT.SecretKey == "" {
			return nil, errors.New("missing jwt secret")
		}

		if cfg.Database.Password == "" {
			return nil, errors.New("missing database password")
		}
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultVal
	}

	return val
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}

	return time.ParseDuration(val)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
