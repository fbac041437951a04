package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds process-level settings read from the environment.
type Config struct {
	Port     string
	LogMode  string
	Store    StoreConfig
	RedisURI string
	Rabbit   RabbitConfig
	Data     DataPaths
	Auth     AuthConfig
	CORS     string
}

// StoreConfig selects and configures the response store backend
type StoreConfig struct {
	Driver     string // "mongo", "sqlite" or "memory"
	MongoURI   string
	MongoDB    string
	SQLitePath string
}

type RabbitConfig struct {
	URI      string
	Exchange string
}

// DataPaths points at the static catalog and matrix documents
type DataPaths struct {
	ScaleQuestions string
	TextQuestions  string
	CreativeMatrix string
}

// AuthConfig carries admin credentials explicitly instead of package globals.
type AuthConfig struct {
	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string
	// AdminPassword is only used when no hash is configured; it is hashed at startup.
	AdminPassword string
	TokenTTL      time.Duration
}

func Load() *Config {
	return &Config{
		Port:    getEnv("PORT", "5001"),
		LogMode: getEnv("LOG_MODE", "dev"),
		Store: StoreConfig{
			Driver:     strings.ToLower(getEnv("STORE_DRIVER", "mongo")),
			MongoURI:   getEnv("MONGO_URI", "mongodb://localhost:27017"),
			MongoDB:    getEnv("MONGO_DB", "creativestyle"),
			SQLitePath: getEnv("SQLITE_PATH", "db/creativestyle.db"),
		},
		RedisURI: strings.TrimPrefix(getEnv("REDIS_URI", ""), "redis://"),
		Rabbit: RabbitConfig{
			URI:      getEnv("RABBITMQ_URI", ""),
			Exchange: getEnv("RABBITMQ_EXCHANGE", "assessment.events"),
		},
		Data: DataPaths{
			ScaleQuestions: getEnv("SCALE_QUESTIONS_PATH", "data/scale_questions.json"),
			TextQuestions:  getEnv("TEXT_QUESTIONS_PATH", "data/text_questions.json"),
			CreativeMatrix: getEnv("CREATIVE_MATRIX_PATH", "data/creative_matrix.json"),
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("JWT_SECRET", "change-me-in-production"),
			AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
			TokenTTL:          time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		},
		CORS: getEnv("CORS_ALLOWED_ORIGINS", "*"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := getEnv(key, "")
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}
