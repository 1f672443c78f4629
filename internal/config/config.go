package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	Rows           int
	Cols           int
	SearchDepth    int
	WebMaxDepth    int
	AISeed         int64
	AIDebug        bool
	WithAI         bool
	Player1Name    string
	Player2Name    string
	AllowedOrigins []string
	FrontendURL    string
	RedisURL       string
	RedisPassword  string
	TokenSecret    string
	TokenTTL       time.Duration
}

var AppConfig *Config

// LoadEnvFile loads .env from the working directory or its parent, if present
func LoadEnvFile() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}
}

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Board & AI
	rows := GetEnvAsInt("BOARD_ROWS", 6)
	cols := GetEnvAsInt("BOARD_COLS", 7)
	searchDepth := GetEnvAsInt("SEARCH_DEPTH", 3)
	webMaxDepth := GetEnvAsInt("WEB_MAX_DEPTH", 4)
	aiSeed := int64(GetEnvAsInt("AI_SEED", 0))
	aiDebug := GetEnvAsBool("AI_DEBUG", false)
	withAI := GetEnvAsBool("WITH_AI", true)
	player1 := GetEnv("PLAYER1_NAME", "Player 1")
	player2 := GetEnv("PLAYER2_NAME", "Player 2")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")

	allowedOrigins := []string{frontendURL}
	if allowedOriginsStr != "" {
		extras := strings.Split(allowedOriginsStr, ",")
		for _, origin := range extras {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	// Live event feed
	redisURL := GetEnv("REDIS_URL", "")
	redisPassword := GetEnv("REDIS_PASSWORD", "")

	// Match resume tokens
	tokenSecret := GetEnv("MATCH_TOKEN_SECRET", "change-this-match-token-secret")
	tokenTTLMin := GetEnvAsInt("MATCH_TOKEN_TTL_MINUTES", 60)

	AppConfig = &Config{
		Port:           port,
		Rows:           rows,
		Cols:           cols,
		SearchDepth:    searchDepth,
		WebMaxDepth:    webMaxDepth,
		AISeed:         aiSeed,
		AIDebug:        aiDebug,
		WithAI:         withAI,
		Player1Name:    player1,
		Player2Name:    player2,
		AllowedOrigins: allowedOrigins,
		FrontendURL:    frontendURL,
		RedisURL:       redisURL,
		RedisPassword:  redisPassword,
		TokenSecret:    tokenSecret,
		TokenTTL:       time.Duration(tokenTTLMin) * time.Minute,
	}

	return AppConfig
}

// Seed returns the configured AI seed, or a time based one when unset
func (c *Config) Seed() int64 {
	if c.AISeed != 0 {
		return c.AISeed
	}
	return time.Now().UnixNano()
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
