package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultSystemPrompt = `You are AgroGPT, an expert agricultural AI advisor.
Your MISSION is to help farmers and agriculturists with accurate, practical advice.

STRICT RULES:
1. SCOPE: YOU MUST ONLY answer questions related to:
   - Crop management, planting, harvesting
   - Soil health, fertilizers, manure
   - Plant diseases, pests, and treatments
   - Weather impact on farming
   - Irrigation and water management
   - Animal husbandry and livestock
   - Agriculture market prices and schemes

2. REFUSAL: If a user asks about non-agricultural topics (e.g., movies, coding, politics, general life advice), you must politely REFUSE.
   - Example polite refusal: "I specialize only in agriculture. Please ask me about crops, soil, or farming."

3. TONE: Be professional, empathetic to farmers, and practical. Use simple language.`

type Config struct {
	Port   string
	DBPath string

	SarvamAPIKey  string
	MasterAPIKey  string
	SarvamChatURL string
	SarvamBaseURL string

	AllowedOrigins []string
	SystemPrompt   string

	// Optional audio archival. Disabled when the endpoint is empty.
	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
}

func LoadConfig() Config {
	// Missing .env is fine, system environment variables still apply.
	_ = godotenv.Load()

	return Config{
		Port:           getEnv("PORT", "8000"),
		DBPath:         getEnv("DB_PATH", "./data/agrochat.db"),
		SarvamAPIKey:   getEnv("SARVAM_API_KEY", ""),
		MasterAPIKey:   getEnv("MASTER_API_KEY", ""),
		SarvamChatURL:  getEnv("SARVAM_CHAT_API_URL", "https://api.sarvam.ai/v1/chat/completions"),
		SarvamBaseURL:  getEnv("SARVAM_BASE_URL", "https://api.sarvam.ai"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		SystemPrompt:   getEnv("SYSTEM_PROMPT", defaultSystemPrompt),
		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinIOBucket:    getEnv("MINIO_BUCKET", "agrochat-audio"),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
