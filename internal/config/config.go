package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Amei clinic API
	AmeiBaseURL     string
	AmeiBearerToken string
	AmeiCookie      string
	AmeiClinicID    int
	AmeiUnitID      int
	AmeiTimeout     time.Duration

	// Professional directory cache
	DirectoryCacheTTL time.Duration

	// Digisac messaging API
	DigisacBaseURL   string
	DigisacAPIToken  string
	DigisacServiceID string
	DigisacTimeout   time.Duration

	// Confirmation campaign
	CampaignTemplatePath string
	CampaignExportPath   string
	CampaignPauseMin     time.Duration
	CampaignPauseMax     time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		AmeiBaseURL:     getEnv("AMEI_BASE_URL", "https://amei.amorsaude.com.br"),
		AmeiBearerToken: getEnv("AMEI_BEARER_TOKEN", ""),
		AmeiCookie:      getEnv("AMEI_COOKIE", ""),
		AmeiClinicID:    getEnvAsInt("AMEI_CLINIC_ID", 932),
		AmeiUnitID:      getEnvAsInt("AMEI_UNIT_ID", 932),
		AmeiTimeout:     getEnvAsDuration("AMEI_TIMEOUT", 20*time.Second),

		DirectoryCacheTTL: getEnvAsDuration("DIRECTORY_CACHE_TTL", 10*time.Minute),

		DigisacBaseURL:   getEnv("DIGISAC_BASE_URL", ""),
		DigisacAPIToken:  getEnv("DIGISAC_API_TOKEN", ""),
		DigisacServiceID: getEnv("DIGISAC_SERVICE_ID", ""),
		DigisacTimeout:   getEnvAsDuration("DIGISAC_TIMEOUT", 15*time.Second),

		CampaignTemplatePath: getEnv("CAMPAIGN_TEMPLATE_PATH", "mensagem.txt"),
		CampaignExportPath:   getEnv("CAMPAIGN_EXPORT_PATH", "agendamentos_confirmacao.xlsx"),
		CampaignPauseMin:     getEnvAsDuration("CAMPAIGN_PAUSE_MIN", 30*time.Second),
		CampaignPauseMax:     getEnvAsDuration("CAMPAIGN_PAUSE_MAX", 60*time.Second),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
