package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	TimeZone string `mapstructure:"TIME_ZONE"`

	// Shared secret expected in the X-Webhook-Secret header. Empty disables
	// the check (local development).
	WebhookSecret string `mapstructure:"WEBHOOK_SECRET"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration (oracle response cache).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Gemini slot-extraction oracle.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Channel manager (HotelRunner) credentials.
	ChannelBaseURL string `mapstructure:"CHANNEL_BASE_URL"`
	ChannelToken   string `mapstructure:"CHANNEL_TOKEN"`
	ChannelHrID    string `mapstructure:"CHANNEL_HR_ID"`

	// Business rules. Earlier deployments disagreed on some of these values;
	// they are consolidated here as the single authoritative rule set.
	MaxNights       int     `mapstructure:"MAX_NIGHTS"`
	MaxGuests       int     `mapstructure:"MAX_GUESTS"`
	BaseNightlyRate float64 `mapstructure:"BASE_NIGHTLY_RATE"`
	AddonRate       float64 `mapstructure:"ADDON_RATE"`
	ExchangeRate    float64 `mapstructure:"EXCHANGE_RATE"`
	MinFallbackYear int     `mapstructure:"MIN_FALLBACK_YEAR"`

	// Long-stay discount. Present in only one historical deployment, so it
	// ships disabled and must be switched on explicitly.
	LongStayDiscountEnabled bool    `mapstructure:"LONG_STAY_DISCOUNT_ENABLED"`
	LongStayMinNights       int     `mapstructure:"LONG_STAY_MIN_NIGHTS"`
	LongStayDiscountRate    float64 `mapstructure:"LONG_STAY_DISCOUNT_RATE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("TIME_ZONE", "Europe/Berlin")
	viper.SetDefault("WEBHOOK_SECRET", "")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("CHANNEL_BASE_URL", "https://app.hotelrunner.com/api/v2/apps")
	viper.SetDefault("CHANNEL_TOKEN", "")
	viper.SetDefault("CHANNEL_HR_ID", "")
	viper.SetDefault("MAX_NIGHTS", 30)
	viper.SetDefault("MAX_GUESTS", 10)
	viper.SetDefault("BASE_NIGHTLY_RATE", 90.0)
	viper.SetDefault("ADDON_RATE", 25.0)
	viper.SetDefault("EXCHANGE_RATE", 25.0)
	viper.SetDefault("MIN_FALLBACK_YEAR", 1900)
	viper.SetDefault("LONG_STAY_DISCOUNT_ENABLED", false)
	viper.SetDefault("LONG_STAY_MIN_NIGHTS", 7)
	viper.SetDefault("LONG_STAY_DISCOUNT_RATE", 0.10)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
