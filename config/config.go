package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	Env         string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Redis configuration.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisSettingsDB int    `mapstructure:"REDIS_SETTINGS_DB"`
	RedisQueueDB    int    `mapstructure:"REDIS_QUEUE_DB"`

	// Stripe configuration.
	StripeKey       string `mapstructure:"STRIPE_KEY"`
	DefaultCurrency string `mapstructure:"DEFAULT_CURRENCY"`
	// BillingDryRun simulates overtime captures instead of hitting Stripe.
	BillingDryRun bool `mapstructure:"BILLING_DRY_RUN"`

	// Google Maps API key for the remote geocoding tier.
	GoogleAPIKey string `mapstructure:"GOOGLE_API_KEY"`

	// Service-area radius bounds. The writer clamps and snaps the admin
	// setting to these; readers trust the stored value.
	MinServiceRadiusKm     int `mapstructure:"MIN_SERVICE_RADIUS_KM"`
	MaxServiceRadiusKm     int `mapstructure:"MAX_SERVICE_RADIUS_KM"`
	RadiusIncrementKm      int `mapstructure:"RADIUS_INCREMENT_KM"`
	DefaultServiceRadiusKm int `mapstructure:"DEFAULT_SERVICE_RADIUS_KM"`

	// Admin API token for the back-office surface.
	AdminAPIToken string `mapstructure:"ADMIN_API_TOKEN"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`
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
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SETTINGS_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DEFAULT_CURRENCY", "CAD")
	viper.SetDefault("BILLING_DRY_RUN", false)
	viper.SetDefault("GOOGLE_API_KEY", "")
	viper.SetDefault("MIN_SERVICE_RADIUS_KM", 25)
	viper.SetDefault("MAX_SERVICE_RADIUS_KM", 300)
	viper.SetDefault("RADIUS_INCREMENT_KM", 5)
	viper.SetDefault("DEFAULT_SERVICE_RADIUS_KM", 75)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)

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
