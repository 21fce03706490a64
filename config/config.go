package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	AppBaseURL        string `mapstructure:"APP_BASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// MongoDB configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Firebase service account used for push notifications.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`

	// Cloudinary contract document storage.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
	ContractFolder      string `mapstructure:"CONTRACT_FOLDER"`

	// SMS and email HTTP gateways.
	SMSGatewayURL string `mapstructure:"SMS_GATEWAY_URL"`
	SMSAPIKey     string `mapstructure:"SMS_API_KEY"`
	SMSSenderName string `mapstructure:"SMS_SENDER_NAME"`
	EmailAPIURL   string `mapstructure:"EMAIL_API_URL"`
	EmailAPIKey   string `mapstructure:"EMAIL_API_KEY"`
	EmailFrom     string `mapstructure:"EMAIL_FROM"`

	// Lease lifecycle policy.
	MinContractMonths      int           `mapstructure:"MIN_CONTRACT_MONTHS"`
	IncludeAdvanceOnAssign bool          `mapstructure:"INCLUDE_ADVANCE_ON_ASSIGN"`
	BillingTimezone        string        `mapstructure:"BILLING_TIMEZONE"`
	ScheduleCacheTTL       time.Duration `mapstructure:"SCHEDULE_CACHE_TTL"`
	NotificationQueueSize  int           `mapstructure:"NOTIFICATION_QUEUE_SIZE"`
}

// LeasePolicy is the subset of configuration consumed by the lease lifecycle.
type LeasePolicy struct {
	MinContractMonths      int
	IncludeAdvanceOnAssign bool
	Location               *time.Location
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
	viper.SetDefault("APP_BASE_URL", "http://localhost:3000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "rentwise")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 3)
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "config/firebase.json")
	viper.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	viper.SetDefault("CLOUDINARY_API_KEY", "")
	viper.SetDefault("CLOUDINARY_API_SECRET", "")
	viper.SetDefault("CONTRACT_FOLDER", "rentwise/contracts")
	viper.SetDefault("SMS_GATEWAY_URL", "")
	viper.SetDefault("SMS_API_KEY", "")
	viper.SetDefault("SMS_SENDER_NAME", "RENTWISE")
	viper.SetDefault("EMAIL_API_URL", "")
	viper.SetDefault("EMAIL_API_KEY", "")
	viper.SetDefault("EMAIL_FROM", "no-reply@rentwise.local")
	viper.SetDefault("MIN_CONTRACT_MONTHS", 3)
	viper.SetDefault("INCLUDE_ADVANCE_ON_ASSIGN", true)
	viper.SetDefault("BILLING_TIMEZONE", "Asia/Manila")
	viper.SetDefault("SCHEDULE_CACHE_TTL", "2m")
	viper.SetDefault("NOTIFICATION_QUEUE_SIZE", 256)

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

// Policy returns the lease lifecycle policy. An unknown timezone falls back to UTC.
func Policy() LeasePolicy {
	loc, err := time.LoadLocation(AppConfig.BillingTimezone)
	if err != nil {
		log.Printf("Unknown BILLING_TIMEZONE %q, using UTC", AppConfig.BillingTimezone)
		loc = time.UTC
	}
	months := AppConfig.MinContractMonths
	if months <= 0 {
		months = 3
	}
	return LeasePolicy{
		MinContractMonths:      months,
		IncludeAdvanceOnAssign: AppConfig.IncludeAdvanceOnAssign,
		Location:               loc,
	}
}
