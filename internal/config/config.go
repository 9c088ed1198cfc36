// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// DefaultJWTSecret is the clearly-labeled development fallback. Production
// startup fails closed when the secret is missing or left at this value.
const DefaultJWTSecret = "devlog-dev-secret-change-in-production"

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port           string `mapstructure:"PORT"`
	Env            string `mapstructure:"APP_ENV"`
	JWTSecret      string `mapstructure:"JWT_SECRET"`
	PasswordSalt   string `mapstructure:"PASSWORD_SALT"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSSLMode  string `mapstructure:"DB_SSLMODE"`

	RedisURL string `mapstructure:"REDIS_URL"`

	AIGatewayURL string `mapstructure:"AI_GATEWAY_URL"`
	AIModel      string `mapstructure:"AI_MODEL"`
	AIToken      string `mapstructure:"AI_TOKEN"`

	MediaEndpoint  string `mapstructure:"MEDIA_ENDPOINT"`
	MediaAccessKey string `mapstructure:"MEDIA_ACCESS_KEY"`
	MediaSecretKey string `mapstructure:"MEDIA_SECRET_KEY"`
	MediaBucket    string `mapstructure:"MEDIA_BUCKET"`
	MediaUseSSL    bool   `mapstructure:"MEDIA_USE_SSL"`
	MediaPublicURL string `mapstructure:"MEDIA_PUBLIC_URL"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; environment variables alone are enough.
	_ = viper.ReadInConfig()

	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	if env != "development" && env != "" {
		viper.SetConfigName("config." + env)
		if err := viper.MergeInConfig(); err == nil {
			log.Printf("Loaded profile-specific configuration: config.%s.yml", env)
		}
	}

	// Set default values for development
	viper.SetDefault("PORT", "8084")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("JWT_SECRET", DefaultJWTSecret)
	viper.SetDefault("PASSWORD_SALT", "dynamic_blog_salt")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "user")
	viper.SetDefault("DB_PASSWORD", "password")
	viper.SetDefault("DB_NAME", "devlog")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("AI_GATEWAY_URL", "")
	viper.SetDefault("AI_MODEL", "@cf/meta/llama-2-7b-chat-int8")
	viper.SetDefault("AI_TOKEN", "")
	viper.SetDefault("MEDIA_ENDPOINT", "")
	viper.SetDefault("MEDIA_ACCESS_KEY", "")
	viper.SetDefault("MEDIA_SECRET_KEY", "")
	viper.SetDefault("MEDIA_BUCKET", "media")
	viper.SetDefault("MEDIA_USE_SSL", false)
	viper.SetDefault("MEDIA_PUBLIC_URL", "")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.DBSSLMode = strings.ToLower(strings.TrimSpace(config.DBSSLMode))

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// IsProduction reports whether the app runs with production hardening rules.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// Validate ensures that required configuration values are present and meet security standards.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	// Strict checks for production: the session secret must fail closed
	// rather than fall back to the development default.
	if c.IsProduction() {
		if c.JWTSecret == DefaultJWTSecret {
			return errors.New("JWT_SECRET must be changed from the default value in production")
		}
		if len(c.JWTSecret) < 32 {
			return errors.New("JWT_SECRET must be at least 32 characters in production")
		}
		if c.DBPassword == "password" || c.DBPassword == "" {
			return errors.New("a strong DB_PASSWORD is required in production")
		}
		if c.DBSSLMode == "disable" || c.DBSSLMode == "" {
			return errors.New("DB_SSLMODE must be enabled in production")
		}
		if c.AllowedOrigins == "*" {
			log.Println("WARNING: ALLOWED_ORIGINS is set to '*' in production. This is insecure.")
		}
	} else {
		// Development/Test warnings
		if c.JWTSecret == DefaultJWTSecret {
			log.Println("WARNING: JWT_SECRET is the built-in development default. Set a real secret before deploying.")
		} else if len(c.JWTSecret) < 32 {
			log.Println("WARNING: JWT_SECRET is shorter than 32 characters. Consider using a stronger secret for production.")
		}
	}

	return nil
}
