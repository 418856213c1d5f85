package config

import (
	"fmt"
	"os"
)

// Image host backends for admin catalog uploads.
const (
	ImageHostSupabase = "supabase"
	ImageHostImgBB    = "imgbb"
)

type Config struct {
	// Supabase
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseJWTSecret      string
	SupabaseStorageBucket  string

	// Image hosting
	ImageHost   string
	ImgBBAPIURL string
	ImgBBKey    string

	// Database
	DatabaseURL string

	// Server
	Port        string
	Environment string
	BaseURL     string
}

func Load() (*Config, error) {
	cfg := &Config{
		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseJWTSecret:      getEnv("SUPABASE_JWT_SECRET", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "watch-images"),

		ImageHost:   getEnv("IMAGE_HOST", ImageHostSupabase),
		ImgBBAPIURL: getEnv("IMGBB_API_URL", "https://api.imgbb.com/1"),
		ImgBBKey:    getEnv("IMGBB_API_KEY", ""),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabasePublishableKey == "" {
		return fmt.Errorf("SUPABASE_PUBLISHABLE_KEY is required")
	}
	if c.SupabaseJWTSecret == "" {
		return fmt.Errorf("SUPABASE_JWT_SECRET is required")
	}
	if c.ImageHost != ImageHostSupabase && c.ImageHost != ImageHostImgBB {
		return fmt.Errorf("IMAGE_HOST must be %q or %q", ImageHostSupabase, ImageHostImgBB)
	}
	if c.ImageHost == ImageHostImgBB && c.ImgBBKey == "" {
		return fmt.Errorf("IMGBB_API_KEY is required when IMAGE_HOST is %q", ImageHostImgBB)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
