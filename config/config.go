package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"detailpro-backend/pricing"
)

// Config captures all tunable parameters for the process. Values come from
// environment variables with defaults that let the binary run locally.
type Config struct {
	Port        string
	DatabaseURL string

	// Where the van starts from. Mileage is priced from here.
	BusinessLat float64
	BusinessLng float64

	GoogleMapsAPIKey string
	MileageRate      float64

	AdminPassword      string
	SessionSecret      string
	SessionExpiryHours int

	RedisAddr       string
	RedisPassword   string
	GeocodeCacheTTL time.Duration

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	CORSOrigins []string
	LogLevel    string
	SeedDB      bool
}

func defaultConfig() Config {
	return Config{
		Port:               "8080",
		BusinessLat:        51.3148,
		BusinessLng:        -0.5600,
		MileageRate:        pricing.DefaultRatePerMile,
		SessionExpiryHours: 24,
		GeocodeCacheTTL:    24 * time.Hour,
		CORSOrigins:        []string{"http://localhost:3000"},
		LogLevel:           "info",
	}
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := defaultConfig()
	var errs []error

	setStringFromEnv(&cfg.Port, "PORT")
	cfg.DatabaseURL = os.Getenv("DB_URL")
	if cfg.DatabaseURL == "" {
		errs = append(errs, fmt.Errorf("DB_URL must be set"))
	}

	setFloatFromEnv(&cfg.BusinessLat, "BUSINESS_LAT", &errs)
	setFloatFromEnv(&cfg.BusinessLng, "BUSINESS_LNG", &errs)
	setFloatFromEnv(&cfg.MileageRate, "MILEAGE_RATE", &errs)

	cfg.GoogleMapsAPIKey = strings.TrimSpace(os.Getenv("GOOGLE_MAPS_API_KEY"))

	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	setIntFromEnv(&cfg.SessionExpiryHours, "SESSION_EXPIRY_HOURS", &errs)
	if cfg.AdminPassword != "" && cfg.SessionSecret == "" {
		errs = append(errs, fmt.Errorf("SESSION_SECRET must be set when ADMIN_PASSWORD is configured"))
	}

	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	setDurationFromEnv(&cfg.GeocodeCacheTTL, "GEOCODE_CACHE_TTL", &errs)

	cfg.TwilioAccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
	cfg.TwilioAuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
	cfg.TwilioFromNumber = os.Getenv("TWILIO_PHONE_NUMBER")

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitAndTrim(origins)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	cfg.SeedDB = strings.EqualFold(os.Getenv("SEED_DB"), "true")

	if cfg.MileageRate < 0 {
		errs = append(errs, fmt.Errorf("MILEAGE_RATE must be >= 0"))
	}

	return cfg, errors.Join(errs...)
}

// RemindersEnabled reports whether the daily SMS reminder job should run.
func (c Config) RemindersEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != ""
}

func setStringFromEnv(target *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*target = v
	}
}

func setFloatFromEnv(target *float64, key string, errs *[]error) {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
			return
		}
		*target = f
	}
}

func setIntFromEnv(target *int, key string, errs *[]error) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
			return
		}
		*target = i
	}
}

func setDurationFromEnv(target *time.Duration, key string, errs *[]error) {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
			return
		}
		*target = d
	}
}

func splitAndTrim(v string) []string {
	raw := strings.Split(v, ",")
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}
