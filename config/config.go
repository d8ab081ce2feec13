package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config menampung semua pengaturan untuk proses api dan dashboard.
type Config struct {
	DatabaseURL    string
	APIAddr        string
	DashboardAddr  string
	BackendURL     string
	AllowedOrigins []string

	// EncodingDimensions = 0 berarti panjang vektor tidak dicek.
	EncodingDimensions  int
	FallbackDelay       time.Duration
	BackendTimeout      time.Duration
	HealthCheckInterval time.Duration
	LogLevel            string
}

// Default mengembalikan konfigurasi untuk development lokal.
func Default() Config {
	return Config{
		APIAddr:             ":8000",
		DashboardAddr:       ":3000",
		BackendURL:          "http://localhost:8000",
		AllowedOrigins:      []string{"http://localhost:3000"},
		EncodingDimensions:  128,
		FallbackDelay:       1500 * time.Millisecond,
		BackendTimeout:      10 * time.Second,
		HealthCheckInterval: 30 * time.Second,
		LogLevel:            "info",
	}
}

// Load membaca file .env (kalau ada) lalu environment variable.
func Load() (Config, error) {
	// Di production file .env biasanya tidak ada, jadi error-nya cukup dicatat.
	if err := godotenv.Load(); err != nil {
		log.Println("Info: File .env tidak ditemukan. Menggunakan System Environment Variable.")
	}
	return FromEnv(os.Getenv)
}

// FromEnv mengisi Config dari fungsi lookup, dipisah supaya bisa dites.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	cfg.DatabaseURL = getenv("DATABASE_URL")
	if v := getenv("API_ADDR"); v != "" {
		cfg.APIAddr = v
	}
	if v := getenv("DASHBOARD_ADDR"); v != "" {
		cfg.DashboardAddr = v
	}
	if v := getenv("BACKEND_URL"); v != "" {
		cfg.BackendURL = strings.TrimRight(v, "/")
	}
	if v := getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
		if len(cfg.AllowedOrigins) == 0 {
			return Config{}, fmt.Errorf("invalid CORS_ALLOWED_ORIGINS %q", v)
		}
	}
	if v := getenv("FACE_ENCODING_DIM"); v != "" {
		dim, err := strconv.Atoi(v)
		if err != nil || dim < 0 {
			return Config{}, fmt.Errorf("invalid FACE_ENCODING_DIM %q", v)
		}
		cfg.EncodingDimensions = dim
	}

	var err error
	if cfg.FallbackDelay, err = durationVar(getenv, "SUBMIT_FALLBACK_DELAY", cfg.FallbackDelay); err != nil {
		return Config{}, err
	}
	if cfg.BackendTimeout, err = durationVar(getenv, "BACKEND_TIMEOUT", cfg.BackendTimeout); err != nil {
		return Config{}, err
	}
	if cfg.HealthCheckInterval, err = durationVar(getenv, "DB_HEALTH_INTERVAL", cfg.HealthCheckInterval); err != nil {
		return Config{}, err
	}
	if cfg.HealthCheckInterval <= 0 {
		return Config{}, fmt.Errorf("DB_HEALTH_INTERVAL must be positive")
	}

	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	return cfg, nil
}

// RequireDatabase dipanggil oleh proses api; dashboard tidak butuh database.
func (c Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL tidak ditemukan di environment variable")
	}
	return nil
}

func durationVar(getenv func(string) string, key string, fallback time.Duration) (time.Duration, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: negative duration", key)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
