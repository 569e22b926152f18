package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment. It is
// built once at startup and passed explicitly into the components that
// need it; nothing mutates it afterwards.
type Config struct {
	Port string

	DatabaseURL string
	SSLMode     string

	AdminUser     string
	AdminPass     string
	SessionSecret string

	AllowedOrigins []string
	CookieSecure   bool

	UploadDir     string
	UploadBaseURL string
}

// Known frontend deployments plus the local Vite dev/preview ports.
var defaultOrigins = []string{
	"https://gtnglobal.org",
	"https://www.gtnglobal.org",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
	"http://localhost:4173",
	"http://127.0.0.1:4173",
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("❌ DATABASE_URL is required")
	}
	sslMode := getenv("PGSSLMODE", "require")

	return &Config{
		Port: getenv("PORT", "8000"),

		DatabaseURL: normalizeDatabaseURL(dbURL, sslMode),
		SSLMode:     sslMode,

		AdminUser:     getenv("ADMIN_USER", "admin"),
		AdminPass:     getenv("ADMIN_PASS", "admin@123"),
		SessionSecret: getenv("SESSION_SECRET", "change-me"),

		AllowedOrigins: origins(os.Getenv("ALLOWED_ORIGINS")),
		CookieSecure:   getenv("COOKIE_SECURE", "true") != "false",

		UploadDir:     getenv("UPLOAD_DIR", "./uploads"),
		UploadBaseURL: strings.TrimSuffix(os.Getenv("UPLOAD_BASE_URL"), "/"),
	}
}

// normalizeDatabaseURL accepts the DSN in either the generic postgres://
// form or the full postgresql:// form and forces the configured sslmode
// onto it when the URL does not already carry one.
func normalizeDatabaseURL(raw, sslMode string) string {
	if strings.HasPrefix(raw, "postgres://") {
		raw = "postgresql://" + strings.TrimPrefix(raw, "postgres://")
	}
	if !strings.Contains(raw, "sslmode=") {
		sep := "?"
		if strings.Contains(raw, "?") {
			sep = "&"
		}
		raw += sep + "sslmode=" + sslMode
	}
	return raw
}

func origins(raw string) []string {
	if raw == "" {
		return defaultOrigins
	}
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return defaultOrigins
	}
	return out
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
