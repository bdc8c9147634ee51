package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port string

	// Storage roots
	StoragePath string // submissions, photos, settings.json, admin_tokens.json
	PublicPath  string // static assets, /images logo dir

	// Admin credentials & session
	AdminUsername     string
	AdminPasswordHash string
	AdminSessionTTL   int // hours

	// ✅ Redis Config (optional token store backend)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// PDF rendering
	PDFMaxConcurrent int
	PDFFontPath      string // UTF-8 TTF for Bengali text, optional

	// ✅ SMTP Config (submission notifications)
	SMTPHost         string
	SMTPPort         string
	SMTPUsername     string
	SMTPPassword     string
	SMTPFromName     string
	SMTPFromEmail    string
	AdminNotifyEmail string
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	sessionTTL, _ := strconv.Atoi(os.Getenv("ADMIN_SESSION_TTL_HOURS"))
	if sessionTTL <= 0 {
		sessionTTL = 24
	}
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	pdfMax, _ := strconv.Atoi(os.Getenv("PDF_MAX_CONCURRENT"))
	if pdfMax <= 0 {
		pdfMax = 2
	}

	cfg := &Config{
		Port: getenv("PORT", "8080"),

		StoragePath: getenv("STORAGE_PATH", "./storage"),
		PublicPath:  getenv("PUBLIC_PATH", "./public"),

		AdminUsername:     getenv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminSessionTTL:   sessionTTL,

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		PDFMaxConcurrent: pdfMax,
		PDFFontPath:      os.Getenv("PDF_FONT_PATH"),

		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         os.Getenv("SMTP_PORT"),
		SMTPUsername:     os.Getenv("SMTP_USERNAME"),
		SMTPPassword:     os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:     os.Getenv("SMTP_FROM_NAME"),
		SMTPFromEmail:    os.Getenv("SMTP_FROM_EMAIL"),
		AdminNotifyEmail: os.Getenv("ADMIN_NOTIFY_EMAIL"),
	}

	// Default credentials: admin / admin123. CHANGE THIS IN PRODUCTION!
	if cfg.AdminPasswordHash == "" {
		log.Println("⚠️ ADMIN_PASSWORD_HASH not set, falling back to default password")
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("❌ Failed to generate default admin hash: %v", err)
		}
		cfg.AdminPasswordHash = string(hash)
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
