package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Session  SessionConfig
	Log      LogConfig
	Reminder ReminderConfig
}

type AppConfig struct {
	Name string
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig สำหรับ cache สถิติของ user
type RedisConfig struct {
	URL      string // redis://localhost:6379
	Password string
	DB       int
	// TTL ของ stats cache (วินาที)
	StatsTTL int
}

// NATSConfig configuration สำหรับ NATS JetStream
type NATSConfig struct {
	URL string // nats://localhost:4222
}

type JWTConfig struct {
	Secret string
	// อายุ token (ชั่วโมง)
	ExpiryHours int
}

// SessionConfig สำหรับ session cookie ที่ใช้คู่กับ Bearer token
type SessionConfig struct {
	CookieName   string
	CookieDomain string
	// อายุ cookie (วินาที)
	CookieMaxAge int
	Secure       bool
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string // logs/app.log
	MaxSize    int    // MB
	MaxBackups int    // จำนวน backup files
	MaxAge     int    // วัน
	Compress   bool   // บีบอัด backup
}

// ReminderConfig สำหรับ background job สแกน reminder
type ReminderConfig struct {
	Enabled bool
	// รอบการสแกน (วินาที)
	ScanInterval int
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		// ไม่ error ถ้าไม่มี .env file (ใช้ environment variables แทน)
	}

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	statsTTL, _ := strconv.Atoi(getEnv("REDIS_STATS_TTL", "300"))

	jwtExpiry, _ := strconv.Atoi(getEnv("JWT_EXPIRY_HOURS", "72"))
	cookieMaxAge, _ := strconv.Atoi(getEnv("SESSION_COOKIE_MAX_AGE", "259200")) // 3 วัน
	cookieSecure := getEnv("SESSION_COOKIE_SECURE", "false") == "true"

	reminderEnabled := getEnv("REMINDER_ENABLED", "true") == "true"
	reminderInterval, _ := strconv.Atoi(getEnv("REMINDER_SCAN_INTERVAL", "60"))

	config := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "TodoDeck"),
			Port: getEnv("APP_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "tododeck"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
			StatsTTL: statsTTL,
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", "nats://localhost:4222"),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "your-secret-key"),
			ExpiryHours: jwtExpiry,
		},
		Session: SessionConfig{
			CookieName:   getEnv("SESSION_COOKIE_NAME", "tododeck_session"),
			CookieDomain: getEnv("SESSION_COOKIE_DOMAIN", ""),
			CookieMaxAge: cookieMaxAge,
			Secure:       cookieSecure,
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "both"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
		Reminder: ReminderConfig{
			Enabled:      reminderEnabled,
			ScanInterval: reminderInterval,
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsDevelopment ตรวจสอบว่าเป็น development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction ตรวจสอบว่าเป็น production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
