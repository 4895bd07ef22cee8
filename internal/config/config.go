package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort          string // Application port
	DBUser           string // Database user
	DBPassword       string // Database password
	DBHost           string // Database host
	DBPort           string // Database port
	DBName           string // Database name
	JWTSecret        string // Access token secret key
	JWTExpiryMin     int    // Access token lifetime in minutes
	JWTRefreshSecret string // Refresh token secret key
	JWTRefreshMin    int    // Refresh token lifetime in minutes
	OTPExpiryMin     int    // OTP validity window in minutes
	BcryptCost       int    // Password hashing cost factor
	RedisAddr        string // Redis server address
	RedisPass        string // Redis password
	RedisDB          int    // Redis database number
	IsProd           bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:          os.Getenv("APP_PORT"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           os.Getenv("DB_PORT"),
		DBName:           os.Getenv("DB_NAME"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTExpiryMin:     envInt("JWT_EXPIRY_MIN", 60),
		JWTRefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),
		JWTRefreshMin:    envInt("JWT_REFRESH_EXPIRY_MIN", 7*24*60),
		OTPExpiryMin:     envInt("OTP_EXPIRY_MIN", 5),
		BcryptCost:       envInt("BCRYPT_COST", 10),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPass:        os.Getenv("REDIS_PASS"),
		RedisDB:          redisDB,
		IsProd:           os.Getenv("IS_PROD") == "true",
	}
}

// envInt reads an integer environment variable with a fallback default
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
