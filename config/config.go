package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	JWTSecret      string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPass         string
	DBName         string
	DBNameTest     string
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	RedisDB        int
	MinioHost      string
	MinioPort      string
	MinioUsername  string
	MinioPassword  string
	BucketName     string
	BucketNameTest string
	UploadRate     float64
	UploadBurst    int
}

var AppConfig Config

// getEnv returns the environment value or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// InitConfig loads configuration and initializes sub-configs.
func InitConfig() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env failed: %v", err)
	}
	AppConfig = Config{
		JWTSecret:      getEnv("JWT_SECRET", "l=ax+b"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "3306"),
		DBUser:         getEnv("DB_USER", "root"),
		DBPass:         getEnv("DB_PASS", "root"),
		DBName:         getEnv("DB_NAME", "FlashVault"),
		DBNameTest:     getEnv("DB_NAME_TEST", "FlashVault_Test"),
		RedisHost:      getEnv("REDIS_HOST", "localhost"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        0,
		MinioHost:      getEnv("MINIO_HOST", "localhost"),
		MinioPort:      getEnv("MINIO_PORT", "9000"),
		MinioUsername:  getEnv("MINIO_USERNAME", "minioadmin"),
		MinioPassword:  getEnv("MINIO_PASSWORD", "minioadmin"),
		BucketName:     getEnv("BUCKET_NAME", "flashvault"),
		BucketNameTest: getEnv("BUCKET_NAME_TEST", "flashvault-test"),
		UploadRate:     getEnvFloat("UPLOAD_RATE", 2),
		UploadBurst:    getEnvInt("UPLOAD_BURST", 4),
	}

	InitMediaConfig()
}
