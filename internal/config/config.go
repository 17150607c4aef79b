package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// godotenvLoad 供測試覆寫
var godotenvLoad = godotenv.Load

// Config 彙整服務啟動所需的設定，啟動時一次載入後注入各元件
type Config struct {
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	TokenTTL      time.Duration
	WorkerCount   int
	Port          string
}

// Load 讀取 .env（如果存在）與環境變數
// DATABASE_URL、REDIS_ADDR、JWT_SECRET 缺少時回傳錯誤，啟動應中止
func Load() (*Config, error) {
	if err := godotenvLoad(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      24 * time.Hour,
		WorkerCount:   1,
		Port:          "8080",
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("無效的 REDIS_DB: %v", err)
		}
		cfg.RedisDB = n
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("無效的 TOKEN_TTL: %q", v)
		}
		cfg.TokenTTL = ttl
	}

	if v := os.Getenv("WORKER_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("無效的 WORKER_COUNT: %q", v)
		}
		cfg.WorkerCount = n
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	return cfg, nil
}
