package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（3000）

	DBUser     string // DBユーザー
	DBPassword string // DBパスワード
	DBName     string // DB名
	DBHost     string // DBホスト（localhost）
	DBPort     int    // DBポート（5432）

	SessionSecret string // セッションCookie署名シークレット
}

// Loadは環境変数
func Load() (Config, error) {
	dbPort, err := mustAtoi("DB_PORT")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: os.Getenv("PORT"),

		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     dbPort,

		SessionSecret: os.Getenv("SESSION_SECRET"),
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.SessionSecret == "" {
		// 旧実装のデフォルトを踏襲
		cfg.SessionSecret = "eco_market_secret"
	}

	//必須チェック
	if cfg.DBUser == "" {
		return Config{}, fmt.Errorf("DB_USER is required")
	}
	if cfg.DBPassword == "" {
		return Config{}, fmt.Errorf("DB_PASSWORD is required")
	}
	if cfg.DBName == "" {
		return Config{}, fmt.Errorf("DB_NAME is required")
	}
	if cfg.DBHost == "" {
		return Config{}, fmt.Errorf("DB_HOST is required")
	}

	return cfg, nil
}

func mustAtoi(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
