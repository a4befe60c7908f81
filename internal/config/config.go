package config

import (
	"fmt"
	"os"
	"time"

	"facelocking/internal/camera"
)

// Config はアプリケーション全体の設定を保持する構造体
type Config struct {
	Server ServerConfig `yaml:"server"`
	Camera CameraConfig `yaml:"camera"`
}

// ServerConfig はHTTPサーバーの設定
type ServerConfig struct {
	Host string `yaml:"host"` // リッスンするホスト
	Port int    `yaml:"port"` // リッスンするポート番号

	// タイムアウト設定
	ReadTimeout  time.Duration `yaml:"read_timeout"`  // 読み込みタイムアウト
	WriteTimeout time.Duration `yaml:"write_timeout"` // 書き込みタイムアウト
}

// CameraConfig はカメラ検出関連の設定
type CameraConfig struct {
	// ScanLimit はデバイススキャンの上限（インデックス 0..ScanLimit-1 を調べる）
	ScanLimit int `yaml:"scan_limit"`

	// ProbeTimeout はプローブ時のフレーム読み取り待ち時間
	ProbeTimeout time.Duration `yaml:"probe_timeout"`
}

// Load は設定を読み込む
// デフォルト値を環境変数で上書きするシンプルな実装
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsIntOrDefault("PORT", 8080),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Camera: CameraConfig{
			ScanLimit:    getEnvAsIntOrDefault("CAMERA_SCAN_LIMIT", camera.DefaultScanLimit),
			ProbeTimeout: time.Duration(getEnvAsIntOrDefault("CAMERA_PROBE_TIMEOUT_MS", 2000)) * time.Millisecond,
		},
	}

	// 設定の検証
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	// サーバー設定の検証
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("無効なポート番号: %d", c.Server.Port)
	}

	// カメラ設定の検証
	if c.Camera.ScanLimit < 0 {
		return fmt.Errorf("無効なスキャン上限: %d", c.Camera.ScanLimit)
	}
	if c.Camera.ProbeTimeout <= 0 {
		return fmt.Errorf("無効なプローブタイムアウト: %v", c.Camera.ProbeTimeout)
	}

	return nil
}

// ServerAddress はサーバーのリッスンアドレスを返す
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// getEnvOrDefault は環境変数を取得し、設定されていない場合はデフォルト値を返す
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault は環境変数を整数として取得し、設定されていない場合はデフォルト値を返す
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var intVal int
		if _, err := fmt.Sscanf(value, "%d", &intVal); err == nil {
			return intVal
		}
	}
	return defaultValue
}
