package config

import (
	"os"
	"testing"
	"time"
)

// TestConfigLoad は設定の読み込みをテストする
func TestConfigLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	if cfg == nil {
		t.Fatal("設定がnilです")
	}

	// サーバー設定の検証
	if cfg.Server.Host == "" {
		t.Error("サーバーホストが設定されていません")
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		t.Errorf("無効なポート番号: %d", cfg.Server.Port)
	}

	// カメラ設定の検証
	if cfg.Camera.ScanLimit <= 0 {
		t.Errorf("スキャン上限が設定されていません: %d", cfg.Camera.ScanLimit)
	}
	if cfg.Camera.ProbeTimeout <= 0 {
		t.Error("プローブタイムアウトが設定されていません")
	}
}

// TestConfigEnvOverride は環境変数による上書きをテストする
func TestConfigEnvOverride(t *testing.T) {
	if err := os.Setenv("CAMERA_SCAN_LIMIT", "10"); err != nil {
		t.Fatalf("環境変数の設定に失敗: %v", err)
	}
	if err := os.Setenv("CAMERA_PROBE_TIMEOUT_MS", "500"); err != nil {
		t.Fatalf("環境変数の設定に失敗: %v", err)
	}
	defer func() {
		_ = os.Unsetenv("CAMERA_SCAN_LIMIT")
		_ = os.Unsetenv("CAMERA_PROBE_TIMEOUT_MS")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	if cfg.Camera.ScanLimit != 10 {
		t.Errorf("Expected scan limit 10, got %d", cfg.Camera.ScanLimit)
	}
	if cfg.Camera.ProbeTimeout != 500*time.Millisecond {
		t.Errorf("Expected probe timeout 500ms, got %v", cfg.Camera.ProbeTimeout)
	}
}

// TestConfigValidation は設定の検証をテストする
func TestConfigValidation(t *testing.T) {
	testCases := []struct {
		name      string
		config    *Config
		expectErr bool
	}{
		{
			name: "有効な設定",
			config: &Config{
				Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
				Camera: CameraConfig{ScanLimit: 5, ProbeTimeout: 2 * time.Second},
			},
			expectErr: false,
		},
		{
			name: "無効なポート番号",
			config: &Config{
				Server: ServerConfig{Host: "0.0.0.0", Port: 99999},
				Camera: CameraConfig{ScanLimit: 5, ProbeTimeout: 2 * time.Second},
			},
			expectErr: true,
		},
		{
			name: "負のスキャン上限",
			config: &Config{
				Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
				Camera: CameraConfig{ScanLimit: -1, ProbeTimeout: 2 * time.Second},
			},
			expectErr: true,
		},
		{
			name: "プローブタイムアウトなし",
			config: &Config{
				Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
				Camera: CameraConfig{ScanLimit: 5},
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if tc.expectErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tc.expectErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

// TestServerAddress はリッスンアドレスの組み立てをテストする
func TestServerAddress(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 9000},
	}

	if addr := cfg.ServerAddress(); addr != "127.0.0.1:9000" {
		t.Errorf("Expected 127.0.0.1:9000, got %s", addr)
	}
}
