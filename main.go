package main

import (
	"context"
	"log"
	"os"

	"facelocking/internal/camera"
	"facelocking/internal/config"
	"facelocking/internal/server"
)

func main() {
	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// サーバーを作成（デバイス層はgocv）
	srv := server.New(cfg, camera.NewGocvOpener())

	// コンテキストを作成
	ctx := context.Background()

	// サーバーを起動
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
		os.Exit(1)
	}
}
