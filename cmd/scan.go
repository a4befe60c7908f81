// Package main はカメラスキャン・選択コマンドの実装です
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"facelocking/internal/camera"
	"facelocking/internal/config"
)

func main() {
	// コマンドラインオプション
	var (
		cameraIndex = flag.Int("camera", -1, "使用するカメラのインデックス (デフォルト: 自動選択)")
		builtin     = flag.Bool("builtin", false, "内蔵カメラを優先する")
		interactive = flag.Bool("interactive", false, "カメラを対話的に選択する")
		scanLimit   = flag.Int("scan", 0, "スキャンするインデックスの上限 (デフォルト: 5)")
		help        = flag.Bool("help", false, "ヘルプを表示")
	)

	flag.Parse()

	// ヘルプ表示
	if *help {
		fmt.Println("camscan - カメラの検出と選択")
		fmt.Println()
		fmt.Println("使用方法:")
		fmt.Println("  scan [オプション]")
		fmt.Println()
		fmt.Println("オプション:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// コマンドラインオプションで設定を上書き
	if *scanLimit > 0 {
		cfg.Camera.ScanLimit = *scanLimit
	}

	// 検出・選択・取得の各コンポーネントを組み立てる
	opener := camera.NewGocvOpener()
	prober := camera.NewProber(opener, cfg.Camera.ProbeTimeout)
	discovery := camera.NewDiscovery(prober)
	selector := camera.NewSelector(camera.NewConsolePrompter())
	manager := camera.NewManager(opener, discovery, cfg.Camera.ScanLimit)

	ctx := context.Background()

	// デバイスをスキャン
	log.Printf("カメラをスキャンしています (上限: %d)...", cfg.Camera.ScanLimit)
	devices, err := discovery.ScanDevices(ctx, cfg.Camera.ScanLimit)
	if err != nil {
		log.Fatalf("スキャンに失敗しました: %v", err)
	}

	fmt.Printf("%d 台のカメラが見つかりました: %v\n", len(devices), devices.Indexes())
	for _, d := range devices {
		fmt.Printf("  カメラ %d: %dx%d (%s)\n", d.Index, d.Width, d.Height, d.Backend)
	}

	// 選択ポリシーを決定
	policy := camera.Policy{Kind: camera.PolicyAutoExternal}
	switch {
	case *cameraIndex >= 0:
		policy = camera.Policy{Kind: camera.PolicyExplicit, Index: *cameraIndex}
	case *interactive:
		policy = camera.Policy{Kind: camera.PolicyInteractive}
	case *builtin:
		policy = camera.Policy{Kind: camera.PolicyAutoBuiltin}
	}

	index, err := selector.Select(ctx, policy, devices)
	if err != nil {
		log.Fatalf("カメラの選択に失敗しました: %v", err)
	}

	// 選択したカメラを開いて1フレーム読み取る
	handle, err := manager.OpenCamera(ctx, index)
	if err != nil {
		log.Fatalf("カメラのオープンに失敗しました: %v", err)
	}
	defer handle.Release()

	frame, err := handle.ReadFrame()
	if err != nil {
		// log.Fatalfはdeferを実行しないため、ここで明示的に解放する
		handle.Release()
		log.Fatalf("フレームの読み取りに失敗しました: %v", err)
	}

	fmt.Printf("カメラ %d からフレームを取得しました: %dx%d\n", index, frame.Width(), frame.Height())
	frame.Close()

	handle.Release()
}
