// Package server は、カメラ検出APIを提供するHTTPサーバーを管理します。
//
// このパッケージは、HTTPサーバーの起動、ルーティング、
// カメラの一覧取得・照会・選択エンドポイントの処理を担当します。
//
// 責務:
//   - HTTPサーバーの起動と管理
//   - デバイススキャン結果のJSON配信
//   - 選択ポリシーのHTTP経由での実行
//   - クライアントからのリクエスト処理
//
// 仕様:
//   - gin-gonic/gin を使用
//   - グレースフルシャットダウンに対応
//   - HTTP経由の選択は非対話（interactiveポリシーは即時失敗）
//   - キャプチャハンドルをリクエストをまたいで保持しない
package server
