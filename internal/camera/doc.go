// Package camera カメラデバイスの検出と選択を担う
//
// # 責務
// - インデックス指定のデバイスプローブ（開く・1フレーム読む・特性取得）
// - 有界範囲スキャンによる動作確認済みデバイスの列挙
// - ポリシーに基づくデバイス選択（明示指定・外付け優先・内蔵優先・対話選択）
// - キャプチャハンドルの取得と解放管理
//
// # 使い分け
// このパッケージは以下の場合に使用する：
// - ホストに何台のカメラがあるか分からない状態から1台を選びたい
// - 開けるがフレームを出さないデバイスを除外したい
// - 対話・非対話の両方の環境で同じ選択ロジックを使いたい
//
// # 仕様
// - Prober: プローブごとにデバイスを開いて必ず解放する。読み取りは
//   タイムアウトで抑えられ、応答しないデバイスでもスキャンは止まらない
// - Discovery: 0..limit-1 を昇順スキャン。結果は昇順・重複なし
// - Selector: 対話選択の入出力はPrompterとして注入される
// - Manager/Handle: オープン成功のみを検証し、Releaseは冪等
// - 同期・単一スレッドの設計で、内部に並行処理は無い
// - デバイス層はgocv (OpenCV VideoCapture) を使用
//
// # 前提要件
//   - OpenCV 4.x: gocvのビルドと実行に必要
//     https://gocv.io/getting-started/ を参照
//   - videoグループへの参加: デバイスアクセス権限 (Linux)
//     sudo usermod -a -G video $USER
package camera
