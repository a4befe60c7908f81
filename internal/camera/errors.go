package camera

import (
	"errors"
	"fmt"
)

// ErrNoDevicesAvailable は動作するデバイスが1台も見つからなかったことを表す
// 選択の試行としては致命的だが、呼び出し側はカメラ接続を促して再試行できる
var ErrNoDevicesAvailable = errors.New("利用可能なカメラが見つかりません")

// ErrSelectionCancelled はオペレーターが対話選択を中断したことを表す
// 内部で再試行せず、直ちに呼び出し側へ伝播する
var ErrSelectionCancelled = errors.New("カメラ選択がキャンセルされました")

// DeviceNotFoundError は指定インデックスが動作確認済み一覧に無いことを表す
type DeviceNotFoundError struct {
	Index     int   // 要求されたインデックス
	Available []int // 動作確認済みのインデックス一覧
}

// Error はエラーメッセージを返す
func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("カメラ %d は利用可能なデバイスにありません (利用可能: %v)", e.Index, e.Available)
}

// OpenFailedError はデバイスのオープンに失敗したことを表す
// 診断のため、失敗時点で再スキャンした利用可能デバイス一覧を保持する
type OpenFailedError struct {
	Index     int   // 開こうとしたインデックス
	Available []int // 再スキャンで得られたインデックス一覧
}

// Error はエラーメッセージを返す
func (e *OpenFailedError) Error() string {
	return fmt.Sprintf("カメラ %d を開けませんでした (利用可能: %v)", e.Index, e.Available)
}
