package camera

import (
	"context"
)

// DefaultScanLimit はデバイススキャンのデフォルト上限
// 一般的なホストがこれ以上のキャプチャデバイスを持つことは稀なので、
// 広くスキャンしたい場合は呼び出し側が明示的に上限を渡す
const DefaultScanLimit = 5

// Discovery はインデックス範囲のスキャンによるカメラデバイス検出を実装する
type Discovery struct {
	prober *Prober
}

// NewDiscovery は新しいDiscoveryを作成する
func NewDiscovery(prober *Prober) *Discovery {
	return &Discovery{prober: prober}
}

// ScanDevices はインデックス 0..limit-1 を昇順にプローブして
// 動作確認済みデバイスの一覧を返す
// 開けるがフレームを出さないデバイスは使いものにならないため除外する。
// デバイスが1台も無いことは正常な結果であり、空の一覧を返す。
// エラーはコンテキストのキャンセルのみ
func (d *Discovery) ScanDevices(ctx context.Context, limit int) (DeviceList, error) {
	var devices DeviceList

	for i := 0; i < limit; i++ {
		// コンテキストのキャンセルをチェック
		select {
		case <-ctx.Done():
			return devices, ctx.Err()
		default:
		}

		result := d.prober.Probe(i)
		if result.Status == ProbeWorking {
			devices = append(devices, result)
		}
	}

	return devices, nil
}
