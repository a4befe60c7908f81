package camera

import (
	"time"
)

// DefaultProbeTimeout は最初のフレーム読み取りのデフォルト待ち時間
const DefaultProbeTimeout = 2 * time.Second

// Prober は単一インデックスのデバイスプローブを実装する
// プローブごとにデバイスを開いて閉じるため、呼び出し間で状態は持たない
type Prober struct {
	opener  Opener
	timeout time.Duration
}

// NewProber は新しいProberを作成する
// timeoutが0以下の場合はDefaultProbeTimeoutを使う
func NewProber(opener Opener, timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &Prober{
		opener:  opener,
		timeout: timeout,
	}
}

// Probe は指定インデックスのデバイスをプローブする
// 「デバイスが無い」はスキャン中の通常の結果なので、エラーではなく
// ProbeResultのデータとして返す。どの経路でもデバイスハンドルは
// 必ず解放してから返る
func (p *Prober) Probe(index int) ProbeResult {
	// ホストに存在しえないインデックスも Unavailable として扱う
	if index < 0 {
		return ProbeResult{Index: index, Status: ProbeUnavailable}
	}

	device, err := p.opener.Open(index)
	if err != nil {
		return ProbeResult{Index: index, Status: ProbeUnavailable}
	}

	// 応答しないデバイスでスキャンが止まらないよう、
	// 読み取りは自前のタイムアウトで抑える
	if err := p.readFirstFrame(device); err != nil {
		_ = device.Close()
		return ProbeResult{Index: index, Status: ProbeNoFrame}
	}

	result := ProbeResult{
		Index:   index,
		Status:  ProbeWorking,
		Width:   device.Width(),
		Height:  device.Height(),
		Backend: device.Backend(),
	}
	_ = device.Close()

	return result
}

// readFirstFrame は1フレームをタイムアウト付きで読み取る
func (p *Prober) readFirstFrame(device Device) error {
	type readResult struct {
		frame Frame
		err   error
	}

	done := make(chan readResult, 1)
	go func() {
		frame, err := device.ReadFrame()
		done <- readResult{frame: frame, err: err}
	}()

	timer := time.NewTimer(p.timeout)
	defer timer.Stop()

	select {
	case result := <-done:
		if result.frame != nil {
			result.frame.Close()
		}
		return result.err
	case <-timer.C:
		// デバイスクローズでブロック中の読み取りが解除されるため、
		// 遅れて届いたフレームは別ゴルーチンで回収する
		go func() {
			result := <-done
			if result.frame != nil {
				result.frame.Close()
			}
		}()
		return errReadTimeout
	}
}

// errReadTimeout はフレーム読み取りのタイムアウトを表す内部エラー
var errReadTimeout = timeoutError{}

type timeoutError struct{}

func (timeoutError) Error() string { return "フレーム読み取りがタイムアウトしました" }
func (timeoutError) Timeout() bool { return true }
