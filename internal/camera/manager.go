package camera

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
)

// Manager はキャプチャハンドルの取得を担う
// プローブと違い、オープン成功のみを成功条件とする。スキャンで検証済みの
// デバイスに対して毎回フレーム読み取りを繰り返すのは無駄だからで、
// 「フレームが出る」保証はプローブ側の責務に留める
type Manager struct {
	opener    Opener
	discovery *Discovery
	scanLimit int
}

// NewManager は新しいManagerを作成する
// scanLimitはオープン失敗時の診断用再スキャンに使われる
func NewManager(opener Opener, discovery *Discovery, scanLimit int) *Manager {
	if scanLimit <= 0 {
		scanLimit = DefaultScanLimit
	}
	return &Manager{
		opener:    opener,
		discovery: discovery,
		scanLimit: scanLimit,
	}
}

// OpenCamera は指定インデックスのデバイスを開いてハンドルを返す
// 失敗時は新しくスキャンし直した利用可能デバイス一覧をOpenFailedErrorに
// 載せて返す。失敗経路でのみ許容する追加コスト
func (m *Manager) OpenCamera(ctx context.Context, index int) (*Handle, error) {
	device, err := m.opener.Open(index)
	if err != nil {
		available, scanErr := m.discovery.ScanDevices(ctx, m.scanLimit)
		if scanErr != nil {
			// スキャン自体が中断された場合、一覧はそこまでの部分結果になる
			log.Printf("診断用スキャンが中断されました: %v", scanErr)
		}
		return nil, &OpenFailedError{Index: index, Available: available.Indexes()}
	}

	handle := &Handle{
		id:     uuid.New().String(),
		index:  index,
		device: device,
	}

	log.Printf("カメラ %d を開きました: %dx%d (%s) [handle=%s]",
		index, device.Width(), device.Height(), device.Backend(), handle.id)

	return handle, nil
}

// Handle は選択されたデバイスに束縛されたキャプチャハンドル
// 排他的に所有され、呼び出し側がReleaseで解放する
type Handle struct {
	id     string
	index  int
	device Device

	mu       sync.Mutex
	released bool
}

// ID はハンドルの識別子を返す
func (h *Handle) ID() string {
	return h.id
}

// Index は束縛されているデバイスインデックスを返す
func (h *Handle) Index() int {
	return h.index
}

// ReadFrame はデバイスから1フレームを読み取る
func (h *Handle) ReadFrame() (Frame, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.released {
		return nil, fmt.Errorf("カメラ %d のハンドルは既に解放されています", h.index)
	}

	return h.device.ReadFrame()
}

// Release はハンドルを解放する
// 冪等であり、解放済みハンドルへの呼び出しは何もしない。ループの
// break経路とdefer経路の両方で解放する呼び出し側を保護するための仕様
func (h *Handle) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.released {
		return
	}

	if err := h.device.Close(); err != nil {
		log.Printf("カメラ %d のクローズに失敗: %v", h.index, err)
	}
	h.released = true
}
