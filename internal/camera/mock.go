package camera

import (
	"fmt"
	"io"
	"sync"
)

// mockBehavior はモックデバイスの挙動種別
type mockBehavior int

const (
	mockWorking   mockBehavior = iota // フレームを返す
	mockReadFails                     // 読み取りが失敗する
	mockReadHangs                     // クローズされるまで読み取りがブロックする
)

// MockOpener はテスト用のOpener実装
// 登録されていないインデックスのオープンは失敗する。開いたデバイスを
// 全て記録するため、ハンドルリークの検査に使える
type MockOpener struct {
	behaviors map[int]mockBehavior
	widths    map[int]int
	heights   map[int]int
	backends  map[int]string

	mu     sync.Mutex
	opened []*MockDevice
}

// NewMockOpener は新しいMockOpenerを作成する
func NewMockOpener() *MockOpener {
	return &MockOpener{
		behaviors: make(map[int]mockBehavior),
		widths:    make(map[int]int),
		heights:   make(map[int]int),
		backends:  make(map[int]string),
	}
}

// AddWorkingDevice はフレームを返すデバイスを登録する
func (o *MockOpener) AddWorkingDevice(index, width, height int, backend string) {
	o.behaviors[index] = mockWorking
	o.widths[index] = width
	o.heights[index] = height
	o.backends[index] = backend
}

// AddNoFrameDevice は開けるがフレーム読み取りが失敗するデバイスを登録する
func (o *MockOpener) AddNoFrameDevice(index int) {
	o.behaviors[index] = mockReadFails
}

// AddHangingDevice は開けるが読み取りが永遠に返らないデバイスを登録する
func (o *MockOpener) AddHangingDevice(index int) {
	o.behaviors[index] = mockReadHangs
}

// Open は登録されたデバイスを開く
func (o *MockOpener) Open(index int) (Device, error) {
	behavior, exists := o.behaviors[index]
	if !exists {
		return nil, fmt.Errorf("モック: デバイス %d は存在しません", index)
	}

	device := &MockDevice{
		index:    index,
		behavior: behavior,
		width:    o.widths[index],
		height:   o.heights[index],
		backend:  o.backends[index],
		unblock:  make(chan struct{}),
	}

	o.mu.Lock()
	o.opened = append(o.opened, device)
	o.mu.Unlock()

	return device, nil
}

// OpenHandleCount はまだクローズされていないデバイス数を返す
func (o *MockOpener) OpenHandleCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	count := 0
	for _, d := range o.opened {
		if !d.isClosed() {
			count++
		}
	}
	return count
}

// MockDevice はテスト用のDevice実装
type MockDevice struct {
	index    int
	behavior mockBehavior
	width    int
	height   int
	backend  string

	mu      sync.Mutex
	closed  bool
	unblock chan struct{}
}

// ReadFrame は挙動設定に従ってフレームを返す
func (d *MockDevice) ReadFrame() (Frame, error) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil, fmt.Errorf("モック: デバイス %d はクローズ済みです", d.index)
	}
	behavior := d.behavior
	d.mu.Unlock()

	switch behavior {
	case mockReadFails:
		return nil, fmt.Errorf("モック: デバイス %d のフレーム読み取りに失敗", d.index)
	case mockReadHangs:
		// 実デバイスと同様、クローズされるまでブロックする
		<-d.unblock
		return nil, fmt.Errorf("モック: デバイス %d がクローズされました", d.index)
	default:
		return &MockFrame{width: d.width, height: d.height}, nil
	}
}

// Width はデバイスの画像幅を返す
func (d *MockDevice) Width() int {
	return d.width
}

// Height はデバイスの画像高さを返す
func (d *MockDevice) Height() int {
	return d.height
}

// Backend はバックエンド名を返す
func (d *MockDevice) Backend() string {
	return d.backend
}

// Close はデバイスを解放する
func (d *MockDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return fmt.Errorf("モック: デバイス %d は既にクローズされています", d.index)
	}

	d.closed = true
	close(d.unblock)
	return nil
}

// isClosed はデバイスがクローズ済みかを返す
func (d *MockDevice) isClosed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// MockFrame はテスト用のFrame実装
type MockFrame struct {
	width  int
	height int
	closed bool
}

// Width はフレームの幅を返す
func (f *MockFrame) Width() int {
	return f.width
}

// Height はフレームの高さを返す
func (f *MockFrame) Height() int {
	return f.height
}

// Close はフレームを解放する
func (f *MockFrame) Close() {
	f.closed = true
}

// MockPrompter はテスト用のスクリプト入力Prompter実装
// 入力が尽きるとio.EOFを返し、オペレーターのキャンセルを模倣する
type MockPrompter struct {
	inputs []string
	pos    int

	// 表示された行の記録
	ShownLines []string
}

// NewMockPrompter はスクリプト入力を持つMockPrompterを作成する
func NewMockPrompter(inputs ...string) *MockPrompter {
	return &MockPrompter{inputs: inputs}
}

// Show は表示行を記録する
func (p *MockPrompter) Show(line string) {
	p.ShownLines = append(p.ShownLines, line)
}

// Prompt はスクリプトから次の入力を返す
func (p *MockPrompter) Prompt(message string) (string, error) {
	p.ShownLines = append(p.ShownLines, message)

	if p.pos >= len(p.inputs) {
		return "", io.EOF
	}

	input := p.inputs[p.pos]
	p.pos++
	return input, nil
}
