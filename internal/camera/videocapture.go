package camera

import (
	"fmt"

	"gocv.io/x/gocv"
)

// GocvOpener はOpenCV (gocv) のVideoCaptureでデバイスを開くOpener実装
type GocvOpener struct{}

// NewGocvOpener は新しいGocvOpenerを作成する
func NewGocvOpener() *GocvOpener {
	return &GocvOpener{}
}

// Open は指定インデックスのデバイスをVideoCaptureとして開く
func (o *GocvOpener) Open(index int) (Device, error) {
	capture, err := gocv.OpenVideoCapture(index)
	if err != nil {
		return nil, fmt.Errorf("デバイス %d を開けません: %w", index, err)
	}

	if !capture.IsOpened() {
		_ = capture.Close()
		return nil, fmt.Errorf("デバイス %d が開かれていません", index)
	}

	return &gocvDevice{capture: capture}, nil
}

// gocvDevice はVideoCaptureをDeviceインターフェースに適合させる
type gocvDevice struct {
	capture *gocv.VideoCapture
}

// ReadFrame は1フレームを読み取る
func (d *gocvDevice) ReadFrame() (Frame, error) {
	mat := gocv.NewMat()
	if ok := d.capture.Read(&mat); !ok {
		_ = mat.Close()
		return nil, fmt.Errorf("フレームの読み取りに失敗しました")
	}

	if mat.Empty() {
		_ = mat.Close()
		return nil, fmt.Errorf("空のフレームを受信しました")
	}

	return &gocvFrame{mat: mat}, nil
}

// Width はデバイスの画像幅を返す
func (d *gocvDevice) Width() int {
	return int(d.capture.Get(gocv.VideoCaptureFrameWidth))
}

// Height はデバイスの画像高さを返す
func (d *gocvDevice) Height() int {
	return int(d.capture.Get(gocv.VideoCaptureFrameHeight))
}

// Backend は使用中のキャプチャバックエンド名を返す
func (d *gocvDevice) Backend() string {
	return backendName(int(d.capture.Get(gocv.VideoCaptureBackend)))
}

// Close はデバイスを解放する
func (d *gocvDevice) Close() error {
	return d.capture.Close()
}

// gocvFrame はMatをFrameインターフェースに適合させる
type gocvFrame struct {
	mat gocv.Mat
}

// Width はフレームの幅を返す
func (f *gocvFrame) Width() int {
	return f.mat.Cols()
}

// Height はフレームの高さを返す
func (f *gocvFrame) Height() int {
	return f.mat.Rows()
}

// Close はフレームのリソースを解放する
func (f *gocvFrame) Close() {
	_ = f.mat.Close()
}

// backendName はOpenCVのバックエンドIDを表示名に変換する
// videoio.hpp の VideoCaptureAPIs に対応する
func backendName(id int) string {
	switch id {
	case 0:
		return "AUTO"
	case 200:
		return "V4L2"
	case 700:
		return "DSHOW"
	case 1200:
		return "AVFOUNDATION"
	case 1400:
		return "MSMF"
	case 1800:
		return "GSTREAMER"
	case 1900:
		return "FFMPEG"
	default:
		return fmt.Sprintf("BACKEND_%d", id)
	}
}
