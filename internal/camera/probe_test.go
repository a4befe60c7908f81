package camera

import (
	"testing"
	"time"
)

func TestProberWorkingDevice(t *testing.T) {
	opener := NewMockOpener()
	opener.AddWorkingDevice(0, 1280, 720, "V4L2")

	prober := NewProber(opener, time.Second)

	result := prober.Probe(0)
	if result.Status != ProbeWorking {
		t.Fatalf("Expected status %s, got %s", ProbeWorking, result.Status)
	}
	if result.Width != 1280 || result.Height != 720 {
		t.Errorf("Expected 1280x720, got %dx%d", result.Width, result.Height)
	}
	if result.Backend != "V4L2" {
		t.Errorf("Expected backend V4L2, got %s", result.Backend)
	}

	// プローブ後にハンドルが残っていないこと
	if count := opener.OpenHandleCount(); count != 0 {
		t.Errorf("Expected 0 open handles after probe, got %d", count)
	}
}

func TestProberUnavailableDevice(t *testing.T) {
	opener := NewMockOpener()
	prober := NewProber(opener, time.Second)

	// 未登録のインデックス
	result := prober.Probe(3)
	if result.Status != ProbeUnavailable {
		t.Errorf("Expected status %s, got %s", ProbeUnavailable, result.Status)
	}

	// ホストに存在しえないインデックス
	result = prober.Probe(-1)
	if result.Status != ProbeUnavailable {
		t.Errorf("Expected status %s for negative index, got %s", ProbeUnavailable, result.Status)
	}
}

func TestProberNoFrameDevice(t *testing.T) {
	opener := NewMockOpener()
	opener.AddNoFrameDevice(1)

	prober := NewProber(opener, time.Second)

	result := prober.Probe(1)
	if result.Status != ProbeNoFrame {
		t.Fatalf("Expected status %s, got %s", ProbeNoFrame, result.Status)
	}

	// 読み取り失敗の経路でもデバイスは解放されること
	if count := opener.OpenHandleCount(); count != 0 {
		t.Errorf("Expected 0 open handles after failed read, got %d", count)
	}
}

func TestProberReadTimeout(t *testing.T) {
	opener := NewMockOpener()
	opener.AddHangingDevice(0)

	prober := NewProber(opener, 50*time.Millisecond)

	start := time.Now()
	result := prober.Probe(0)
	elapsed := time.Since(start)

	if result.Status != ProbeNoFrame {
		t.Errorf("Expected status %s, got %s", ProbeNoFrame, result.Status)
	}

	// タイムアウトの範囲内で返ること（多少の余裕を見る）
	if elapsed > time.Second {
		t.Errorf("Probe took too long: %v", elapsed)
	}

	// タイムアウト経路でもデバイスは解放されること
	if count := opener.OpenHandleCount(); count != 0 {
		t.Errorf("Expected 0 open handles after timeout, got %d", count)
	}
}

func TestProberDefaultTimeout(t *testing.T) {
	opener := NewMockOpener()

	prober := NewProber(opener, 0)
	if prober.timeout != DefaultProbeTimeout {
		t.Errorf("Expected default timeout %v, got %v", DefaultProbeTimeout, prober.timeout)
	}
}
