package camera

import (
	"context"
	"testing"
	"time"
)

func TestScanDevices(t *testing.T) {
	ctx := context.Background()

	opener := NewMockOpener()
	opener.AddWorkingDevice(0, 640, 480, "V4L2")
	opener.AddNoFrameDevice(1)
	opener.AddWorkingDevice(2, 1920, 1080, "V4L2")

	discovery := NewDiscovery(NewProber(opener, time.Second))

	devices, err := discovery.ScanDevices(ctx, 5)
	if err != nil {
		t.Fatalf("ScanDevices failed: %v", err)
	}

	// 動作するのは 0 と 2 のみ。開けるがフレームを出さない 1 は除外される
	indexes := devices.Indexes()
	if len(indexes) != 2 || indexes[0] != 0 || indexes[1] != 2 {
		t.Fatalf("Expected indexes [0 2], got %v", indexes)
	}

	// 特性もスキャン結果に含まれること
	if entry, found := devices.Find(2); !found || entry.Width != 1920 {
		t.Errorf("Expected device 2 with width 1920, got %+v", entry)
	}
}

func TestScanDevicesEmpty(t *testing.T) {
	ctx := context.Background()
	discovery := NewDiscovery(NewProber(NewMockOpener(), time.Second))

	// デバイスが1台も無いことはエラーではない
	devices, err := discovery.ScanDevices(ctx, 5)
	if err != nil {
		t.Fatalf("ScanDevices failed: %v", err)
	}
	if len(devices) != 0 {
		t.Errorf("Expected empty device list, got %v", devices.Indexes())
	}
}

func TestScanDevicesAscendingSubsequence(t *testing.T) {
	ctx := context.Background()

	opener := NewMockOpener()
	for _, i := range []int{1, 3, 4} {
		opener.AddWorkingDevice(i, 640, 480, "AUTO")
	}

	discovery := NewDiscovery(NewProber(opener, time.Second))

	for bound := 0; bound <= 6; bound++ {
		devices, err := discovery.ScanDevices(ctx, bound)
		if err != nil {
			t.Fatalf("ScanDevices(%d) failed: %v", bound, err)
		}

		if len(devices) > bound {
			t.Errorf("Bound %d: got %d entries, more than bound", bound, len(devices))
		}

		// 厳密な昇順かつ 0..bound-1 の範囲内であること
		prev := -1
		for _, d := range devices {
			if d.Index <= prev {
				t.Errorf("Bound %d: indexes not strictly ascending: %v", bound, devices.Indexes())
			}
			if d.Index < 0 || d.Index >= bound {
				t.Errorf("Bound %d: index %d out of range", bound, d.Index)
			}
			prev = d.Index
		}
	}
}

func TestScanDevicesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opener := NewMockOpener()
	opener.AddWorkingDevice(0, 640, 480, "AUTO")

	discovery := NewDiscovery(NewProber(opener, time.Second))

	_, err := discovery.ScanDevices(ctx, 5)
	if err == nil {
		t.Error("Expected error from cancelled context")
	}
}
