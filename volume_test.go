package pulse

import (
	"math"
	"testing"

	"github.com/lowfreq/pulsego/proto"
)

func TestVolumePercent(t *testing.T) {
	if got := VolumeFromPercent(100); got != proto.VolumeNorm {
		t.Errorf("VolumeFromPercent(100) = %#x, want %#x", got, proto.VolumeNorm)
	}
	if got := VolumeFromPercent(0); got != proto.VolumeMuted {
		t.Errorf("VolumeFromPercent(0) = %d, want muted", got)
	}
	if got := VolumeToPercent(proto.VolumeNorm / 2); got != 50 {
		t.Errorf("VolumeToPercent(norm/2) = %v, want 50", got)
	}
}

func TestVolumeLinear(t *testing.T) {
	if got := VolumeFromLinear(1); got != proto.VolumeNorm {
		t.Errorf("VolumeFromLinear(1) = %#x, want %#x", got, proto.VolumeNorm)
	}
	if got := VolumeFromLinear(0); got != proto.VolumeMuted {
		t.Errorf("VolumeFromLinear(0) = %d, want muted", got)
	}
	for _, f := range []float64{0.1, 0.5, 1, 2} {
		v := VolumeFromLinear(f)
		if back := VolumeToLinear(v); math.Abs(back-f)/f > 1e-3 {
			t.Errorf("VolumeToLinear(VolumeFromLinear(%v)) = %v", f, back)
		}
	}
	if got := VolumeToLinear(proto.VolumeMuted); got != 0 {
		t.Errorf("VolumeToLinear(muted) = %v, want 0", got)
	}
}

func TestVolumeDecibels(t *testing.T) {
	if got := VolumeFromDecibels(0); got != proto.VolumeNorm {
		t.Errorf("VolumeFromDecibels(0) = %#x, want %#x", got, proto.VolumeNorm)
	}
	if got := VolumeToDecibels(proto.VolumeMuted); !math.IsInf(got, -1) {
		t.Errorf("VolumeToDecibels(muted) = %v, want -Inf", got)
	}
	if got := VolumeFromDecibels(math.Inf(-1)); got != proto.VolumeMuted {
		t.Errorf("VolumeFromDecibels(-Inf) = %d, want muted", got)
	}
	v := VolumeFromDecibels(-6)
	if db := VolumeToDecibels(v); math.Abs(db+6) > 0.01 {
		t.Errorf("round trip -6 dB = %v", db)
	}
}

func TestChannelVolumes(t *testing.T) {
	cvol, err := channelVolumes(2, []float32{1})
	if err != nil {
		t.Fatalf("single ratio: %v", err)
	}
	if len(cvol) != 2 || cvol[0] != proto.VolumeNorm || cvol[1] != proto.VolumeNorm {
		t.Fatalf("single ratio spread = %v", cvol)
	}

	cvol, err = channelVolumes(2, []float32{0.5, 1})
	if err != nil {
		t.Fatalf("per channel: %v", err)
	}
	if len(cvol) != 2 || cvol[0] != proto.VolumeNorm/2 || cvol[1] != proto.VolumeNorm {
		t.Fatalf("per channel = %v", cvol)
	}

	if _, err := channelVolumes(2, []float32{1, 1, 1}); err == nil {
		t.Fatal("length mismatch accepted")
	}
	if _, err := channelVolumes(1, []float32{-1}); err == nil {
		t.Fatal("negative ratio accepted")
	}
}
