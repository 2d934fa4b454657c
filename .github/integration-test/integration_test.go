//go:build integration

package pulse

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/lowfreq/pulsego"
	"github.com/lowfreq/pulsego/proto"
)

// recordBuf collects the raw little-endian frames a record stream delivers.
type recordBuf struct {
	samples []int16
}

func (b *recordBuf) Write(p []byte) (int, error) {
	for i := 0; i+1 < len(p); i += 2 {
		b.samples = append(b.samples, int16(binary.LittleEndian.Uint16(p[i:])))
	}
	return len(p), nil
}

// Plays a rectangular wave into a dummy loopback and records it back.
// Requires a running server with the loopback module loaded.
func TestIntegration(t *testing.T) {
	var buf recordBuf

	// The dummy loopback sometimes needs a moment to start. Retry a few
	// times before giving up.
	for retry := 0; retry < 3; retry++ {
		c, err := pulse.NewClient(pulse.ClientApplicationName("integration"))
		if err != nil {
			t.Fatal(err)
		}
		defer c.Close()

		buf.samples = buf.samples[:0]
		record, err := c.NewRecord(&buf,
			pulse.RecordMono,
			pulse.RecordFormat(proto.FormatInt16LE),
			pulse.RecordBufferFragmentSize(256),
		)
		if err != nil {
			t.Fatal(err)
		}

		playback, err := c.NewPlayback(
			pulse.PlaybackMono,
			pulse.PlaybackFormat(proto.FormatInt16LE),
			pulse.PlaybackBufferSize(256),
		)
		if err != nil {
			t.Fatal(err)
		}

		if err := record.Start(); err != nil {
			t.Fatal(err)
		}
		if err := playback.Start(); err != nil {
			t.Fatal(err)
		}

		wave := make([]byte, 2*4096)
		for i := 0; i < 4096; i++ {
			v := int16(1000)
			if i%16 >= 8 {
				v = -1000
			}
			binary.LittleEndian.PutUint16(wave[2*i:], uint16(v))
		}
		deadline := time.Now().Add(time.Second)
		for time.Now().Before(deadline) {
			if _, err := playback.Write(wave); err != nil {
				t.Fatal(err)
			}
		}

		record.Stop()
		playback.Stop()
		playback.Drain()

		if len(buf.samples) > 256 {
			break
		}
	}

	if len(buf.samples) < 256 {
		t.Fatalf("could not record enough samples (%d)", len(buf.samples))
	}

	var histogram [3]int
	for _, v := range buf.samples {
		switch {
		case v == -1000:
			histogram[0]++
		case v == 1000:
			histogram[2]++
		default:
			histogram[1]++
		}
	}
	if histogram[1] > len(buf.samples)/100 {
		t.Errorf("recorded signal has values not in the played signal")
	}
	dutyRatio := float32(histogram[2]) / float32(histogram[0]+histogram[2])
	if dutyRatio < 0.49 || 0.51 < dutyRatio {
		t.Errorf("duty ratio of the recorded signal = %f, played 0.5", dutyRatio)
	}
}
