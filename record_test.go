package pulse

import (
	"errors"
	"net"
	"testing"

	"github.com/lowfreq/pulsego/proto"
)

type limitedWriter struct {
	buf   []byte
	limit int
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	room := w.limit - len(w.buf)
	if room >= len(p) {
		w.buf = append(w.buf, p...)
		return len(p), nil
	}
	w.buf = append(w.buf, p[:room]...)
	return room, errors.New("consumer full")
}

func recordTestStream(t *testing.T, w *limitedWriter, maxBytes int64) *RecordStream {
	t.Helper()
	clientSide, serverSide := net.Pipe()
	pc := &proto.Client{}
	pc.Open(clientSide)
	t.Cleanup(func() {
		pc.Close()
		serverSide.Close()
	})
	c := &Client{
		c:        pc,
		record:   make(map[uint32]*RecordStream),
		playback: make(map[uint32]*PlaybackStream),
		upload:   make(map[uint32]*UploadStream),
	}
	r := &RecordStream{c: c, w: w, index: 1, remaining: maxBytes, maxBytes: maxBytes}
	c.record[r.index] = r
	return r
}

func TestRecordDropsWhilePaused(t *testing.T) {
	w := &limitedWriter{limit: 100}
	r := recordTestStream(t, w, unlimited)

	r.push([]byte{1, 2, 3, 4})
	if len(w.buf) != 0 {
		t.Fatalf("paused stream delivered %d bytes", len(w.buf))
	}

	r.running = true
	r.push([]byte{1, 2, 3, 4})
	if len(w.buf) != 4 {
		t.Fatalf("running stream delivered %d bytes, want 4", len(w.buf))
	}
}

func TestRecordOverrunPauses(t *testing.T) {
	w := &limitedWriter{limit: 2}
	r := recordTestStream(t, w, unlimited)

	overruns := 0
	r.overrun = func() { overruns++ }
	r.running = true

	r.push([]byte{1, 2, 3, 4})
	if overruns != 1 {
		t.Fatalf("overrun fired %d times, want 1", overruns)
	}
	if r.Running() {
		t.Fatal("stream still running after short write")
	}

	// Paused delivery drops blocks without touching the consumer again.
	r.push([]byte{5, 6})
	if len(w.buf) != 2 || overruns != 1 {
		t.Fatalf("buf = %v, overruns = %d after paused push", w.buf, overruns)
	}
}

func TestRecordByteCap(t *testing.T) {
	w := &limitedWriter{limit: 100}
	r := recordTestStream(t, w, 6)

	ended := 0
	r.end = func() { ended++ }
	r.running = true

	r.push([]byte{1, 2, 3, 4})
	if ended != 0 {
		t.Fatalf("end fired before the cap")
	}

	// The block crossing the cap is truncated and ends the stream.
	r.push([]byte{5, 6, 7, 8})
	if len(w.buf) != 6 {
		t.Fatalf("delivered %d bytes, want 6", len(w.buf))
	}
	if ended != 1 {
		t.Fatalf("end fired %d times, want 1", ended)
	}
	if r.Running() {
		t.Fatal("stream still running after the cap")
	}

	// Late blocks after the end are discarded.
	r.push([]byte{9})
	if len(w.buf) != 6 || ended != 1 {
		t.Fatalf("buf = %v, ended = %d after late push", w.buf, ended)
	}
}
