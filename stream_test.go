package pulse

import (
	"errors"
	"testing"
	"time"
)

func captureSend() (func([]byte), *[][]byte) {
	var packets [][]byte
	return func(b []byte) {
		p := make([]byte, len(b))
		copy(p, b)
		packets = append(packets, p)
	}, &packets
}

func TestOutboundCreditFraming(t *testing.T) {
	send, packets := captureSend()
	o := newOutbound(4, unlimited, send)

	o.grant(10)
	for _, n := range []int{3, 4, 4} {
		if _, err := o.write(make([]byte, n)); err != nil {
			t.Fatalf("write(%d bytes): %v", n, err)
		}
	}

	if len(*packets) != 2 || len((*packets)[0]) != 4 || len((*packets)[1]) != 4 {
		t.Fatalf("shipped packets = %v, want two of 4 bytes", lengths(*packets))
	}
	o.mu.Lock()
	credit := o.credit
	o.mu.Unlock()
	if credit != 2 {
		t.Errorf("credit = %d, want 2", credit)
	}
	if got := o.queued(); got != 3 {
		t.Errorf("queued = %d, want 3", got)
	}
}

func lengths(packets [][]byte) []int {
	out := make([]int, len(packets))
	for i, p := range packets {
		out[i] = len(p)
	}
	return out
}

func TestOutboundMaximumLength(t *testing.T) {
	send, _ := captureSend()
	o := newOutbound(4, 8, send)
	o.grant(100)

	if _, err := o.write(make([]byte, 12)); !errors.Is(err, ErrMaximumLengthReached) {
		t.Fatalf("write past limit: err = %v, want %v", err, ErrMaximumLengthReached)
	}
	if _, err := o.write(make([]byte, 8)); err != nil {
		t.Fatalf("write within limit: %v", err)
	}
}

func TestOutboundBackpressure(t *testing.T) {
	send, packets := captureSend()
	o := newOutbound(4, unlimited, send)

	done := make(chan error, 1)
	go func() {
		_, err := o.write(make([]byte, 8))
		done <- err
	}()

	select {
	case err := <-done:
		t.Fatalf("write returned without credit: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	o.grant(8)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("write after grant: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("write still blocked after grant")
	}
	if len(*packets) != 1 || len((*packets)[0]) != 8 {
		t.Fatalf("shipped packets = %v, want one of 8 bytes", lengths(*packets))
	}
}

func TestOutboundFailUnblocks(t *testing.T) {
	send, _ := captureSend()
	o := newOutbound(4, unlimited, send)

	done := make(chan error, 1)
	go func() {
		_, err := o.write(make([]byte, 8))
		done <- err
	}()
	time.Sleep(50 * time.Millisecond)

	o.fail(ErrStreamKilled)
	select {
	case err := <-done:
		if !errors.Is(err, ErrStreamKilled) {
			t.Fatalf("blocked write: err = %v, want %v", err, ErrStreamKilled)
		}
	case <-time.After(time.Second):
		t.Fatal("fail did not unblock the writer")
	}

	if _, err := o.write([]byte{1}); !errors.Is(err, ErrStreamKilled) {
		t.Fatalf("write after fail: err = %v, want %v", err, ErrStreamKilled)
	}
}

func TestOutboundConcurrentWrite(t *testing.T) {
	send, _ := captureSend()
	o := newOutbound(4, unlimited, send)

	started := make(chan struct{})
	go func() {
		o.mu.Lock()
		o.writing = true
		o.mu.Unlock()
		close(started)
	}()
	<-started

	if _, err := o.write([]byte{1}); !errors.Is(err, ErrConcurrentWrite) {
		t.Fatalf("second writer: err = %v, want %v", err, ErrConcurrentWrite)
	}
}

func TestOutboundWaitShipped(t *testing.T) {
	send, _ := captureSend()
	o := newOutbound(4, unlimited, send)
	o.grant(4)
	if _, err := o.write(make([]byte, 6)); err != nil {
		t.Fatalf("write: %v", err)
	}

	// Only a partial frame remains, so nothing is owed.
	if err := o.waitShipped(); err != nil {
		t.Fatalf("waitShipped with partial frame: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		if _, err := o.write(make([]byte, 6)); err != nil {
			done <- err
			return
		}
		done <- o.waitShipped()
	}()
	time.Sleep(50 * time.Millisecond)
	o.grant(8)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("waitShipped after grant: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("waitShipped still blocked after grant")
	}
}
