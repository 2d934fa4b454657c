package proto

import (
	"errors"
	"io"
	"net"
	"testing"
	"time"
)

func testClient(t *testing.T) (*Client, net.Conn) {
	t.Helper()
	clientSide, serverSide := net.Pipe()
	c := &Client{}
	c.Open(clientSide)
	t.Cleanup(func() {
		c.Close()
		serverSide.Close()
	})
	return c, serverSide
}

func readFrame(t *testing.T, conn net.Conn) (uint32, []byte) {
	t.Helper()
	var hdr [descriptorSize]byte
	if _, err := io.ReadFull(conn, hdr[:]); err != nil {
		t.Fatalf("read header: %v", err)
	}
	body := make([]byte, u32be(hdr[0:]))
	if _, err := io.ReadFull(conn, body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	return u32be(hdr[4:]), body
}

func writeFrame(t *testing.T, conn net.Conn, channel uint32, body []byte) {
	t.Helper()
	var hdr [descriptorSize]byte
	putU32be(hdr[0:], uint32(len(body)))
	putU32be(hdr[4:], channel)
	if _, err := conn.Write(hdr[:]); err != nil {
		t.Fatalf("write header: %v", err)
	}
	if _, err := conn.Write(body); err != nil {
		t.Fatalf("write body: %v", err)
	}
}

func TestHeaderFraming(t *testing.T) {
	c, server := testClient(t)

	body := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	go func() { c.send <- packet{commandChannel, body} }()

	var hdr [descriptorSize]byte
	if _, err := io.ReadFull(server, hdr[:]); err != nil {
		t.Fatalf("read header: %v", err)
	}
	want := [descriptorSize]byte{
		0x00, 0x00, 0x00, 0x09,
		0xFF, 0xFF, 0xFF, 0xFF,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	if hdr != want {
		t.Fatalf("header = % X, want % X", hdr, want)
	}
	got := make([]byte, len(body))
	if _, err := io.ReadFull(server, got); err != nil {
		t.Fatalf("read body: %v", err)
	}
}

func TestRequestReply(t *testing.T) {
	c, server := testClient(t)

	go func() {
		_, body := readFrame(t, server)
		req := parseTagStruct(body)
		op := req.u32()
		tag := req.u32()
		if op != opLookupSink {
			t.Errorf("request opcode = %d, want %d", op, opLookupSink)
		}
		var rpl tagStruct
		rpl.putU32(opReply)
		rpl.putU32(tag)
		rpl.putU32(42)
		writeFrame(t, server, commandChannel, rpl.bytes())
	}()

	var reply LookupSinkReply
	if err := c.Request(&LookupSink{SinkName: "music"}, &reply); err != nil {
		t.Fatalf("Request: %v", err)
	}
	if reply.SinkIndex != 42 {
		t.Fatalf("SinkIndex = %d, want 42", reply.SinkIndex)
	}
}

func TestServerError(t *testing.T) {
	c, server := testClient(t)

	go func() {
		for i := 0; i < 2; i++ {
			_, body := readFrame(t, server)
			req := parseTagStruct(body)
			req.u32()
			tag := req.u32()
			var rpl tagStruct
			if i == 0 {
				rpl.putU32(opError)
				rpl.putU32(tag)
				rpl.putU32(uint32(ErrNoSuchEntity))
			} else {
				rpl.putU32(opReply)
				rpl.putU32(tag)
				rpl.putU32(7)
			}
			writeFrame(t, server, commandChannel, rpl.bytes())
		}
	}()

	err := c.Request(&LookupSink{SinkName: "gone"}, &LookupSinkReply{})
	var code Error
	if !errors.As(err, &code) || code != ErrNoSuchEntity {
		t.Fatalf("first request: err = %v, want NOENTITY", err)
	}

	// A server error poisons only its own request.
	var reply LookupSinkReply
	if err := c.Request(&LookupSink{SinkName: "music"}, &reply); err != nil {
		t.Fatalf("second request: %v", err)
	}
	if reply.SinkIndex != 7 {
		t.Fatalf("SinkIndex = %d, want 7", reply.SinkIndex)
	}
}

func TestUnknownTagFatal(t *testing.T) {
	c, server := testClient(t)

	closed := make(chan struct{})
	c.OnConnectionClosed = func() { close(closed) }

	go func() {
		_, body := readFrame(t, server)
		req := parseTagStruct(body)
		req.u32()
		tag := req.u32()
		var rpl tagStruct
		rpl.putU32(opReply)
		rpl.putU32(tag + 99)
		rpl.putU32(1)
		writeFrame(t, server, commandChannel, rpl.bytes())
	}()

	err := c.Request(&LookupSink{SinkName: "music"}, &LookupSinkReply{})
	if !errors.Is(err, ErrProtocolError) {
		t.Fatalf("err = %v, want protocol error", err)
	}
	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("connection close handler did not run")
	}

	if err := c.Request(&LookupSink{SinkName: "music"}, nil); err == nil {
		t.Fatal("request on poisoned connection succeeded")
	}
}

func TestUnknownOpcodeIgnored(t *testing.T) {
	c, server := testClient(t)

	go func() {
		var note tagStruct
		note.putU32(9999)
		note.putU32(0)
		writeFrame(t, server, commandChannel, note.bytes())

		_, body := readFrame(t, server)
		req := parseTagStruct(body)
		req.u32()
		tag := req.u32()
		var rpl tagStruct
		rpl.putU32(opReply)
		rpl.putU32(tag)
		rpl.putU32(3)
		writeFrame(t, server, commandChannel, rpl.bytes())
	}()

	var reply LookupSinkReply
	if err := c.Request(&LookupSink{SinkName: "music"}, &reply); err != nil {
		t.Fatalf("Request after unknown opcode: %v", err)
	}
}

func TestMemoryBlockRouting(t *testing.T) {
	c, server := testClient(t)

	blocks := make(chan *MemoryBlock, 1)
	c.Callback = func(msg interface{}) {
		if b, ok := msg.(*MemoryBlock); ok {
			data := make([]byte, len(b.Data))
			copy(data, b.Data)
			blocks <- &MemoryBlock{Channel: b.Channel, Data: data}
		}
	}

	go writeFrame(t, server, 3, []byte{0xAA, 0xBB})

	select {
	case b := <-blocks:
		if b.Channel != 3 || len(b.Data) != 2 || b.Data[0] != 0xAA {
			t.Fatalf("block = %+v", b)
		}
	case <-time.After(time.Second):
		t.Fatal("memory block not delivered")
	}
}

func TestOversizedFrameFatal(t *testing.T) {
	c, server := testClient(t)

	done := make(chan struct{})
	c.OnConnectionClosed = func() { close(done) }

	var hdr [descriptorSize]byte
	putU32be(hdr[0:], maxFrameSize+1)
	putU32be(hdr[4:], commandChannel)
	go server.Write(hdr[:])

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("oversized frame did not fail the connection")
	}
}

func TestReplyOpcodeMismatch(t *testing.T) {
	c, _ := testClient(t)
	if err := c.Request(&LookupSink{SinkName: "x"}, &LookupSourceReply{}); err == nil {
		t.Fatal("mismatched reply type accepted")
	}
}

func TestVersionNegotiation(t *testing.T) {
	if got := Version(0x01000020).Version(); got != 32 {
		t.Fatalf("Version(0x01000020).Version() = %d, want 32", got)
	}
	v := Version(0x01000023).Min(Version(0x01000020))
	if v.Version() != 32 {
		t.Fatalf("Min version = %d, want 32", v.Version())
	}
	if v&0xFFFF0000 != 0x01000000 {
		t.Fatalf("Min flags = %#x, want shared flag kept", uint32(v&0xFFFF0000))
	}
}
