package proto

import (
	"fmt"
	"io"
	"reflect"
	"sync"

	"github.com/rs/zerolog"
)

// Packet descriptor layout: length, channel, offset high, offset low, flags,
// each a big-endian U32. A channel of 0xFFFFFFFF marks a command packet;
// anything else is a memory block for that channel.
const (
	descriptorSize = 20
	commandChannel = 0xFFFFFFFF

	// Largest packet body either side may send.
	maxFrameSize = 16 * 1024 * 1024
)

// A Client multiplexes request/reply traffic and server messages over one
// connection. Requests may be issued from any goroutine; replies are matched
// to their request by tag. Server-initiated messages and memory blocks are
// handed to Callback from the read loop, so the callback must not block and
// must not issue requests itself.
type Client struct {
	w  io.Writer
	rc io.Reader
	v  Version

	mu      sync.Mutex
	nextTag uint32
	pending map[uint32]pending
	err     error
	closed  bool

	send   chan packet
	quit   chan struct{}
	log    zerolog.Logger
	logSet bool

	Callback           func(interface{})
	OnConnectionClosed func()
}

type pending struct {
	value Reply
	done  chan<- error
}

type packet struct {
	channel uint32
	data    []byte
}

func (c *Client) Version() Version { return c.v }

// SetVersion lowers the negotiated version to the minimum of the current one
// and the server's. Called once after AUTH.
func (c *Client) SetVersion(v Version) { c.v = c.v.Min(v) }

// SetLogger attaches a logger; call before Open.
func (c *Client) SetLogger(log zerolog.Logger) {
	c.log = log
	c.logSet = true
}

// Open starts the read and write loops on rw. The client assumes ownership
// of the connection; closing the client closes rw if it is an io.Closer.
func (c *Client) Open(rw io.ReadWriter) {
	c.rc = rw
	c.w = rw
	c.v = Version(MinVersion)
	if !c.logSet {
		c.log = zerolog.Nop()
	}

	c.send = make(chan packet)
	c.quit = make(chan struct{})
	c.pending = make(map[uint32]pending)
	go c.readLoop()
	go c.writeLoop()
}

// Request sends req and blocks until the matching reply arrives. A non-nil
// rpl must answer the same opcode as req; it is filled from the reply body.
// The error is the server's error code for this request, or the connection
// error if the connection failed while the request was in flight.
func (c *Client) Request(req Command, rpl Reply) error {
	if rpl != nil && req.opcode() != rpl.replyTo() {
		return fmt.Errorf("pulseaudio: reply type answers opcode %d, request is %d", rpl.replyTo(), req.opcode())
	}

	done := make(chan error, 1)
	c.mu.Lock()
	if c.err != nil {
		c.mu.Unlock()
		return c.err
	}
	tag := c.nextTag
	c.nextTag++
	if c.nextTag == commandChannel {
		c.nextTag = 0
	}
	c.pending[tag] = pending{rpl, done}
	c.mu.Unlock()

	var t tagStruct
	t.putU32(req.opcode())
	t.putU32(tag)
	t.putValue(req, c.v)

	c.log.Debug().Uint32("op", req.opcode()).Uint32("tag", tag).Msg("request")
	select {
	case c.send <- packet{commandChannel, t.bytes()}:
	case <-c.quit:
	}

	return <-done
}

// Send queues a memory block carrying audio data for the given channel.
func (c *Client) Send(channel uint32, data []byte) {
	select {
	case c.send <- packet{channel, data}:
	case <-c.quit:
	}
}

func (c *Client) writeLoop() {
	var hdr [descriptorSize]byte
	for {
		var p packet
		select {
		case p = <-c.send:
		case <-c.quit:
			return
		}
		putU32be(hdr[0:], uint32(len(p.data)))
		putU32be(hdr[4:], p.channel)
		putU32be(hdr[8:], 0)
		putU32be(hdr[12:], 0)
		putU32be(hdr[16:], 0)
		if _, err := c.w.Write(hdr[:]); err != nil {
			c.fatal(err)
			return
		}
		if _, err := c.w.Write(p.data); err != nil {
			c.fatal(err)
			return
		}
	}
}

func (c *Client) readLoop() {
	var hdr [descriptorSize]byte
	var body []byte
	for {
		if _, err := io.ReadFull(c.rc, hdr[:]); err != nil {
			c.fatal(err)
			return
		}
		length := u32be(hdr[0:])
		channel := u32be(hdr[4:])
		if length > maxFrameSize {
			c.fatal(fmt.Errorf("pulseaudio: %d byte packet: %w", length, ErrProtocolError))
			return
		}
		if int(length) > cap(body) {
			body = make([]byte, length)
		}
		body = body[:length]
		if _, err := io.ReadFull(c.rc, body); err != nil {
			c.fatal(err)
			return
		}

		if channel != commandChannel {
			if c.Callback != nil {
				c.Callback(&MemoryBlock{Channel: channel, Data: body})
			}
			continue
		}
		if err := c.handleCommand(body); err != nil {
			c.fatal(err)
			return
		}
	}
}

func (c *Client) handleCommand(body []byte) error {
	t := parseTagStruct(body)
	op := t.u32()
	tag := t.u32()
	if t.err != nil {
		return t.err
	}

	switch op {
	case opError:
		code := Error(t.u32())
		if t.err != nil {
			return t.err
		}
		return c.resolve(tag, func(pending) error { return code })
	case opTimeout:
		return c.resolve(tag, func(pending) error { return ErrTimeout })
	case opReply:
		return c.resolve(tag, func(p pending) error {
			if p.value == nil {
				return nil
			}
			if reflect.TypeOf(p.value).Elem().Kind() == reflect.Slice {
				c.parseInfoList(t, p.value)
			} else {
				t.getValue(p.value, c.v)
			}
			return t.err
		})
	}

	message := newEvent(op)
	if message == nil {
		// Servers newer than us may send opcodes we do not know. Skip them.
		c.log.Debug().Uint32("op", op).Msg("ignoring unknown command")
		return nil
	}
	t.getValue(message, c.v)
	if t.err != nil {
		return t.err
	}
	if c.Callback != nil {
		c.Callback(message)
	}
	return nil
}

// resolve completes the request waiting on tag. The fill function runs with
// the table lock released so that unmarshalling cannot stall other requests.
// A tag with no waiting request means the two sides disagree about the
// conversation state, which is not recoverable.
func (c *Client) resolve(tag uint32, fill func(pending) error) error {
	c.mu.Lock()
	p, ok := c.pending[tag]
	if ok {
		delete(c.pending, tag)
	}
	c.mu.Unlock()
	if !ok {
		return fmt.Errorf("pulseaudio: reply for unknown tag %d: %w", tag, ErrProtocolError)
	}
	err := fill(p)
	if err != nil {
		if _, server := err.(Error); server {
			p.done <- err
			return nil
		}
		p.done <- err
		return err
	}
	p.done <- nil
	return nil
}

// parseInfoList fills a list reply, one recursively unmarshalled element per
// remaining chunk of the body.
func (c *Client) parseInfoList(t *tagStruct, value Reply) {
	for !t.atEnd() && t.err == nil {
		switch value := value.(type) {
		case *GetSinkInfoListReply:
			var v GetSinkInfoReply
			t.getValue(&v, c.v)
			*value = append(*value, &v)
		case *GetSourceInfoListReply:
			var v GetSourceInfoReply
			t.getValue(&v, c.v)
			*value = append(*value, &v)
		case *GetModuleInfoListReply:
			var v GetModuleInfoReply
			t.getValue(&v, c.v)
			*value = append(*value, &v)
		case *GetClientInfoListReply:
			var v GetClientInfoReply
			t.getValue(&v, c.v)
			*value = append(*value, &v)
		case *GetCardInfoListReply:
			var v GetCardInfoReply
			t.getValue(&v, c.v)
			*value = append(*value, &v)
		case *GetSinkInputInfoListReply:
			var v GetSinkInputInfoReply
			t.getValue(&v, c.v)
			*value = append(*value, &v)
		case *GetSourceOutputInfoListReply:
			var v GetSourceOutputInfoReply
			t.getValue(&v, c.v)
			*value = append(*value, &v)
		case *GetSampleInfoListReply:
			var v GetSampleInfoReply
			t.getValue(&v, c.v)
			*value = append(*value, &v)
		default:
			t.failf("no list parser for %T", value)
		}
	}
}

// Close tears the connection down. Requests still in flight complete with
// ErrDisconnected.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()
	var err error
	if cl, ok := c.rc.(io.Closer); ok {
		err = cl.Close()
	}
	c.fail(ErrDisconnected)
	return err
}

// Fail tears the connection down with err, as if the transport had failed.
// Used by layers above when they detect an unrecoverable protocol
// violation in a server message.
func (c *Client) Fail(err error) {
	c.fatal(err)
	if cl, ok := c.rc.(io.Closer); ok {
		cl.Close()
	}
}

// fatal records a connection-level failure. Every request in flight and
// every future request completes with the same error. Only the first
// failure is reported.
func (c *Client) fatal(err error) {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		err = ErrDisconnected
	}
	if !c.fail(err) {
		return
	}
	if !closed {
		c.log.Error().Err(err).Msg("connection failed")
		if c.OnConnectionClosed != nil {
			c.OnConnectionClosed()
		}
	}
}

// fail poisons the client and reports whether this call was the first to
// do so.
func (c *Client) fail(err error) bool {
	c.mu.Lock()
	first := c.err == nil
	if first {
		c.err = err
		close(c.quit)
	}
	waiting := make([]chan<- error, 0, len(c.pending))
	for _, p := range c.pending {
		waiting = append(waiting, p.done)
	}
	c.pending = make(map[uint32]pending)
	err = c.err
	c.mu.Unlock()
	for _, done := range waiting {
		done <- err
	}
	return first
}

func putU32be(b []byte, u uint32) {
	b[0] = byte(u >> 24)
	b[1] = byte(u >> 16)
	b[2] = byte(u >> 8)
	b[3] = byte(u)
}

func u32be(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
