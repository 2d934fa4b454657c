package pulse

import (
	"io"
	"sync"

	"github.com/lowfreq/pulsego/proto"
)

// A RecordStream captures PCM audio from a source and pushes it into an
// io.Writer supplied at creation. A short or failed write pauses delivery
// instead of stalling the connection; resume with Start once the consumer
// has room again.
type RecordStream struct {
	c     *Client
	index uint32
	w     io.Writer

	mu        sync.Mutex
	running   bool
	ended     bool
	state     streamState
	remaining int64

	maxBytes int64
	overrun  func()
	end      func()
	event    func(name string, props proto.PropList)

	createRequest proto.CreateRecordStream
	createReply   proto.CreateRecordStreamReply
}

// NewRecord creates a record stream delivering captured audio to w. The
// stream starts corked and paused; call Start to begin capturing.
func (c *Client) NewRecord(w io.Writer, opts ...RecordOption) (*RecordStream, error) {
	r := &RecordStream{
		c:        c,
		w:        w,
		maxBytes: unlimited,
		createRequest: proto.CreateRecordStream{
			SampleSpec:         proto.SampleSpec{Format: proto.FormatInt16LE, Channels: 2, Rate: 44100},
			SourceIndex:        proto.Undefined,
			BufferMaxLength:    proto.Undefined,
			Corked:             true,
			BufferFragSize:     proto.Undefined,
			DirectOnInputIndex: proto.Undefined,
			Properties:         proto.PropList{},
		},
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.createRequest.ChannelMap == nil {
		m, err := defaultChannelMap(int(r.createRequest.Channels))
		if err != nil {
			return nil, err
		}
		r.createRequest.ChannelMap = m
	}

	if err := c.c.Request(&r.createRequest, &r.createReply); err != nil {
		return nil, err
	}
	r.index = r.createReply.StreamIndex
	r.remaining = r.maxBytes
	r.state = idle

	c.mu.Lock()
	c.record[r.index] = r
	c.mu.Unlock()
	return r, nil
}

// push delivers one inbound memory block. Called from the connection's read
// loop; the block is dropped when the stream is paused so one slow consumer
// cannot stall every other stream on the connection.
func (r *RecordStream) push(data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running || r.ended {
		return
	}
	n := len(data)
	if r.remaining != unlimited && int64(n) > r.remaining {
		n = int(r.remaining)
	}
	m, err := r.w.Write(data[:n])
	if m > 0 && r.remaining != unlimited {
		r.remaining -= int64(m)
	}
	if err != nil || m < n {
		r.running = false
		if r.overrun != nil {
			r.overrun()
		}
	}
	if r.remaining == 0 {
		r.finish()
	}
}

// finish ends the stream exactly once: delivery stops, the end handler
// fires, and the server-side stream is deleted. Caller holds r.mu.
func (r *RecordStream) finish() {
	if r.ended {
		return
	}
	r.ended = true
	r.running = false
	if r.end != nil {
		r.end()
	}
	// The read loop is delivering this block; the delete request must not
	// wait for its own reply on that same loop.
	go r.Close()
}

// Start begins or resumes capturing.
func (r *RecordStream) Start() error {
	err := r.c.c.Request(&proto.CorkRecordStream{StreamIndex: r.index, Corked: false}, nil)
	if err != nil {
		return err
	}
	r.mu.Lock()
	if !r.ended {
		r.running = true
		r.state = running
	}
	r.mu.Unlock()
	return nil
}

// Stop pauses capturing. Blocks already captured by the server are dropped
// on arrival.
func (r *RecordStream) Stop() error {
	r.mu.Lock()
	r.running = false
	r.state = paused
	r.mu.Unlock()
	return r.c.c.Request(&proto.CorkRecordStream{StreamIndex: r.index, Corked: true}, nil)
}

// Resume resumes a paused stream.
func (r *RecordStream) Resume() error { return r.Start() }

// Flush discards audio the server has captured but not yet delivered.
func (r *RecordStream) Flush() error {
	return r.c.c.Request(&proto.FlushRecordStream{StreamIndex: r.index}, nil)
}

// SetName renames the stream as shown by mixer applications.
func (r *RecordStream) SetName(name string) error {
	return r.c.c.Request(&proto.SetRecordStreamName{StreamIndex: r.index, Name: name}, nil)
}

// SetBufferAttr asks the server for new buffer geometry and records what it
// actually granted.
func (r *RecordStream) SetBufferAttr(maxLength, fragSize uint32) error {
	var reply proto.SetRecordStreamBufferAttrReply
	err := r.c.c.Request(&proto.SetRecordStreamBufferAttr{
		StreamIndex:     r.index,
		BufferMaxLength: maxLength,
		BufferFragSize:  fragSize,
		AdjustLatency:   r.createRequest.AdjustLatency,
		EarlyRequests:   r.createRequest.EarlyRequests,
	}, &reply)
	if err != nil {
		return err
	}
	r.createReply.BufferMaxLength = reply.BufferMaxLength
	r.createReply.BufferFragSize = reply.BufferFragSize
	return nil
}

// Close stops delivery and deletes the stream.
func (r *RecordStream) Close() error {
	r.mu.Lock()
	if r.state == closed || r.state == serverLost {
		r.mu.Unlock()
		return nil
	}
	r.state = closed
	r.running = false
	r.mu.Unlock()
	r.c.mu.Lock()
	delete(r.c.record, r.index)
	r.c.mu.Unlock()
	return r.c.deleteStream(&proto.DeleteRecordStream{StreamIndex: r.index})
}

// Running reports whether the stream is currently delivering audio.
func (r *RecordStream) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func (r *RecordStream) StreamIndex() uint32       { return r.index }
func (r *RecordStream) SourceOutputIndex() uint32 { return r.createReply.SourceOutputIndex }
func (r *RecordStream) SampleRate() int           { return int(r.createReply.Rate) }
func (r *RecordStream) Channels() int             { return int(r.createReply.Channels) }

func (r *RecordStream) onSuspended(bool) {}

func (r *RecordStream) onMoved(m *proto.RecordStreamMoved) {
	r.createReply.SourceIndex = m.DestIndex
	r.createReply.SourceName = m.DestName
	r.onBufferAttrChanged(m.BufferMaxLength, m.BufferFragSize)
}

func (r *RecordStream) onBufferAttrChanged(maxLength, fragSize uint32) {
	r.createReply.BufferMaxLength = maxLength
	r.createReply.BufferFragSize = fragSize
}

func (r *RecordStream) onEvent(name string, props proto.PropList) {
	if r.event != nil {
		r.event(name, props)
	}
}

func (r *RecordStream) onKilled() {
	r.mu.Lock()
	r.state = serverLost
	r.running = false
	r.mu.Unlock()
}

func (r *RecordStream) onConnectionLost() {
	r.mu.Lock()
	r.state = serverLost
	r.running = false
	r.mu.Unlock()
}

// A RecordOption supplies configuration when creating a record stream.
type RecordOption func(*RecordStream)

// RecordMono requests a single channel.
var RecordMono RecordOption = func(r *RecordStream) {
	r.createRequest.ChannelMap = proto.ChannelMap{proto.ChannelMono}
	r.createRequest.Channels = 1
}

// RecordStereo requests a left and a right channel.
var RecordStereo RecordOption = func(r *RecordStream) {
	r.createRequest.ChannelMap = proto.ChannelMap{proto.ChannelFrontLeft, proto.ChannelFrontRight}
	r.createRequest.Channels = 2
}

// RecordChannels requests a custom channel map.
func RecordChannels(m proto.ChannelMap) RecordOption {
	if len(m) == 0 || len(m) >= proto.MaxChannels {
		panic("pulseaudio: invalid channel map")
	}
	return func(r *RecordStream) {
		r.createRequest.ChannelMap = m
		r.createRequest.Channels = byte(len(m))
	}
}

// RecordFormat sets the sample format of the delivered bytes.
func RecordFormat(format byte) RecordOption {
	return func(r *RecordStream) { r.createRequest.Format = format }
}

// RecordSampleRate sets the stream's sample rate.
func RecordSampleRate(rate int) RecordOption {
	return func(r *RecordStream) { r.createRequest.Rate = uint32(rate) }
}

// RecordBufferFragmentSize sets the size of the blocks the server delivers.
// Smaller fragments lower latency at the cost of more packets.
func RecordBufferFragmentSize(size uint32) RecordOption {
	return func(r *RecordStream) {
		r.createRequest.BufferFragSize = size
		r.createRequest.AdjustLatency = false
	}
}

// RecordSourceIndex captures from a specific source.
func RecordSourceIndex(index uint32) RecordOption {
	return func(r *RecordStream) { r.createRequest.SourceIndex = index }
}

// RecordSource captures from a named source, or the server default for "".
func RecordSource(name string) RecordOption {
	return func(r *RecordStream) { r.createRequest.SourceName = name }
}

// RecordMaxBytes caps the bytes delivered to the consumer; on reaching the
// cap the stream ends and the RecordEnd handler fires.
func RecordMaxBytes(n int64) RecordOption {
	return func(r *RecordStream) { r.maxBytes = n }
}

// RecordMediaName names the stream as shown by mixer applications.
func RecordMediaName(name string) RecordOption {
	return func(r *RecordStream) {
		r.createRequest.Properties["media.name"] = proto.PropString(name)
	}
}

// RecordOverrun installs a handler called when delivery pauses because the
// consumer could not keep up.
func RecordOverrun(f func()) RecordOption {
	return func(r *RecordStream) { r.overrun = f }
}

// RecordEnd installs a handler called exactly once when a stream with a
// byte cap has delivered its last byte.
func RecordEnd(f func()) RecordOption {
	return func(r *RecordStream) { r.end = f }
}

// RecordEvent installs a handler for named server events on the stream.
func RecordEvent(f func(name string, props proto.PropList)) RecordOption {
	return func(r *RecordStream) { r.event = f }
}
