package pulse

import (
	"sync/atomic"

	"github.com/lowfreq/pulsego/proto"
)

// A PlaybackStream plays PCM audio on a sink. Bytes given to Write are
// queued and shipped to the server as it requests them, so Write blocks
// while the server's buffer is full. The stream ships opaque bytes; they
// must match the sample format and be written in whole frames.
type PlaybackStream struct {
	c     *Client
	index uint32
	out   *outbound

	maxBytes int64
	state    streamState

	started   func()
	underflow func(offset int64)
	overflow  func()
	suspended func(bool)
	event     func(name string, props proto.PropList)

	createRequest proto.CreatePlaybackStream
	createReply   proto.CreatePlaybackStreamReply
}

var syncID uint32

// NewPlayback creates a playback stream. The stream starts corked; call
// Start before writing audio.
func (c *Client) NewPlayback(opts ...PlaybackOption) (*PlaybackStream, error) {
	p := &PlaybackStream{
		c:        c,
		maxBytes: unlimited,
		createRequest: proto.CreatePlaybackStream{
			SampleSpec:            proto.SampleSpec{Format: proto.FormatInt16LE, Channels: 2, Rate: 44100},
			SinkIndex:             proto.Undefined,
			BufferMaxLength:       proto.Undefined,
			Corked:                true,
			BufferTargetLength:    proto.Undefined,
			BufferPrebufferLength: proto.Undefined,
			BufferMinimumRequest:  proto.Undefined,
			SyncID:                atomic.AddUint32(&syncID, 1),
			Properties:            proto.PropList{},
		},
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.createRequest.ChannelMap == nil {
		m, err := defaultChannelMap(int(p.createRequest.Channels))
		if err != nil {
			return nil, err
		}
		p.createRequest.ChannelMap = m
	}
	if p.createRequest.ChannelVolumes == nil {
		cvol := make(proto.ChannelVolumes, p.createRequest.Channels)
		for i := range cvol {
			cvol[i] = proto.VolumeNorm
		}
		p.createRequest.ChannelVolumes = cvol
	}

	if err := c.c.Request(&p.createRequest, &p.createReply); err != nil {
		return nil, err
	}
	p.index = p.createReply.StreamIndex
	frame := proto.SampleSpec{
		Format:   p.createReply.Format,
		Channels: p.createReply.Channels,
		Rate:     p.createReply.Rate,
	}.FrameSize()
	p.out = newOutbound(frame, p.maxBytes, func(b []byte) {
		c.c.Send(p.index, b)
	})
	p.state = idle

	c.mu.Lock()
	c.playback[p.index] = p
	c.mu.Unlock()

	p.out.grant(p.createReply.RequestedBytes)
	return p, nil
}

// Write queues PCM bytes for the sink, blocking while the server has no
// room for them. It never performs a partial write: the returned count is
// len(buf) unless an error occurred.
func (p *PlaybackStream) Write(buf []byte) (int, error) {
	return p.out.write(buf)
}

// Drain blocks until every queued frame has been shipped and the server
// reports its buffer played out.
func (p *PlaybackStream) Drain() error {
	if err := p.out.waitShipped(); err != nil {
		return err
	}
	return p.c.c.Request(&proto.DrainPlaybackStream{StreamIndex: p.index}, nil)
}

// Start uncorks the stream so the server begins consuming audio.
func (p *PlaybackStream) Start() error {
	err := p.c.c.Request(&proto.CorkPlaybackStream{StreamIndex: p.index, Corked: false}, nil)
	if err == nil {
		p.state = running
	}
	return err
}

// Stop corks the stream. Queued and buffered audio is kept.
func (p *PlaybackStream) Stop() error {
	err := p.c.c.Request(&proto.CorkPlaybackStream{StreamIndex: p.index, Corked: true}, nil)
	if err == nil {
		p.state = paused
	}
	return err
}

// Resume uncorks a stopped stream.
func (p *PlaybackStream) Resume() error { return p.Start() }

// Flush discards audio the server has buffered but not yet played.
func (p *PlaybackStream) Flush() error {
	return p.c.c.Request(&proto.FlushPlaybackStream{StreamIndex: p.index}, nil)
}

// Trigger starts playback immediately, ignoring the prebuffer threshold.
func (p *PlaybackStream) Trigger() error {
	return p.c.c.Request(&proto.TriggerPlaybackStream{StreamIndex: p.index}, nil)
}

// Prebuf re-enables the prebuffer threshold after an underrun.
func (p *PlaybackStream) Prebuf() error {
	return p.c.c.Request(&proto.PrebufPlaybackStream{StreamIndex: p.index}, nil)
}

// SetName renames the stream as shown by mixer applications.
func (p *PlaybackStream) SetName(name string) error {
	return p.c.c.Request(&proto.SetPlaybackStreamName{StreamIndex: p.index, Name: name}, nil)
}

// SetBufferAttr asks the server for new buffer geometry and records what it
// actually granted.
func (p *PlaybackStream) SetBufferAttr(maxLength, targetLength, prebuf, minReq uint32) error {
	var reply proto.SetPlaybackStreamBufferAttrReply
	err := p.c.c.Request(&proto.SetPlaybackStreamBufferAttr{
		StreamIndex:           p.index,
		BufferMaxLength:       maxLength,
		BufferTargetLength:    targetLength,
		BufferPrebufferLength: prebuf,
		BufferMinimumRequest:  minReq,
		AdjustLatency:         p.createRequest.AdjustLatency,
		EarlyRequests:         p.createRequest.EarlyRequests,
	}, &reply)
	if err != nil {
		return err
	}
	p.createReply.BufferMaxLength = reply.BufferMaxLength
	p.createReply.BufferTargetLength = reply.BufferTargetLength
	p.createReply.BufferPrebufferLength = reply.BufferPrebufferLength
	p.createReply.BufferMinimumRequest = reply.BufferMinimumRequest
	return nil
}

// Close deletes the stream. Blocked writers are released with
// ErrStreamClosed.
func (p *PlaybackStream) Close() error {
	if p.state == closed || p.state == serverLost {
		return nil
	}
	p.state = closed
	p.out.fail(ErrStreamClosed)
	p.c.mu.Lock()
	delete(p.c.playback, p.index)
	p.c.mu.Unlock()
	return p.c.deleteStream(&proto.DeletePlaybackStream{StreamIndex: p.index})
}

func (p *PlaybackStream) Running() bool          { return p.state == running }
func (p *PlaybackStream) StreamIndex() uint32    { return p.index }
func (p *PlaybackStream) SinkInputIndex() uint32 { return p.createReply.SinkInputIndex }
func (p *PlaybackStream) SampleRate() int        { return int(p.createReply.Rate) }
func (p *PlaybackStream) Channels() int          { return int(p.createReply.Channels) }
func (p *PlaybackStream) FrameSize() int         { return p.out.frameSize }
func (p *PlaybackStream) BufferSizeBytes() int {
	return int(p.createReply.BufferTargetLength)
}

// Server message handlers, called from the connection's read loop.

func (p *PlaybackStream) onRequest(length uint32) { p.out.grant(length) }

func (p *PlaybackStream) onStarted() {
	if p.started != nil {
		p.started()
	}
}

func (p *PlaybackStream) onUnderflow(offset int64) {
	if p.underflow != nil {
		p.underflow(offset)
	}
}

func (p *PlaybackStream) onOverflow() {
	if p.overflow != nil {
		p.overflow()
	}
}

func (p *PlaybackStream) onSuspended(s bool) {
	if p.suspended != nil {
		p.suspended(s)
	}
}

func (p *PlaybackStream) onMoved(m *proto.PlaybackStreamMoved) {
	p.createReply.SinkIndex = m.DestIndex
	p.createReply.SinkName = m.DestName
	p.onBufferAttrChanged(m.BufferMaxLength, m.BufferTargetLength, m.BufferPrebufferLength, m.BufferMinimumRequest)
}

func (p *PlaybackStream) onBufferAttrChanged(maxLength, targetLength, prebuf, minReq uint32) {
	p.createReply.BufferMaxLength = maxLength
	p.createReply.BufferTargetLength = targetLength
	p.createReply.BufferPrebufferLength = prebuf
	p.createReply.BufferMinimumRequest = minReq
}

func (p *PlaybackStream) onEvent(name string, props proto.PropList) {
	if p.event != nil {
		p.event(name, props)
	}
}

func (p *PlaybackStream) onKilled() {
	p.state = serverLost
	p.out.fail(ErrStreamKilled)
}

func (p *PlaybackStream) onConnectionLost() {
	p.state = serverLost
	p.out.fail(proto.ErrDisconnected)
}

// A PlaybackOption supplies configuration when creating a playback stream.
type PlaybackOption func(*PlaybackStream)

// PlaybackMono requests a single channel.
var PlaybackMono PlaybackOption = func(p *PlaybackStream) {
	p.createRequest.ChannelMap = proto.ChannelMap{proto.ChannelMono}
	p.createRequest.Channels = 1
}

// PlaybackStereo requests a left and a right channel.
var PlaybackStereo PlaybackOption = func(p *PlaybackStream) {
	p.createRequest.ChannelMap = proto.ChannelMap{proto.ChannelFrontLeft, proto.ChannelFrontRight}
	p.createRequest.Channels = 2
}

// PlaybackChannels requests a custom channel map.
func PlaybackChannels(m proto.ChannelMap) PlaybackOption {
	if len(m) == 0 || len(m) >= proto.MaxChannels {
		panic("pulseaudio: invalid channel map")
	}
	return func(p *PlaybackStream) {
		p.createRequest.ChannelMap = m
		p.createRequest.Channels = byte(len(m))
	}
}

// PlaybackFormat sets the sample format of the bytes passed to Write.
func PlaybackFormat(format byte) PlaybackOption {
	return func(p *PlaybackStream) { p.createRequest.Format = format }
}

// PlaybackSampleRate sets the stream's sample rate.
func PlaybackSampleRate(rate int) PlaybackOption {
	return func(p *PlaybackStream) { p.createRequest.Rate = uint32(rate) }
}

// PlaybackBufferSize sets the server-side buffer target, in bytes.
func PlaybackBufferSize(bytes int) PlaybackOption {
	return func(p *PlaybackStream) { p.createRequest.BufferTargetLength = uint32(bytes) }
}

// PlaybackSinkIndex plays to a specific sink.
func PlaybackSinkIndex(index uint32) PlaybackOption {
	return func(p *PlaybackStream) { p.createRequest.SinkIndex = index }
}

// PlaybackSink plays to a named sink, or the server default for "".
func PlaybackSink(name string) PlaybackOption {
	return func(p *PlaybackStream) { p.createRequest.SinkName = name }
}

// PlaybackMaxBytes caps the number of bytes the stream will ever accept;
// writes beyond the cap fail with ErrMaximumLengthReached.
func PlaybackMaxBytes(n int64) PlaybackOption {
	return func(p *PlaybackStream) { p.maxBytes = n }
}

// PlaybackMediaName names the stream as shown by mixer applications.
func PlaybackMediaName(name string) PlaybackOption {
	return func(p *PlaybackStream) {
		p.createRequest.Properties["media.name"] = proto.PropString(name)
	}
}

// PlaybackStarted installs a handler for the moment audio becomes audible.
func PlaybackStarted(f func()) PlaybackOption {
	return func(p *PlaybackStream) { p.started = f }
}

// PlaybackUnderflow installs a handler for server-side buffer underruns.
// The offset is the stream position at which the underrun happened.
func PlaybackUnderflow(f func(offset int64)) PlaybackOption {
	return func(p *PlaybackStream) { p.underflow = f }
}

// PlaybackOverflow installs a handler for server-side buffer overruns.
func PlaybackOverflow(f func()) PlaybackOption {
	return func(p *PlaybackStream) { p.overflow = f }
}

// PlaybackSuspendedChanged installs a handler called when the sink the
// stream plays on is suspended or resumed.
func PlaybackSuspendedChanged(f func(suspended bool)) PlaybackOption {
	return func(p *PlaybackStream) { p.suspended = f }
}

// PlaybackEvent installs a handler for named server events on the stream.
func PlaybackEvent(f func(name string, props proto.PropList)) PlaybackOption {
	return func(p *PlaybackStream) { p.event = f }
}
