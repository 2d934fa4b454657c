package pulse

import (
	"github.com/lowfreq/pulsego/proto"
)

// An UploadStream loads a sample into the server's sample cache. The total
// byte length is fixed at creation; write exactly that many bytes, then
// call Finish to commit the sample under its name.
type UploadStream struct {
	c     *Client
	index uint32
	out   *outbound
	state streamState

	createRequest proto.CreateUploadStream
	createReply   proto.CreateUploadStreamReply
}

// NewUpload creates an upload stream for a sample of length bytes.
func (c *Client) NewUpload(name string, length int, opts ...UploadOption) (*UploadStream, error) {
	u := &UploadStream{
		c: c,
		createRequest: proto.CreateUploadStream{
			Name:       name,
			SampleSpec: proto.SampleSpec{Format: proto.FormatInt16LE, Channels: 2, Rate: 44100},
			Length:     uint32(length),
			Properties: proto.PropList{},
		},
	}
	for _, opt := range opts {
		opt(u)
	}

	if u.createRequest.ChannelMap == nil {
		m, err := defaultChannelMap(int(u.createRequest.Channels))
		if err != nil {
			return nil, err
		}
		u.createRequest.ChannelMap = m
	}

	if err := c.c.Request(&u.createRequest, &u.createReply); err != nil {
		return nil, err
	}
	u.index = u.createReply.StreamIndex
	frame := u.createRequest.SampleSpec.FrameSize()
	u.out = newOutbound(frame, int64(u.createReply.Length), func(b []byte) {
		c.c.Send(u.index, b)
	})

	c.mu.Lock()
	c.upload[u.index] = u
	c.mu.Unlock()

	u.out.grant(u.createReply.Length)
	return u, nil
}

// Write queues sample bytes, blocking while the server has no room. Writing
// more than the declared length fails with ErrMaximumLengthReached.
func (u *UploadStream) Write(buf []byte) (int, error) {
	return u.out.write(buf)
}

// Finish commits the uploaded sample to the cache. The stream is gone
// afterwards.
func (u *UploadStream) Finish() error {
	if err := u.out.waitShipped(); err != nil {
		return err
	}
	u.remove()
	u.state = closed
	u.out.fail(ErrStreamClosed)
	return u.c.c.Request(&proto.FinishUploadStream{StreamIndex: u.index}, nil)
}

// Close abandons the upload without committing the sample.
func (u *UploadStream) Close() error {
	if u.state == closed || u.state == serverLost {
		return nil
	}
	u.state = closed
	u.out.fail(ErrStreamClosed)
	u.remove()
	return u.c.deleteStream(&proto.DeleteUploadStream{StreamIndex: u.index})
}

func (u *UploadStream) remove() {
	u.c.mu.Lock()
	delete(u.c.upload, u.index)
	u.c.mu.Unlock()
}

func (u *UploadStream) StreamIndex() uint32 { return u.index }

// Length returns the sample size in bytes the server expects.
func (u *UploadStream) Length() int { return int(u.createReply.Length) }

func (u *UploadStream) onRequest(length uint32) { u.out.grant(length) }

func (u *UploadStream) onConnectionLost() {
	u.state = serverLost
	u.out.fail(proto.ErrDisconnected)
}

// An UploadOption supplies configuration when creating an upload stream.
type UploadOption func(*UploadStream)

// UploadFormat sets the sample format of the uploaded bytes.
func UploadFormat(format byte) UploadOption {
	return func(u *UploadStream) { u.createRequest.Format = format }
}

// UploadSampleRate sets the sample's rate.
func UploadSampleRate(rate int) UploadOption {
	return func(u *UploadStream) { u.createRequest.Rate = uint32(rate) }
}

// UploadChannels requests a custom channel map.
func UploadChannels(m proto.ChannelMap) UploadOption {
	if len(m) == 0 || len(m) >= proto.MaxChannels {
		panic("pulseaudio: invalid channel map")
	}
	return func(u *UploadStream) {
		u.createRequest.ChannelMap = m
		u.createRequest.Channels = byte(len(m))
	}
}

// UploadMono requests a single channel.
var UploadMono UploadOption = func(u *UploadStream) {
	u.createRequest.ChannelMap = proto.ChannelMap{proto.ChannelMono}
	u.createRequest.Channels = 1
}

// UploadProperty attaches a property to the cached sample.
func UploadProperty(key, value string) UploadOption {
	return func(u *UploadStream) {
		u.createRequest.Properties[key] = proto.PropString(value)
	}
}
