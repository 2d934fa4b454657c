package pulse

import (
	"errors"

	"github.com/lowfreq/pulsego/proto"
)

// PlaySample plays a cached sample on a sink. An empty sink name selects
// the default sink; a volume of VolumeInvalid leaves the sample's own
// volume in effect. It returns the index of the resulting playback stream.
func (c *Client) PlaySample(name, sink string, volume proto.Volume) (uint32, error) {
	if name == "" {
		return proto.Undefined, errors.New("pulseaudio: empty sample name")
	}
	if sink == "" {
		sink = proto.DefaultSink
	}
	var reply proto.PlaySampleReply
	err := c.c.Request(&proto.PlaySample{
		SinkIndex:  proto.Undefined,
		SinkName:   sink,
		Volume:     uint32(volume),
		Name:       name,
		Properties: proto.PropList{},
	}, &reply)
	if err != nil {
		return proto.Undefined, err
	}
	return reply.SinkInputIndex, nil
}

// RemoveSample deletes a sample from the server's cache.
func (c *Client) RemoveSample(name string) error {
	if name == "" {
		return errors.New("pulseaudio: empty sample name")
	}
	return c.c.Request(&proto.RemoveSample{Name: name}, nil)
}

// ListSamples returns the contents of the server's sample cache.
func (c *Client) ListSamples() ([]*proto.GetSampleInfoReply, error) {
	var reply proto.GetSampleInfoListReply
	if err := c.c.Request(&proto.GetSampleInfoList{}, &reply); err != nil {
		return nil, err
	}
	return reply, nil
}
