package pulse

import (
	"errors"
	"math"

	"github.com/lowfreq/pulsego/proto"
)

const volumeHundredPercent = 0x10000

// VolumeFromLinear converts a linear amplitude factor to a volume on the
// cubic software volume curve. 1.0 maps to 100%.
func VolumeFromLinear(f float64) proto.Volume {
	if f <= 0 {
		return proto.VolumeMuted
	}
	return proto.Volume(math.Round(math.Cbrt(f) * volumeHundredPercent))
}

// VolumeToLinear converts a volume back to a linear amplitude factor.
func VolumeToLinear(v proto.Volume) float64 {
	if v == proto.VolumeMuted {
		return 0
	}
	f := float64(v) / volumeHundredPercent
	return f * f * f
}

// VolumeFromDecibels converts an attenuation or gain in dB to a volume.
func VolumeFromDecibels(db float64) proto.Volume {
	if math.IsInf(db, -1) {
		return proto.VolumeMuted
	}
	return VolumeFromLinear(math.Pow(10, db/20))
}

// VolumeToDecibels converts a volume to dB. A muted volume yields -Inf.
func VolumeToDecibels(v proto.Volume) float64 {
	if v == proto.VolumeMuted {
		return math.Inf(-1)
	}
	return 20 * math.Log10(VolumeToLinear(v))
}

// VolumeFromPercent converts a percentage, 100 meaning normal volume.
func VolumeFromPercent(p float64) proto.Volume {
	if p <= 0 {
		return proto.VolumeMuted
	}
	return proto.Volume(math.Round(p / 100 * volumeHundredPercent))
}

// VolumeToPercent converts a volume to a percentage.
func VolumeToPercent(v proto.Volume) float64 {
	return float64(v) / volumeHundredPercent * 100
}

func ratioToVolume(r float32) (proto.Volume, error) {
	vf := float64(r) * volumeHundredPercent
	if vf < 0 || vf > 0xFFFFFFFF {
		return 0, errors.New("pulseaudio: volume out of range")
	}
	return proto.Volume(vf), nil
}

// channelVolumes builds a per-channel volume array from ratios. A single
// ratio applies to every channel; otherwise one ratio per channel is
// required.
func channelVolumes(channels int, volume []float32) (proto.ChannelVolumes, error) {
	if channels < 1 || channels > proto.MaxChannels {
		return nil, errors.New("pulseaudio: invalid channel count")
	}
	cvol := make(proto.ChannelVolumes, 0, channels)
	switch len(volume) {
	case 1:
		v, err := ratioToVolume(volume[0])
		if err != nil {
			return nil, err
		}
		for i := 0; i < channels; i++ {
			cvol = append(cvol, v)
		}
	case channels:
		for _, r := range volume {
			v, err := ratioToVolume(r)
			if err != nil {
				return nil, err
			}
			cvol = append(cvol, v)
		}
	default:
		return nil, errors.New("pulseaudio: invalid volume length")
	}
	return cvol, nil
}

// SetSinkVolume sets the volume of a sink's channels. 1.0 means normal
// volume; sinks may support software boost beyond 1.0. Give one value per
// channel, or a single value for all channels.
func (c *Client) SetSinkVolume(s *Sink, volume ...float32) error {
	cvol, err := channelVolumes(len(s.info.ChannelVolumes), volume)
	if err != nil {
		return err
	}
	return c.c.Request(&proto.SetSinkVolume{
		SinkIndex:      s.info.SinkIndex,
		ChannelVolumes: cvol,
	}, nil)
}

// SetSourceVolume sets the volume of a source's channels. 1.0 means normal
// volume; sources may support software boost beyond 1.0. Give one value per
// channel, or a single value for all channels.
func (c *Client) SetSourceVolume(s *Source, volume ...float32) error {
	cvol, err := channelVolumes(len(s.info.ChannelVolumes), volume)
	if err != nil {
		return err
	}
	return c.c.Request(&proto.SetSourceVolume{
		SourceIndex:    s.info.SourceIndex,
		ChannelVolumes: cvol,
	}, nil)
}

// SetSinkInputVolume sets the volume of a playback stream's channels.
func (c *Client) SetSinkInputVolume(index uint32, channels int, volume ...float32) error {
	cvol, err := channelVolumes(channels, volume)
	if err != nil {
		return err
	}
	return c.c.Request(&proto.SetSinkInputVolume{
		SinkInputIndex: index,
		ChannelVolumes: cvol,
	}, nil)
}

// SetSourceOutputVolume sets the volume of a record stream's channels.
func (c *Client) SetSourceOutputVolume(index uint32, channels int, volume ...float32) error {
	cvol, err := channelVolumes(channels, volume)
	if err != nil {
		return err
	}
	return c.c.Request(&proto.SetSourceOutputVolume{
		SourceOutputIndex: index,
		ChannelVolumes:    cvol,
	}, nil)
}

// SetSinkMute mutes or unmutes a sink.
func (c *Client) SetSinkMute(s *Sink, mute bool) error {
	return c.c.Request(&proto.SetSinkMute{SinkIndex: s.info.SinkIndex, Mute: mute}, nil)
}

// SetSourceMute mutes or unmutes a source.
func (c *Client) SetSourceMute(s *Source, mute bool) error {
	return c.c.Request(&proto.SetSourceMute{SourceIndex: s.info.SourceIndex, Mute: mute}, nil)
}

// SetSinkInputMute mutes or unmutes a playback stream.
func (c *Client) SetSinkInputMute(index uint32, mute bool) error {
	return c.c.Request(&proto.SetSinkInputMute{SinkInputIndex: index, Mute: mute}, nil)
}

// SetSourceOutputMute mutes or unmutes a record stream.
func (c *Client) SetSourceOutputMute(index uint32, mute bool) error {
	return c.c.Request(&proto.SetSourceOutputMute{SourceOutputIndex: index, Mute: mute}, nil)
}

// SetDefaultSink makes the named sink the server default.
func (c *Client) SetDefaultSink(name string) error {
	return c.c.Request(&proto.SetDefaultSink{SinkName: name}, nil)
}

// SetDefaultSource makes the named source the server default.
func (c *Client) SetDefaultSource(name string) error {
	return c.c.Request(&proto.SetDefaultSource{SourceName: name}, nil)
}
