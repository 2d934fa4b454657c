package pulse

import (
	"fmt"

	"github.com/lowfreq/pulsego/proto"
)

// wavChannelMaps holds the WAVEFORMATEXTENSIBLE speaker layouts, indexed
// by channel count. Streams created without an explicit map get the entry
// for their channel count.
var wavChannelMaps = [...]proto.ChannelMap{
	1: {proto.ChannelMono},
	2: {proto.ChannelFrontLeft, proto.ChannelFrontRight},
	3: {proto.ChannelFrontLeft, proto.ChannelFrontRight, proto.ChannelFrontCenter},
	4: {proto.ChannelFrontLeft, proto.ChannelFrontRight,
		proto.ChannelRearLeft, proto.ChannelRearRight},
	5: {proto.ChannelFrontLeft, proto.ChannelFrontRight, proto.ChannelFrontCenter,
		proto.ChannelRearLeft, proto.ChannelRearRight},
	6: {proto.ChannelFrontLeft, proto.ChannelFrontRight, proto.ChannelFrontCenter,
		proto.ChannelLFE, proto.ChannelRearLeft, proto.ChannelRearRight},
	7: {proto.ChannelFrontLeft, proto.ChannelFrontRight, proto.ChannelFrontCenter,
		proto.ChannelLFE, proto.ChannelRearCenter,
		proto.ChannelSideLeft, proto.ChannelSideRight},
	8: {proto.ChannelFrontLeft, proto.ChannelFrontRight, proto.ChannelFrontCenter,
		proto.ChannelLFE, proto.ChannelRearLeft, proto.ChannelRearRight,
		proto.ChannelSideLeft, proto.ChannelSideRight},
}

// defaultChannelMap returns the WAV speaker layout for a channel count.
func defaultChannelMap(channels int) (proto.ChannelMap, error) {
	if channels < 1 || channels >= len(wavChannelMaps) {
		return nil, fmt.Errorf("pulseaudio: no default channel map for %d channels", channels)
	}
	return wavChannelMaps[channels], nil
}
