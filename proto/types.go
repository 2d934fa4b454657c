package proto

// Undefined is the index/tag/value sentinel of the native protocol.
const Undefined = 0xFFFFFFFF

// MaxChannels bounds channel counts in sample specs and volume arrays.
const MaxChannels = 32

// Sample format codes.
const (
	FormatUint8       = 0
	FormatALaw        = 1
	FormatULaw        = 2
	FormatInt16LE     = 3
	FormatInt16BE     = 4
	FormatFloat32LE   = 5
	FormatFloat32BE   = 6
	FormatInt32LE     = 7
	FormatInt32BE     = 8
	FormatInt24LE     = 9
	FormatInt24BE     = 10
	FormatInt24in32LE = 11
	FormatInt24in32BE = 12
)

var sampleSizes = [...]int{1, 1, 1, 2, 2, 4, 4, 4, 4, 3, 3, 4, 4}

// SampleSize returns the bytes per sample for a format code, or 0 for an
// unknown format.
func SampleSize(format byte) int {
	if int(format) >= len(sampleSizes) {
		return 0
	}
	return sampleSizes[format]
}

// Channel position codes.
const (
	ChannelMono               = 0
	ChannelFrontLeft          = 1
	ChannelFrontRight         = 2
	ChannelFrontCenter        = 3
	ChannelRearCenter         = 4
	ChannelRearLeft           = 5
	ChannelRearRight          = 6
	ChannelLFE                = 7
	ChannelFrontLeftOfCenter  = 8
	ChannelFrontRightOfCenter = 9
	ChannelSideLeft           = 10
	ChannelSideRight          = 11
)

const (
	EncodingAny = 0
	EncodingPCM = 1
)

// Names of the server-side default devices.
const (
	DefaultSink   = "@DEFAULT_SINK@"
	DefaultSource = "@DEFAULT_SOURCE@"
)

// A SampleSpec describes the format of PCM data: sample format, channel
// count and sample rate.
type SampleSpec struct {
	Format   byte
	Channels byte
	Rate     uint32
}

// FrameSize returns the bytes per frame (one sample across all channels).
func (s SampleSpec) FrameSize() int {
	return SampleSize(s.Format) * int(s.Channels)
}

type Microseconds uint64

// A ChannelMap assigns a position code to each channel.
type ChannelMap []byte

// A Volume is a single channel volume. 0 is muted, 0x10000 is 100% (0 dB).
type Volume uint32

const (
	VolumeMuted   Volume = 0
	VolumeNorm    Volume = 0x10000
	VolumeMax     Volume = 0x7FFFFFFF
	VolumeInvalid Volume = 0xFFFFFFFF
)

// ChannelVolumes holds one volume per channel. A valid array for set-volume
// commands has 1 to 32 entries.
type ChannelVolumes []Volume

// FormatInfo describes a stream format as an encoding plus properties.
type FormatInfo struct {
	Encoding   byte
	Properties PropList
}
