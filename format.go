package pulse

import (
	"encoding/binary"

	"github.com/lowfreq/pulsego/proto"
)

// Sample format codes matching the host byte order, for producers that
// generate samples in native endianness.
var (
	FormatNativeInt16   byte
	FormatNativeInt32   byte
	FormatNativeFloat32 byte
)

func init() {
	if binary.NativeEndian.Uint16([]byte{1, 0}) == 1 {
		FormatNativeInt16 = proto.FormatInt16LE
		FormatNativeInt32 = proto.FormatInt32LE
		FormatNativeFloat32 = proto.FormatFloat32LE
	} else {
		FormatNativeInt16 = proto.FormatInt16BE
		FormatNativeInt32 = proto.FormatInt32BE
		FormatNativeFloat32 = proto.FormatFloat32BE
	}
}
