package proto

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestU32Encoding(t *testing.T) {
	var ts tagStruct
	ts.putU32(0x10000)
	want := []byte{'L', 0x00, 0x01, 0x00, 0x00}
	if !bytes.Equal(ts.bytes(), want) {
		t.Fatalf("putU32(0x10000) = % X, want % X", ts.bytes(), want)
	}
	p := parseTagStruct(ts.bytes())
	if got := p.u32(); got != 65536 || p.err != nil {
		t.Fatalf("getU32 = %d, %v, want 65536", got, p.err)
	}
}

func TestStringEncoding(t *testing.T) {
	var ts tagStruct
	ts.putString("pa")
	if want := []byte{'t', 'p', 'a', 0x00}; !bytes.Equal(ts.bytes(), want) {
		t.Fatalf("putString(\"pa\") = % X, want % X", ts.bytes(), want)
	}
	var null tagStruct
	null.putString("")
	if want := []byte{'N'}; !bytes.Equal(null.bytes(), want) {
		t.Fatalf("putString(\"\") = % X, want % X", null.bytes(), want)
	}
	if got := parseTagStruct(null.bytes()).string(); got != "" {
		t.Fatalf("null string reads back as %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	var ts tagStruct
	ts.putU8(7)
	ts.putU32(0xDEADBEEF)
	ts.putU64(1 << 40)
	ts.putS64(-5)
	ts.putUsec(1234567)
	ts.putString("hello")
	ts.putArbitrary([]byte{1, 2, 3})
	ts.putBool(true)
	ts.putBool(false)
	ts.putSampleSpec(SampleSpec{Format: FormatInt16LE, Channels: 2, Rate: 44100})
	ts.putChannelMap(ChannelMap{ChannelFrontLeft, ChannelFrontRight})
	ts.putCvolume(ChannelVolumes{VolumeNorm, VolumeNorm / 2})
	ts.putVolume(VolumeNorm)

	p := parseTagStruct(ts.bytes())
	if got := p.u8(); got != 7 {
		t.Errorf("u8 = %d", got)
	}
	if got := p.u32(); got != 0xDEADBEEF {
		t.Errorf("u32 = %#x", got)
	}
	if got := p.u64(); got != 1<<40 {
		t.Errorf("u64 = %d", got)
	}
	if got := p.s64(); got != -5 {
		t.Errorf("s64 = %d", got)
	}
	if got := p.usec(); got != 1234567 {
		t.Errorf("usec = %d", got)
	}
	if got := p.string(); got != "hello" {
		t.Errorf("string = %q", got)
	}
	if got := p.arbitrary(); !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("arbitrary = %v", got)
	}
	if got := p.bool(); !got {
		t.Errorf("bool = %v, want true", got)
	}
	if got := p.bool(); got {
		t.Errorf("bool = %v, want false", got)
	}
	if got := p.sampleSpec(); got != (SampleSpec{Format: FormatInt16LE, Channels: 2, Rate: 44100}) {
		t.Errorf("sampleSpec = %+v", got)
	}
	if got := p.channelMap(); !bytes.Equal(got, ChannelMap{ChannelFrontLeft, ChannelFrontRight}) {
		t.Errorf("channelMap = %v", got)
	}
	if got := p.cvolume(); !reflect.DeepEqual(got, ChannelVolumes{VolumeNorm, VolumeNorm / 2}) {
		t.Errorf("cvolume = %v", got)
	}
	if got := p.volume(); got != VolumeNorm {
		t.Errorf("volume = %d", got)
	}
	if p.err != nil {
		t.Fatalf("round trip failed: %v", p.err)
	}
	if !p.atEnd() {
		t.Fatalf("%d bytes left after round trip", p.remaining())
	}
}

func TestPropListRoundTrip(t *testing.T) {
	in := PropList{}
	in.Set("application.name", "ut")
	in.Set("application.process.id", "1")

	var ts tagStruct
	ts.putPropList(in)
	p := parseTagStruct(ts.bytes())
	out := p.propList()
	if p.err != nil {
		t.Fatalf("propList: %v", p.err)
	}
	if v, ok := out.Get("application.name"); !ok || v != "ut" {
		t.Errorf("application.name = %q, %v", v, ok)
	}
	if v, ok := out.Get("application.process.id"); !ok || v != "1" {
		t.Errorf("application.process.id = %q, %v", v, ok)
	}
}

func TestShortBody(t *testing.T) {
	p := parseTagStruct([]byte{'L', 0x00, 0x01})
	p.u32()
	if !errors.Is(p.err, ErrProtocolError) {
		t.Fatalf("truncated u32 read: err = %v, want protocol error", p.err)
	}
}

func TestWrongTag(t *testing.T) {
	p := parseTagStruct([]byte{'t', 'x', 0x00})
	p.u32()
	if !errors.Is(p.err, ErrProtocolError) {
		t.Fatalf("tag mismatch: err = %v, want protocol error", p.err)
	}
}

func TestTimevalRejected(t *testing.T) {
	p := parseTagStruct([]byte{'T', 0, 0, 0, 0, 0, 0, 0, 0})
	p.u32()
	if !errors.Is(p.err, ErrProtocolError) {
		t.Fatalf("timeval value: err = %v, want protocol error", p.err)
	}
}

func TestSampleSpecChannelBound(t *testing.T) {
	p := parseTagStruct([]byte{'a', FormatInt16LE, 32, 0, 0, 0xAC, 0x44})
	p.sampleSpec()
	if !errors.Is(p.err, ErrProtocolError) {
		t.Fatalf("32 channel sample spec: err = %v, want protocol error", p.err)
	}
}
