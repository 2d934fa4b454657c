package pulse

import (
	"bytes"
	"testing"

	"github.com/lowfreq/pulsego/proto"
)

func TestDefaultChannelMap(t *testing.T) {
	m, err := defaultChannelMap(1)
	if err != nil || !bytes.Equal(m, proto.ChannelMap{proto.ChannelMono}) {
		t.Errorf("defaultChannelMap(1) = %v, %v", m, err)
	}
	m, err = defaultChannelMap(2)
	if err != nil || !bytes.Equal(m, proto.ChannelMap{proto.ChannelFrontLeft, proto.ChannelFrontRight}) {
		t.Errorf("defaultChannelMap(2) = %v, %v", m, err)
	}
	for ch := 3; ch <= 8; ch++ {
		m, err := defaultChannelMap(ch)
		if err != nil || len(m) != ch {
			t.Errorf("defaultChannelMap(%d) = %v, %v", ch, m, err)
		}
	}
	if _, err := defaultChannelMap(0); err == nil {
		t.Error("defaultChannelMap(0) accepted")
	}
	if _, err := defaultChannelMap(9); err == nil {
		t.Error("defaultChannelMap(9) accepted")
	}
}
