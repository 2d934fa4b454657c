package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/rs/zerolog"

	"github.com/lowfreq/pulsego"
	"github.com/lowfreq/pulsego/proto"
)

func main() {
	server := flag.String("server", "", "server address")
	sink := flag.String("sink", "", "sink name, empty for the default sink")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: paplay [flags] file.wav")
		os.Exit(2)
	}

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	if err := play(flag.Arg(0), *server, *sink, log); err != nil {
		log.Error().Err(err).Msg("playback failed")
		os.Exit(1)
	}
}

func play(path, server, sink string, log zerolog.Logger) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	dec := wav.NewDecoder(file)
	if !dec.IsValidFile() {
		return fmt.Errorf("%s: not a WAV file", path)
	}
	channels := int(dec.NumChans)
	rate := int(dec.SampleRate)
	depth := int(dec.BitDepth)
	if channels < 1 || channels > 2 {
		return fmt.Errorf("%s: %d channels, only mono and stereo files are supported", path, channels)
	}
	log.Debug().Int("channels", channels).Int("rate", rate).Int("depth", depth).Msg("decoding")

	opts := []pulse.ClientOption{
		pulse.ClientApplicationName("paplay"),
		pulse.ClientMediaName(path),
		pulse.ClientLogger(log),
	}
	if server != "" {
		opts = append(opts, pulse.ClientServerString(server))
	}
	c, err := pulse.NewClient(opts...)
	if err != nil {
		return err
	}
	defer c.Close()

	playOpts := []pulse.PlaybackOption{
		pulse.PlaybackFormat(proto.FormatInt16LE),
		pulse.PlaybackSampleRate(rate),
		channelMap(channels),
		pulse.PlaybackUnderflow(func(offset int64) {
			log.Warn().Int64("offset", offset).Msg("underflow")
		}),
	}
	if sink != "" {
		playOpts = append(playOpts, pulse.PlaybackSink(sink))
	}
	p, err := c.NewPlayback(playOpts...)
	if err != nil {
		return err
	}
	defer p.Close()
	if err := p.Start(); err != nil {
		return err
	}

	// Samples are rescaled to 16 bit regardless of the file's depth.
	shift := uint(0)
	if depth > 16 {
		shift = uint(depth - 16)
	}
	buf := &audio.IntBuffer{
		Data:   make([]int, rate*channels),
		Format: &audio.Format{NumChannels: channels, SampleRate: rate},
	}
	out := make([]byte, 2*len(buf.Data))
	for {
		n, err := dec.PCMBuffer(buf)
		if err != nil && err != io.EOF {
			return err
		}
		if n == 0 {
			break
		}
		for i := 0; i < n; i++ {
			s := buf.Data[i] >> shift
			if depth == 8 {
				s = (s - 128) << 8
			}
			binary.LittleEndian.PutUint16(out[2*i:], uint16(int16(s)))
		}
		if _, err := p.Write(out[:2*n]); err != nil {
			return err
		}
		if err == io.EOF {
			break
		}
	}
	return p.Drain()
}

// channelMap returns the playback option matching the file's channel count.
func channelMap(channels int) pulse.PlaybackOption {
	switch channels {
	case 1:
		return pulse.PlaybackMono
	default:
		return pulse.PlaybackStereo
	}
}
