package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/rs/zerolog"

	"github.com/lowfreq/pulsego"
	"github.com/lowfreq/pulsego/proto"
)

func main() {
	server := flag.String("server", "", "server address")
	source := flag.String("source", "", "source name, empty for the default source")
	rate := flag.Int("rate", 44100, "sample rate")
	stereo := flag.Bool("stereo", true, "record two channels")
	duration := flag.Duration("duration", 0, "stop after this long, 0 to record until interrupted")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: parec [flags] file.wav")
		os.Exit(2)
	}

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	if err := record(flag.Arg(0), *server, *source, *rate, *stereo, *duration, log); err != nil {
		log.Error().Err(err).Msg("recording failed")
		os.Exit(1)
	}
}

func record(path, server, source string, rate int, stereo bool, duration time.Duration, log zerolog.Logger) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	channels := 1
	if stereo {
		channels = 2
	}
	enc := wav.NewEncoder(file, rate, 16, channels, 1)
	sink := &wavSink{
		enc: enc,
		buf: &audio.IntBuffer{
			Format: &audio.Format{NumChannels: channels, SampleRate: rate},
		},
	}

	opts := []pulse.ClientOption{
		pulse.ClientApplicationName("parec"),
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

	recOpts := []pulse.RecordOption{
		pulse.RecordFormat(proto.FormatInt16LE),
		pulse.RecordSampleRate(rate),
		pulse.RecordOverrun(func() { log.Warn().Msg("overrun, recording paused") }),
	}
	if stereo {
		recOpts = append(recOpts, pulse.RecordStereo)
	} else {
		recOpts = append(recOpts, pulse.RecordMono)
	}
	if source != "" {
		recOpts = append(recOpts, pulse.RecordSource(source))
	}
	r, err := c.NewRecord(sink, recOpts...)
	if err != nil {
		return err
	}
	if err := r.Start(); err != nil {
		return err
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	if duration > 0 {
		select {
		case <-interrupt:
		case <-time.After(duration):
		}
	} else {
		<-interrupt
	}

	if err := r.Close(); err != nil {
		return err
	}
	return enc.Close()
}

// A wavSink converts little-endian 16 bit frames into WAV encoder buffers.
// The record stream calls Write from the connection's read loop.
type wavSink struct {
	enc *wav.Encoder
	buf *audio.IntBuffer
}

func (s *wavSink) Write(b []byte) (int, error) {
	n := len(b) / 2
	if cap(s.buf.Data) < n {
		s.buf.Data = make([]int, n)
	}
	s.buf.Data = s.buf.Data[:n]
	for i := 0; i < n; i++ {
		s.buf.Data[i] = int(int16(binary.LittleEndian.Uint16(b[2*i:])))
	}
	if err := s.enc.Write(s.buf); err != nil {
		return 0, err
	}
	return len(b), nil
}
