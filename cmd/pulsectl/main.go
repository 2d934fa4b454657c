package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"

	"github.com/lowfreq/pulsego"
	"github.com/lowfreq/pulsego/proto"
)

var completer = readline.NewPrefixCompleter(
	readline.PcItem("info"),
	readline.PcItem("stat"),
	readline.PcItem("list",
		readline.PcItem("sinks"),
		readline.PcItem("sources"),
		readline.PcItem("sink-inputs"),
		readline.PcItem("source-outputs"),
		readline.PcItem("modules"),
		readline.PcItem("clients"),
		readline.PcItem("cards"),
		readline.PcItem("samples"),
	),
	readline.PcItem("set-sink-volume"),
	readline.PcItem("set-sink-mute"),
	readline.PcItem("set-source-volume"),
	readline.PcItem("set-source-mute"),
	readline.PcItem("set-default-sink"),
	readline.PcItem("set-default-source"),
	readline.PcItem("set-card-profile"),
	readline.PcItem("move-sink-input"),
	readline.PcItem("kill-sink-input"),
	readline.PcItem("kill-source-output"),
	readline.PcItem("kill-client"),
	readline.PcItem("suspend-sink"),
	readline.PcItem("suspend-source"),
	readline.PcItem("load-module"),
	readline.PcItem("unload-module"),
	readline.PcItem("play-sample"),
	readline.PcItem("remove-sample"),
	readline.PcItem("subscribe"),
	readline.PcItem("help"),
	readline.PcItem("exit"),
)

func main() {
	configPath := flag.String("config", defaultConfigPath(), "config file")
	server := flag.String("server", "", "server address, overrides config")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *configPath != defaultConfigPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *server != "" {
		cfg.Server = *server
	}
	if *verbose {
		cfg.Level = zerolog.DebugLevel
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.Level).
		With().Timestamp().Logger()

	opts := []pulse.ClientOption{
		pulse.ClientApplicationName(cfg.AppName),
		pulse.ClientLogger(log),
		pulse.ClientConnectionClosed(func() {
			log.Error().Msg("connection to server lost")
		}),
	}
	if cfg.Server != "" {
		opts = append(opts, pulse.ClientServerString(cfg.Server))
	}
	if cfg.Cookie != "" {
		opts = append(opts, pulse.ClientCookiePath(cfg.Cookie))
	}

	c, err := pulse.NewClient(opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer c.Close()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:       "pulse> ",
		HistoryFile:  cfg.HistoryFile,
		AutoComplete: completer,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "exit" || fields[0] == "quit" {
			return
		}
		if err := run(c, rl, fields[0], fields[1:]); err != nil {
			fmt.Fprintln(rl.Stderr(), "error:", err)
		}
	}
}

var errUsage = errors.New("bad arguments, see help")

func run(c *pulse.Client, rl *readline.Instance, cmd string, args []string) error {
	w := rl.Stdout()
	switch cmd {
	case "help":
		fmt.Fprintln(w, "commands:")
		fmt.Fprint(w, completer.Tree("  "))
		return nil
	case "info":
		info, err := c.ServerInfo()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %s on %s (user %s)\n", info.PackageName, info.PackageVersion, info.Hostname, info.Username)
		fmt.Fprintf(w, "default sink:   %s\n", info.DefaultSink)
		fmt.Fprintf(w, "default source: %s\n", info.DefaultSource)
		return nil
	case "stat":
		stat, err := c.Stat()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "blocks allocated:   %d (%d bytes)\n", stat.NumAllocated, stat.AllocatedSize)
		fmt.Fprintf(w, "blocks accumulated: %d (%d bytes)\n", stat.NumAccumulated, stat.AccumulatedSize)
		fmt.Fprintf(w, "sample cache:       %d bytes\n", stat.SampleCacheSize)
		return nil
	case "list":
		if len(args) != 1 {
			return errUsage
		}
		return list(c, w, args[0])
	case "set-sink-volume":
		if len(args) != 2 {
			return errUsage
		}
		sink, err := c.SinkByID(args[0])
		if err != nil {
			return err
		}
		pct, err := strconv.ParseFloat(args[1], 32)
		if err != nil {
			return err
		}
		return c.SetSinkVolume(sink, float32(pct/100))
	case "set-source-volume":
		if len(args) != 2 {
			return errUsage
		}
		source, err := c.SourceByID(args[0])
		if err != nil {
			return err
		}
		pct, err := strconv.ParseFloat(args[1], 32)
		if err != nil {
			return err
		}
		return c.SetSourceVolume(source, float32(pct/100))
	case "set-sink-mute":
		if len(args) != 2 {
			return errUsage
		}
		sink, err := c.SinkByID(args[0])
		if err != nil {
			return err
		}
		mute, err := strconv.ParseBool(args[1])
		if err != nil {
			return err
		}
		return c.SetSinkMute(sink, mute)
	case "set-source-mute":
		if len(args) != 2 {
			return errUsage
		}
		source, err := c.SourceByID(args[0])
		if err != nil {
			return err
		}
		mute, err := strconv.ParseBool(args[1])
		if err != nil {
			return err
		}
		return c.SetSourceMute(source, mute)
	case "set-default-sink":
		if len(args) != 1 {
			return errUsage
		}
		return c.SetDefaultSink(args[0])
	case "set-default-source":
		if len(args) != 1 {
			return errUsage
		}
		return c.SetDefaultSource(args[0])
	case "set-card-profile":
		if len(args) != 2 {
			return errUsage
		}
		card, err := c.CardByID(args[0])
		if err != nil {
			return err
		}
		return c.SetCardProfile(card.CardIndex(), args[1])
	case "move-sink-input":
		if len(args) != 2 {
			return errUsage
		}
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return c.MoveSinkInput(index, args[1])
	case "kill-sink-input":
		index, err := singleIndex(args)
		if err != nil {
			return err
		}
		return c.KillSinkInput(index)
	case "kill-source-output":
		index, err := singleIndex(args)
		if err != nil {
			return err
		}
		return c.KillSourceOutput(index)
	case "kill-client":
		index, err := singleIndex(args)
		if err != nil {
			return err
		}
		return c.KillClient(index)
	case "suspend-sink":
		if len(args) != 2 {
			return errUsage
		}
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		suspend, err := strconv.ParseBool(args[1])
		if err != nil {
			return err
		}
		return c.SuspendSink(index, suspend)
	case "suspend-source":
		if len(args) != 2 {
			return errUsage
		}
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		suspend, err := strconv.ParseBool(args[1])
		if err != nil {
			return err
		}
		return c.SuspendSource(index, suspend)
	case "load-module":
		if len(args) < 1 {
			return errUsage
		}
		modArgs := pulse.ModuleArgs{}
		for _, a := range args[1:] {
			key, value, ok := strings.Cut(a, "=")
			if !ok {
				return errUsage
			}
			modArgs[key] = value
		}
		index, err := c.LoadModule(args[0], modArgs)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "module %d loaded\n", index)
		return nil
	case "unload-module":
		index, err := singleIndex(args)
		if err != nil {
			return err
		}
		return c.UnloadModule(index)
	case "play-sample":
		switch len(args) {
		case 1:
			_, err := c.PlaySample(args[0], "", proto.VolumeInvalid)
			return err
		case 2:
			_, err := c.PlaySample(args[0], args[1], proto.VolumeInvalid)
			return err
		}
		return errUsage
	case "remove-sample":
		if len(args) != 1 {
			return errUsage
		}
		return c.RemoveSample(args[0])
	case "subscribe":
		return watch(c, rl)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func list(c *pulse.Client, w io.Writer, what string) error {
	switch what {
	case "sinks":
		sinks, err := c.ListSinks()
		if err != nil {
			return err
		}
		for _, s := range sinks {
			fmt.Fprintf(w, "#%d %s\n    %s, %d ch @ %d Hz, %.0f%%",
				s.SinkIndex(), s.ID(), s.Name(), len(s.Channels()), s.SampleRate(),
				averagePercent(s.Volume()))
			if s.Mute() {
				fmt.Fprint(w, " (muted)")
			}
			fmt.Fprintln(w)
		}
	case "sources":
		sources, err := c.ListSources()
		if err != nil {
			return err
		}
		for _, s := range sources {
			fmt.Fprintf(w, "#%d %s\n    %s, %d ch @ %d Hz, %.0f%%",
				s.SourceIndex(), s.ID(), s.Name(), len(s.Channels()), s.SampleRate(),
				averagePercent(s.Volume()))
			if s.Mute() {
				fmt.Fprint(w, " (muted)")
			}
			fmt.Fprintln(w)
		}
	case "sink-inputs":
		inputs, err := c.ListSinkInputs()
		if err != nil {
			return err
		}
		for _, s := range inputs {
			fmt.Fprintf(w, "#%d %q on sink #%d (client #%d)\n",
				s.SinkInputIndex(), s.Name(), s.SinkIndex(), s.ClientIndex())
		}
	case "source-outputs":
		outputs, err := c.ListSourceOutputs()
		if err != nil {
			return err
		}
		for _, s := range outputs {
			fmt.Fprintf(w, "#%d %q on source #%d (client #%d)\n",
				s.SourceOutputIndex(), s.Name(), s.SourceIndex(), s.ClientIndex())
		}
	case "modules":
		modules, err := c.ListModules()
		if err != nil {
			return err
		}
		for _, m := range modules {
			fmt.Fprintf(w, "#%d %s %s\n", m.ModuleIndex(), m.Name(), m.Args())
		}
	case "clients":
		clients, err := c.ListClients()
		if err != nil {
			return err
		}
		for _, cl := range clients {
			fmt.Fprintf(w, "#%d %s\n", cl.ClientIndex(), cl.Name())
		}
	case "cards":
		cards, err := c.ListCards()
		if err != nil {
			return err
		}
		for _, card := range cards {
			fmt.Fprintf(w, "#%d %s\n    profiles: %s (active: %s)\n",
				card.CardIndex(), card.ID(),
				strings.Join(card.Profiles(), ", "), card.ActiveProfile())
		}
	case "samples":
		samples, err := c.ListSamples()
		if err != nil {
			return err
		}
		for _, s := range samples {
			fmt.Fprintf(w, "#%d %s (%d bytes)\n", s.SampleIndex, s.SampleName, s.Length)
		}
	default:
		return errUsage
	}
	return nil
}

// watch prints server change events until the user presses enter.
func watch(c *pulse.Client, rl *readline.Instance) error {
	sub, err := c.Subscribe(func(ev pulse.SubscriptionEvent) {
		fmt.Fprintln(rl.Stdout(), ev)
	})
	if err != nil {
		return err
	}
	defer sub.Close()

	rl.SetPrompt("watching, enter to stop ")
	defer rl.SetPrompt("pulse> ")
	_, err = rl.Readline()
	if err != nil && err != readline.ErrInterrupt && err != io.EOF {
		return err
	}
	return nil
}

func averagePercent(vols proto.ChannelVolumes) float64 {
	if len(vols) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vols {
		sum += pulse.VolumeToPercent(v)
	}
	return sum / float64(len(vols))
}

func parseIndex(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	return uint32(n), err
}

func singleIndex(args []string) (uint32, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	return parseIndex(args[0])
}
