package pulse

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lowfreq/pulsego/proto"
)

// The server reads exactly this many cookie bytes during AUTH.
const cookieLength = 256

// A Client is a connection to a PulseAudio server. All methods are safe for
// concurrent use; commands issued on one connection are answered in order
// but matched by tag, not position.
type Client struct {
	conn net.Conn
	c    *proto.Client
	log  zerolog.Logger

	mu       sync.Mutex
	playback map[uint32]*PlaybackStream
	record   map[uint32]*RecordStream
	upload   map[uint32]*UploadStream

	subMu       sync.Mutex
	subscribers []*Subscription
	subscribed  bool

	server     string
	cookiePath string
	appName    string
	mediaName  string
	closed     func()
}

// NewClient connects to a PulseAudio server, authenticates, and registers
// the client's name and properties. The server address comes from the
// ClientServerString option, the PULSE_SERVER environment variable, or the
// default socket /run/user/<uid>/pulse/native, in that order.
func NewClient(opts ...ClientOption) (*Client, error) {
	c := &Client{
		appName:   path.Base(os.Args[0]),
		mediaName: "go audio",
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	servers := []serverString{{protocol: "unix", addr: fmt.Sprint("/run/user/", os.Getuid(), "/pulse/native")}}
	if c.server != "" {
		servers = parseServerString(c.server)
	} else if raw, ok := os.LookupEnv("PULSE_SERVER"); ok {
		servers = parseServerString(raw)
	}
	if len(servers) == 0 {
		return nil, errors.New("pulseaudio: no valid server address")
	}

	localname, err := os.Hostname()
	if err != nil {
		return nil, err
	}

	var lastErr error
	for _, s := range servers {
		if s.localname != "" && localname != s.localname {
			continue
		}
		conn, err := net.Dial(s.protocol, s.addr)
		if err != nil {
			lastErr = err
			continue
		}
		if err := c.setup(conn); err != nil {
			conn.Close()
			lastErr = err
			continue
		}
		return c, nil
	}
	return nil, fmt.Errorf("pulseaudio: connection failed: %w", lastErr)
}

func (c *Client) setup(conn net.Conn) error {
	c.conn = conn
	c.playback = make(map[uint32]*PlaybackStream)
	c.record = make(map[uint32]*RecordStream)
	c.upload = make(map[uint32]*UploadStream)
	c.c = &proto.Client{}
	c.c.Callback = c.route
	c.c.OnConnectionClosed = c.connectionLost
	c.c.SetLogger(c.log)
	c.c.Open(conn)

	var authReply proto.AuthReply
	err := c.c.Request(&proto.Auth{Version: c.c.Version(), Cookie: c.cookie()}, &authReply)
	if err != nil {
		return err
	}
	if authReply.Version.Version() < proto.MinVersion {
		return fmt.Errorf("pulseaudio: server speaks protocol %d, need %d or newer",
			authReply.Version.Version(), proto.MinVersion)
	}
	c.c.SetVersion(authReply.Version)
	c.log.Debug().Int("version", c.c.Version().Version()).Msg("connected")

	props := proto.PropList{}
	props.Set("media.name", c.mediaName)
	props.Set("application.name", c.appName)
	props.Set("application.process.id", fmt.Sprint(os.Getpid()))
	props.Set("application.process.binary", os.Args[0])
	if display := os.Getenv("DISPLAY"); display != "" {
		props.Set("window.x11.display", display)
	}
	return c.c.Request(&proto.SetClientName{Props: props}, &proto.SetClientNameReply{})
}

// cookie loads the authentication cookie, normalized to exactly 256 bytes.
// A missing cookie file is tolerated; the zero-filled cookie lets the
// server fall back to UID/GID checks on local sockets.
func (c *Client) cookie() []byte {
	p := os.Getenv("HOME") + "/.config/pulse/cookie"
	if env, ok := os.LookupEnv("PULSE_COOKIE"); ok {
		p = env
	}
	if c.cookiePath != "" {
		p = c.cookiePath
	}
	cookie := make([]byte, cookieLength)
	raw, err := os.ReadFile(p)
	if err != nil {
		if !os.IsNotExist(err) {
			c.log.Warn().Err(err).Str("path", p).Msg("cannot read cookie")
		}
		return cookie
	}
	copy(cookie, raw)
	return cookie
}

// route dispatches messages arriving on the read loop: memory blocks by
// channel to record streams, credit grants and stream events by index, and
// subscription events to subscribers. It must not issue requests.
func (c *Client) route(msg interface{}) {
	switch msg := msg.(type) {
	case *proto.MemoryBlock:
		c.mu.Lock()
		stream, ok := c.record[msg.Channel]
		c.mu.Unlock()
		if ok {
			stream.push(msg.Data)
		}
	case *proto.Request:
		c.mu.Lock()
		p, ok := c.playback[msg.StreamIndex]
		u, uok := c.upload[msg.StreamIndex]
		c.mu.Unlock()
		if ok {
			p.onRequest(msg.Length)
		} else if uok {
			u.onRequest(msg.Length)
		}
	case *proto.Started:
		if p := c.playbackStream(msg.StreamIndex); p != nil {
			p.onStarted()
		}
	case *proto.Underflow:
		if p := c.playbackStream(msg.StreamIndex); p != nil {
			p.onUnderflow(msg.Offset)
		}
	case *proto.Overflow:
		if p := c.playbackStream(msg.StreamIndex); p != nil {
			p.onOverflow()
		}
	case *proto.PlaybackStreamSuspended:
		if p := c.playbackStream(msg.StreamIndex); p != nil {
			p.onSuspended(msg.Suspended)
		}
	case *proto.PlaybackStreamMoved:
		if p := c.playbackStream(msg.StreamIndex); p != nil {
			p.onMoved(msg)
		}
	case *proto.PlaybackBufferAttrChanged:
		if p := c.playbackStream(msg.StreamIndex); p != nil {
			p.onBufferAttrChanged(msg.BufferMaxLength, msg.BufferTargetLength, msg.BufferPrebufferLength, msg.BufferMinimumRequest)
		}
	case *proto.PlaybackStreamEvent:
		if p := c.playbackStream(msg.StreamIndex); p != nil {
			p.onEvent(msg.Event, msg.Properties)
		}
	case *proto.PlaybackStreamKilled:
		c.mu.Lock()
		p, ok := c.playback[msg.StreamIndex]
		delete(c.playback, msg.StreamIndex)
		c.mu.Unlock()
		if ok {
			c.log.Warn().Uint32("stream", msg.StreamIndex).Msg("playback stream killed")
			p.onKilled()
		}
	case *proto.RecordStreamSuspended:
		if r := c.recordStream(msg.StreamIndex); r != nil {
			r.onSuspended(msg.Suspended)
		}
	case *proto.RecordStreamMoved:
		if r := c.recordStream(msg.StreamIndex); r != nil {
			r.onMoved(msg)
		}
	case *proto.RecordBufferAttrChanged:
		if r := c.recordStream(msg.StreamIndex); r != nil {
			r.onBufferAttrChanged(msg.BufferMaxLength, msg.BufferFragSize)
		}
	case *proto.RecordStreamEvent:
		if r := c.recordStream(msg.StreamIndex); r != nil {
			r.onEvent(msg.Event, msg.Properties)
		}
	case *proto.RecordStreamKilled:
		c.mu.Lock()
		r, ok := c.record[msg.StreamIndex]
		delete(c.record, msg.StreamIndex)
		c.mu.Unlock()
		if ok {
			c.log.Warn().Uint32("stream", msg.StreamIndex).Msg("record stream killed")
			r.onKilled()
		}
	case *proto.SubscribeEvent:
		c.dispatchSubscribeEvent(msg)
	default:
		c.log.Debug().Str("type", fmt.Sprintf("%T", msg)).Msg("unhandled server message")
	}
}

func (c *Client) playbackStream(index uint32) *PlaybackStream {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playback[index]
}

func (c *Client) recordStream(index uint32) *RecordStream {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.record[index]
}

// connectionLost runs when the transport fails without a user Close. Every
// stream is poisoned before the user's handler sees the event.
func (c *Client) connectionLost() {
	c.failStreams()
	if c.closed != nil {
		c.closed()
	}
}

func (c *Client) failStreams() {
	c.mu.Lock()
	playback := c.playback
	record := c.record
	upload := c.upload
	c.playback = make(map[uint32]*PlaybackStream)
	c.record = make(map[uint32]*RecordStream)
	c.upload = make(map[uint32]*UploadStream)
	c.mu.Unlock()
	for _, p := range playback {
		p.onConnectionLost()
	}
	for _, r := range record {
		r.onConnectionLost()
	}
	for _, u := range upload {
		u.onConnectionLost()
	}
}

// Close tears the connection down. Pending requests and open streams
// complete with a disconnect error; the connection-lost handler does not
// fire.
func (c *Client) Close() error {
	err := c.c.Close()
	c.failStreams()
	return err
}

// deleteStream issues a stream delete and tolerates the server no longer
// knowing the stream. Some servers answer EXIST instead of NOENTITY here.
func (c *Client) deleteStream(req proto.Command) error {
	err := c.c.Request(req, nil)
	var code proto.Error
	if errors.As(err, &code) && (code == proto.ErrNoSuchEntity || code == proto.ErrEntityExists) {
		c.log.Warn().Str("code", code.Error()).Msg("stream already gone on delete")
		return nil
	}
	return err
}

// A ClientOption supplies configuration when connecting.
type ClientOption func(*Client)

// ClientApplicationName sets the application name registered with the
// server.
func ClientApplicationName(name string) ClientOption {
	return func(c *Client) { c.appName = name }
}

// ClientMediaName sets the default media name registered with the server.
func ClientMediaName(name string) ClientOption {
	return func(c *Client) { c.mediaName = name }
}

// ClientServerString selects the server, in the syntax of the PULSE_SERVER
// environment variable.
func ClientServerString(s string) ClientOption {
	return func(c *Client) { c.server = s }
}

// ClientCookiePath overrides the authentication cookie location.
func ClientCookiePath(p string) ClientOption {
	return func(c *Client) { c.cookiePath = p }
}

// ClientLogger attaches a logger. Without one the client is silent.
func ClientLogger(log zerolog.Logger) ClientOption {
	return func(c *Client) { c.log = log }
}

// ClientConnectionClosed installs a handler for unexpected disconnects. It
// does not fire on Close.
func ClientConnectionClosed(f func()) ClientOption {
	return func(c *Client) { c.closed = f }
}
