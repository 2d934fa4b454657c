package pulse

import (
	"github.com/lowfreq/pulsego/proto"
)

// A Sink is an output device.
type Sink struct {
	info proto.GetSinkInfoReply
}

// ListSinks returns all available output devices.
func (c *Client) ListSinks() ([]*Sink, error) {
	var reply proto.GetSinkInfoListReply
	if err := c.c.Request(&proto.GetSinkInfoList{}, &reply); err != nil {
		return nil, err
	}
	sinks := make([]*Sink, len(reply))
	for i := range sinks {
		sinks[i] = &Sink{info: *reply[i]}
	}
	return sinks, nil
}

// DefaultSink returns the default output device.
func (c *Client) DefaultSink() (*Sink, error) {
	var sink Sink
	err := c.c.Request(&proto.GetSinkInfo{SinkIndex: proto.Undefined}, &sink.info)
	if err != nil {
		return nil, err
	}
	return &sink, nil
}

// SinkByID looks up a sink by name. Sink names are unique identifiers, but
// not necessarily human-readable.
func (c *Client) SinkByID(name string) (*Sink, error) {
	var sink Sink
	err := c.c.Request(&proto.GetSinkInfo{SinkIndex: proto.Undefined, SinkName: name}, &sink.info)
	if err != nil {
		return nil, err
	}
	return &sink, nil
}

// ID returns the sink name.
func (s *Sink) ID() string { return s.info.SinkName }

// Name is a human-readable name describing the sink.
func (s *Sink) Name() string { return s.info.Device }

// Channels returns the default channel map.
func (s *Sink) Channels() proto.ChannelMap { return s.info.ChannelMap }

// SampleRate returns the default sample rate.
func (s *Sink) SampleRate() int { return int(s.info.Rate) }

// SinkIndex returns the sink index.
func (s *Sink) SinkIndex() uint32 { return s.info.SinkIndex }

// Volume returns the current volume, one value per channel.
func (s *Sink) Volume() proto.ChannelVolumes { return s.info.ChannelVolumes }

// Mute reports whether the sink is muted.
func (s *Sink) Mute() bool { return s.info.Mute }

// CardIndex returns the index of the card the sink belongs to.
func (s *Sink) CardIndex() uint32 { return s.info.CardIndex }

// Properties returns the sink's property list.
func (s *Sink) Properties() proto.PropList { return s.info.Properties }

// Info exposes the raw server reply.
func (s *Sink) Info() *proto.GetSinkInfoReply { return &s.info }

// A Source is an input device.
type Source struct {
	info proto.GetSourceInfoReply
}

// ListSources returns all available input devices.
func (c *Client) ListSources() ([]*Source, error) {
	var reply proto.GetSourceInfoListReply
	if err := c.c.Request(&proto.GetSourceInfoList{}, &reply); err != nil {
		return nil, err
	}
	sources := make([]*Source, len(reply))
	for i := range sources {
		sources[i] = &Source{info: *reply[i]}
	}
	return sources, nil
}

// DefaultSource returns the default input device.
func (c *Client) DefaultSource() (*Source, error) {
	var source Source
	err := c.c.Request(&proto.GetSourceInfo{SourceIndex: proto.Undefined}, &source.info)
	if err != nil {
		return nil, err
	}
	return &source, nil
}

// SourceByID looks up a source by name.
func (c *Client) SourceByID(name string) (*Source, error) {
	var source Source
	err := c.c.Request(&proto.GetSourceInfo{SourceIndex: proto.Undefined, SourceName: name}, &source.info)
	if err != nil {
		return nil, err
	}
	return &source, nil
}

// ID returns the source name.
func (s *Source) ID() string { return s.info.SourceName }

// Name is a human-readable name describing the source.
func (s *Source) Name() string { return s.info.Device }

// Channels returns the default channel map.
func (s *Source) Channels() proto.ChannelMap { return s.info.ChannelMap }

// SampleRate returns the default sample rate.
func (s *Source) SampleRate() int { return int(s.info.Rate) }

// SourceIndex returns the source index.
func (s *Source) SourceIndex() uint32 { return s.info.SourceIndex }

// Volume returns the current volume, one value per channel.
func (s *Source) Volume() proto.ChannelVolumes { return s.info.ChannelVolumes }

// Mute reports whether the source is muted.
func (s *Source) Mute() bool { return s.info.Mute }

// Properties returns the source's property list.
func (s *Source) Properties() proto.PropList { return s.info.Properties }

// Info exposes the raw server reply.
func (s *Source) Info() *proto.GetSourceInfoReply { return &s.info }

// LookupSink resolves a sink name to its index.
func (c *Client) LookupSink(name string) (uint32, error) {
	var reply proto.LookupSinkReply
	if err := c.c.Request(&proto.LookupSink{SinkName: name}, &reply); err != nil {
		return proto.Undefined, err
	}
	return reply.SinkIndex, nil
}

// LookupSource resolves a source name to its index.
func (c *Client) LookupSource(name string) (uint32, error) {
	var reply proto.LookupSourceReply
	if err := c.c.Request(&proto.LookupSource{SourceName: name}, &reply); err != nil {
		return proto.Undefined, err
	}
	return reply.SourceIndex, nil
}

// ServerInfo describes the server the client is connected to.
type ServerInfo struct {
	PackageName    string
	PackageVersion string
	Username       string
	Hostname       string
	DefaultSink    string
	DefaultSource  string
}

// ServerInfo queries the server's identity and defaults.
func (c *Client) ServerInfo() (*ServerInfo, error) {
	var reply proto.GetServerInfoReply
	if err := c.c.Request(&proto.GetServerInfo{}, &reply); err != nil {
		return nil, err
	}
	return &ServerInfo{
		PackageName:    reply.PackageName,
		PackageVersion: reply.PackageVersion,
		Username:       reply.Username,
		Hostname:       reply.Hostname,
		DefaultSink:    reply.DefaultSinkName,
		DefaultSource:  reply.DefaultSourceName,
	}, nil
}

// Stat reports the server's memory block accounting.
type Stat struct {
	NumAllocated    uint32
	AllocatedSize   uint32
	NumAccumulated  uint32
	AccumulatedSize uint32
	SampleCacheSize uint32
}

// Stat queries the server's memory usage counters.
func (c *Client) Stat() (*Stat, error) {
	var reply proto.StatReply
	if err := c.c.Request(&proto.Stat{}, &reply); err != nil {
		return nil, err
	}
	return &Stat{
		NumAllocated:    reply.NumAllocated,
		AllocatedSize:   reply.AllocatedSize,
		NumAccumulated:  reply.NumAccumulated,
		AccumulatedSize: reply.AccumulatedSize,
		SampleCacheSize: reply.SampleCacheSize,
	}, nil
}

// A Module is a loadable server module instance.
type Module struct {
	info proto.GetModuleInfoReply
}

// ListModules returns all loaded modules.
func (c *Client) ListModules() ([]*Module, error) {
	var reply proto.GetModuleInfoListReply
	if err := c.c.Request(&proto.GetModuleInfoList{}, &reply); err != nil {
		return nil, err
	}
	modules := make([]*Module, len(reply))
	for i := range modules {
		modules[i] = &Module{info: *reply[i]}
	}
	return modules, nil
}

// ModuleByIndex looks up a loaded module.
func (c *Client) ModuleByIndex(index uint32) (*Module, error) {
	var module Module
	err := c.c.Request(&proto.GetModuleInfo{ModuleIndex: index}, &module.info)
	if err != nil {
		return nil, err
	}
	return &module, nil
}

// Name returns the module name.
func (m *Module) Name() string { return m.info.ModuleName }

// Args returns the argument string the module was loaded with.
func (m *Module) Args() string { return m.info.ModuleArgs }

// ModuleIndex returns the module index.
func (m *Module) ModuleIndex() uint32 { return m.info.ModuleIndex }

// Users returns the number of entities depending on the module.
func (m *Module) Users() uint32 { return m.info.Users }

// A ConnectedClient is another client connected to the same server.
type ConnectedClient struct {
	info proto.GetClientInfoReply
}

// ListClients returns all clients connected to the server.
func (c *Client) ListClients() ([]*ConnectedClient, error) {
	var reply proto.GetClientInfoListReply
	if err := c.c.Request(&proto.GetClientInfoList{}, &reply); err != nil {
		return nil, err
	}
	clients := make([]*ConnectedClient, len(reply))
	for i := range clients {
		clients[i] = &ConnectedClient{info: *reply[i]}
	}
	return clients, nil
}

// Name returns the client's application name.
func (c *ConnectedClient) Name() string { return c.info.Application }

// ClientIndex returns the client index.
func (c *ConnectedClient) ClientIndex() uint32 { return c.info.ClientIndex }

// Properties returns the client's property list.
func (c *ConnectedClient) Properties() proto.PropList { return c.info.Properties }

// A Card is a physical audio device with switchable profiles.
type Card struct {
	info proto.GetCardInfoReply
}

// ListCards returns all cards known to the server.
func (c *Client) ListCards() ([]*Card, error) {
	var reply proto.GetCardInfoListReply
	if err := c.c.Request(&proto.GetCardInfoList{}, &reply); err != nil {
		return nil, err
	}
	cards := make([]*Card, len(reply))
	for i := range cards {
		cards[i] = &Card{info: *reply[i]}
	}
	return cards, nil
}

// CardByID looks up a card by name.
func (c *Client) CardByID(name string) (*Card, error) {
	var card Card
	err := c.c.Request(&proto.GetCardInfo{CardIndex: proto.Undefined, CardName: name}, &card.info)
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// ID returns the card name.
func (c *Card) ID() string { return c.info.CardName }

// CardIndex returns the card index.
func (c *Card) CardIndex() uint32 { return c.info.CardIndex }

// ActiveProfile returns the name of the active profile.
func (c *Card) ActiveProfile() string { return c.info.ActiveProfileName }

// Profiles returns the names of the card's profiles.
func (c *Card) Profiles() []string {
	names := make([]string, len(c.info.Profiles))
	for i := range c.info.Profiles {
		names[i] = c.info.Profiles[i].Name
	}
	return names
}

// Properties returns the card's property list.
func (c *Card) Properties() proto.PropList { return c.info.Properties }

// SetCardProfile switches a card to the named profile.
func (c *Client) SetCardProfile(cardIndex uint32, profile string) error {
	return c.c.Request(&proto.SetCardProfile{
		CardIndex:   cardIndex,
		ProfileName: profile,
	}, nil)
}

// SetSinkPort switches the named sink to one of its ports.
func (c *Client) SetSinkPort(sinkName, port string) error {
	return c.c.Request(&proto.SetSinkPort{
		SinkIndex: proto.Undefined,
		SinkName:  sinkName,
		Port:      port,
	}, nil)
}

// SetSourcePort switches the named source to one of its ports.
func (c *Client) SetSourcePort(sourceName, port string) error {
	return c.c.Request(&proto.SetSourcePort{
		SourceIndex: proto.Undefined,
		SourceName:  sourceName,
		Port:        port,
	}, nil)
}

// A SinkInput is a playback stream attached to a sink, not necessarily one
// of this client's.
type SinkInput struct {
	info proto.GetSinkInputInfoReply
}

// ListSinkInputs returns all playback streams on the server.
func (c *Client) ListSinkInputs() ([]*SinkInput, error) {
	var reply proto.GetSinkInputInfoListReply
	if err := c.c.Request(&proto.GetSinkInputInfoList{}, &reply); err != nil {
		return nil, err
	}
	inputs := make([]*SinkInput, len(reply))
	for i := range inputs {
		inputs[i] = &SinkInput{info: *reply[i]}
	}
	return inputs, nil
}

// SinkInputByIndex looks up a playback stream.
func (c *Client) SinkInputByIndex(index uint32) (*SinkInput, error) {
	var in SinkInput
	err := c.c.Request(&proto.GetSinkInputInfo{SinkInputIndex: index}, &in.info)
	if err != nil {
		return nil, err
	}
	return &in, nil
}

// Name returns the stream's media name.
func (s *SinkInput) Name() string { return s.info.MediaName }

// SinkInputIndex returns the stream index.
func (s *SinkInput) SinkInputIndex() uint32 { return s.info.SinkInputIndex }

// SinkIndex returns the index of the sink the stream plays to.
func (s *SinkInput) SinkIndex() uint32 { return s.info.SinkIndex }

// ClientIndex returns the index of the owning client.
func (s *SinkInput) ClientIndex() uint32 { return s.info.ClientIndex }

// Volume returns the stream volume, one value per channel.
func (s *SinkInput) Volume() proto.ChannelVolumes { return s.info.ChannelVolumes }

// Mute reports whether the stream is muted.
func (s *SinkInput) Mute() bool { return s.info.Muted }

// Properties returns the stream's property list.
func (s *SinkInput) Properties() proto.PropList { return s.info.Properties }

// A SourceOutput is a record stream attached to a source, not necessarily
// one of this client's.
type SourceOutput struct {
	info proto.GetSourceOutputInfoReply
}

// ListSourceOutputs returns all record streams on the server.
func (c *Client) ListSourceOutputs() ([]*SourceOutput, error) {
	var reply proto.GetSourceOutputInfoListReply
	if err := c.c.Request(&proto.GetSourceOutputInfoList{}, &reply); err != nil {
		return nil, err
	}
	outputs := make([]*SourceOutput, len(reply))
	for i := range outputs {
		outputs[i] = &SourceOutput{info: *reply[i]}
	}
	return outputs, nil
}

// SourceOutputByIndex looks up a record stream.
func (c *Client) SourceOutputByIndex(index uint32) (*SourceOutput, error) {
	var out SourceOutput
	err := c.c.Request(&proto.GetSourceOutputInfo{SourceOutputIndex: index}, &out.info)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Name returns the stream's media name.
func (s *SourceOutput) Name() string { return s.info.MediaName }

// SourceOutputIndex returns the stream index.
func (s *SourceOutput) SourceOutputIndex() uint32 { return s.info.SourceOutputIndex }

// SourceIndex returns the index of the source the stream records from.
func (s *SourceOutput) SourceIndex() uint32 { return s.info.SourceIndex }

// ClientIndex returns the index of the owning client.
func (s *SourceOutput) ClientIndex() uint32 { return s.info.ClientIndex }

// Properties returns the stream's property list.
func (s *SourceOutput) Properties() proto.PropList { return s.info.Properties }

// MoveSinkInput moves a playback stream to another sink.
func (c *Client) MoveSinkInput(index uint32, sinkName string) error {
	return c.c.Request(&proto.MoveSinkInput{
		SinkInputIndex: index,
		DeviceIndex:    proto.Undefined,
		DeviceName:     sinkName,
	}, nil)
}

// MoveSourceOutput moves a record stream to another source.
func (c *Client) MoveSourceOutput(index uint32, sourceName string) error {
	return c.c.Request(&proto.MoveSourceOutput{
		SourceOutputIndex: index,
		DeviceIndex:       proto.Undefined,
		DeviceName:        sourceName,
	}, nil)
}

// KillClient disconnects another client from the server.
func (c *Client) KillClient(index uint32) error {
	return c.c.Request(&proto.KillClient{ClientIndex: index}, nil)
}

// KillSinkInput forcibly removes a playback stream.
func (c *Client) KillSinkInput(index uint32) error {
	return c.c.Request(&proto.KillSinkInput{SinkInputIndex: index}, nil)
}

// KillSourceOutput forcibly removes a record stream.
func (c *Client) KillSourceOutput(index uint32) error {
	return c.c.Request(&proto.KillSourceOutput{SourceOutputIndex: index}, nil)
}

// SuspendSink suspends or resumes a sink by index.
func (c *Client) SuspendSink(index uint32, suspend bool) error {
	return c.c.Request(&proto.SuspendSink{SinkIndex: index, Suspend: suspend}, nil)
}

// SuspendSource suspends or resumes a source by index.
func (c *Client) SuspendSource(index uint32, suspend bool) error {
	return c.c.Request(&proto.SuspendSource{SourceIndex: index, Suspend: suspend}, nil)
}
