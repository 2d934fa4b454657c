package proto

// A Command is a client->server request. Its fields are marshalled in
// declaration order after the opcode and request tag.
type Command interface{ opcode() uint32 }

// A Reply is the typed result of a command. The dispatcher checks that a
// reply is parsed with the command that produced it.
type Reply interface{ replyTo() uint32 }

type Auth struct {
	Version Version
	Cookie  []byte
}
type AuthReply struct {
	Version Version
}

type SetClientName struct {
	Props PropList
}
type SetClientNameReply struct {
	ClientIndex uint32
}

type Exit struct{}

type CreatePlaybackStream struct {
	SampleSpec
	ChannelMap ChannelMap
	SinkIndex  uint32
	SinkName   string

	BufferMaxLength       uint32
	Corked                bool
	BufferTargetLength    uint32
	BufferPrebufferLength uint32
	BufferMinimumRequest  uint32

	SyncID uint32

	ChannelVolumes ChannelVolumes

	NoRemap      bool "12"
	NoRemix      bool "12"
	FixFormat    bool "12"
	FixRate      bool "12"
	FixChannels  bool "12"
	NoMove       bool "12"
	VariableRate bool "12"

	Muted         bool     "13"
	AdjustLatency bool     "13"
	Properties    PropList "13"

	VolumeSet     bool "14"
	EarlyRequests bool "14"

	MutedSet               bool "15"
	DontInhibitAutoSuspend bool "15"
	FailOnSuspend          bool "15"

	RelativeVolume bool "17"

	Passthrough bool "18"

	Formats []FormatInfo "21"
}

type CreatePlaybackStreamReply struct {
	StreamIndex    uint32
	SinkInputIndex uint32
	RequestedBytes uint32

	BufferMaxLength       uint32 "9"
	BufferTargetLength    uint32 "9"
	BufferPrebufferLength uint32 "9"
	BufferMinimumRequest  uint32 "9"

	SampleSpec "12"
	ChannelMap ChannelMap "12"

	SinkIndex     uint32 "12"
	SinkName      string "12"
	SinkSuspended bool   "12"

	SinkLatency Microseconds "13"

	FormatInfo "21"
}

type DeletePlaybackStream struct{ StreamIndex uint32 }

type CreateRecordStream struct {
	SampleSpec
	ChannelMap      ChannelMap
	SourceIndex     uint32
	SourceName      string
	BufferMaxLength uint32
	Corked          bool
	BufferFragSize  uint32

	NoRemap      bool "12"
	NoRemix      bool "12"
	FixFormat    bool "12"
	FixRate      bool "12"
	FixChannels  bool "12"
	NoMove       bool "12"
	VariableRate bool "12"

	PeakDetect         bool     "13"
	AdjustLatency      bool     "13"
	Properties         PropList "13"
	DirectOnInputIndex uint32   "13"

	EarlyRequests bool "14"

	DontInhibitAutoSuspend bool "15"
	FailOnSuspend          bool "15"

	Formats        []FormatInfo   "22"
	ChannelVolumes ChannelVolumes "22"
	Muted          bool           "22"
	VolumeSet      bool           "22"
	MutedSet       bool           "22"
	RelativeVolume bool           "22"
	Passthrough    bool           "22"
}

type CreateRecordStreamReply struct {
	StreamIndex       uint32
	SourceOutputIndex uint32

	BufferMaxLength uint32 "9"
	BufferFragSize  uint32 "9"

	SampleSpec      "12"
	ChannelMap      ChannelMap "12"
	SourceIndex     uint32     "12"
	SourceName      string     "12"
	SourceSuspended bool       "12"

	SourceLatency Microseconds "13"

	FormatInfo "22"
}

type DeleteRecordStream struct{ StreamIndex uint32 }

type CreateUploadStream struct {
	Name string
	SampleSpec
	ChannelMap ChannelMap
	Length     uint32

	Properties PropList "13"
}
type CreateUploadStreamReply struct {
	StreamIndex uint32
	Length      uint32
}

type DeleteUploadStream struct{ StreamIndex uint32 }

type FinishUploadStream struct{ StreamIndex uint32 }

type DrainPlaybackStream struct{ StreamIndex uint32 }

type LookupSink struct{ SinkName string }
type LookupSinkReply struct{ SinkIndex uint32 }

type LookupSource struct{ SourceName string }
type LookupSourceReply struct{ SourceIndex uint32 }

type Stat struct{}
type StatReply struct {
	NumAllocated    uint32
	AllocatedSize   uint32
	NumAccumulated  uint32
	AccumulatedSize uint32
	SampleCacheSize uint32
}

type PlaySample struct {
	SinkIndex uint32
	SinkName  string
	Volume    uint32
	Name      string

	Properties PropList "13"
}
type PlaySampleReply struct {
	SinkInputIndex uint32 "13"
}

type RemoveSample struct{ Name string }

type GetServerInfo struct{}
type GetServerInfoReply struct {
	PackageName    string
	PackageVersion string
	Username       string
	Hostname       string

	DefaultSampleSpec SampleSpec
	DefaultSinkName   string
	DefaultSourceName string

	Cookie uint32

	DefaultChannelMap ChannelMap "15"
}

type GetSinkInfo struct {
	SinkIndex uint32
	SinkName  string
}
type GetSinkInfoReply struct {
	SinkIndex uint32
	SinkName  string
	Device    string
	SampleSpec
	ChannelMap         ChannelMap
	ModuleIndex        uint32
	ChannelVolumes     ChannelVolumes
	Mute               bool
	MonitorSourceIndex uint32
	MonitorSourceName  string
	Latency            Microseconds
	Driver             string
	Flags              uint32

	Properties       PropList     "13"
	RequestedLatency Microseconds "13"

	BaseVolume     Volume "15"
	State          uint32 "15"
	NumVolumeSteps uint32 "15"
	CardIndex      uint32 "15"

	Ports []struct {
		Name        string
		Description string
		Priority    uint32
		Available   uint32 "24"
	} "16"
	ActivePortName string "16"

	Formats []FormatInfo "21"
}

type GetSourceInfo struct {
	SourceIndex uint32
	SourceName  string
}
type GetSourceInfoReply struct {
	SourceIndex uint32
	SourceName  string
	Device      string
	SampleSpec
	ChannelMap       ChannelMap
	ModuleIndex      uint32
	ChannelVolumes   ChannelVolumes
	Mute             bool
	MonitorSinkIndex uint32
	MonitorSinkName  string
	Latency          Microseconds
	Driver           string
	Flags            uint32

	Properties       PropList     "13"
	RequestedLatency Microseconds "13"

	BaseVolume     Volume "15"
	State          uint32 "15"
	NumVolumeSteps uint32 "15"
	CardIndex      uint32 "15"

	Ports []struct {
		Name        string
		Description string
		Priority    uint32
		Available   uint32 "24"
	} "16"
	ActivePortName string "16"

	Formats []FormatInfo "21"
}

type GetModuleInfo struct{ ModuleIndex uint32 }
type GetModuleInfoReply struct {
	ModuleIndex uint32
	ModuleName  string
	ModuleArgs  string
	Users       uint32

	Properties PropList "15"
	AutoLoad   bool     "<15"
}

type GetClientInfo struct{ ClientIndex uint32 }
type GetClientInfoReply struct {
	ClientIndex uint32
	Application string
	ModuleIndex uint32
	Driver      string

	Properties PropList "13"
}

type GetCardInfo struct {
	CardIndex uint32
	CardName  string
}
type GetCardInfoReply struct {
	CardIndex   uint32
	CardName    string
	ModuleIndex uint32
	Driver      string

	Profiles []struct {
		Name        string
		Description string
		NumSinks    uint32
		NumSources  uint32
		Priority    uint32
		Available   uint32 "29"
	}
	ActiveProfileName string
	Properties        PropList

	Ports []struct {
		Name        string
		Description string
		Priority    uint32
		Available   uint32
		Direction   byte
		Properties  PropList
		Profiles    []struct {
			Name string
		}
		LatencyOffset int64 "27"
	} "26"
}

type GetSinkInputInfo struct{ SinkInputIndex uint32 }
type GetSinkInputInfoReply struct {
	SinkInputIndex uint32
	MediaName      string
	ModuleIndex    uint32
	ClientIndex    uint32
	SinkIndex      uint32
	SampleSpec
	ChannelMap     ChannelMap
	ChannelVolumes ChannelVolumes

	SinkInputLatency Microseconds
	SinkLatency      Microseconds
	ResampleMethod   string
	Driver           string

	Muted bool "11"

	Properties PropList "13"

	Corked bool "19"

	VolumeReadable bool "20"
	VolumeWritable bool "20"

	FormatInfo "21"
}

type GetSourceOutputInfo struct{ SourceOutputIndex uint32 }
type GetSourceOutputInfoReply struct {
	SourceOutputIndex uint32
	MediaName         string
	ModuleIndex       uint32
	ClientIndex       uint32
	SourceIndex       uint32
	SampleSpec
	ChannelMap ChannelMap

	SourceOutputLatency Microseconds
	SourceLatency       Microseconds
	ResampleMethod      string
	Driver              string

	Properties PropList "13"

	Corked bool "19"

	ChannelVolumes ChannelVolumes "22"
	Muted          bool           "22"
	VolumeReadable bool           "22"
	VolumeWritable bool           "22"
	FormatInfo     "22"
}

type GetSampleInfo struct {
	SampleIndex uint32
	SampleName  string
}
type GetSampleInfoReply struct {
	SampleIndex    uint32
	SampleName     string
	ChannelVolumes ChannelVolumes
	Duration       Microseconds
	SampleSpec
	ChannelMap ChannelMap
	Length     uint32
	Lazy       bool
	Filename   string

	Properties PropList "13"
}

type GetSinkInfoList struct{}
type GetSourceInfoList struct{}
type GetModuleInfoList struct{}
type GetClientInfoList struct{}
type GetCardInfoList struct{}
type GetSinkInputInfoList struct{}
type GetSourceOutputInfoList struct{}
type GetSampleInfoList struct{}

type GetSinkInfoListReply []*GetSinkInfoReply
type GetSourceInfoListReply []*GetSourceInfoReply
type GetModuleInfoListReply []*GetModuleInfoReply
type GetClientInfoListReply []*GetClientInfoReply
type GetCardInfoListReply []*GetCardInfoReply
type GetSinkInputInfoListReply []*GetSinkInputInfoReply
type GetSourceOutputInfoListReply []*GetSourceOutputInfoReply
type GetSampleInfoListReply []*GetSampleInfoReply

// Subscription mask bits, one per facility.
const (
	SubscriptionMaskNull         uint32 = 0x0000
	SubscriptionMaskSink         uint32 = 0x0001
	SubscriptionMaskSource       uint32 = 0x0002
	SubscriptionMaskSinkInput    uint32 = 0x0004
	SubscriptionMaskSourceOutput uint32 = 0x0008
	SubscriptionMaskModule       uint32 = 0x0010
	SubscriptionMaskClient       uint32 = 0x0020
	SubscriptionMaskSampleCache  uint32 = 0x0040
	SubscriptionMaskServer       uint32 = 0x0080
	SubscriptionMaskAutoload     uint32 = 0x0100
	SubscriptionMaskCard         uint32 = 0x0200
	SubscriptionMaskAll          uint32 = 0x02FF
)

type Subscribe struct{ Mask uint32 }

type SetSinkVolume struct {
	SinkIndex      uint32
	SinkName       string
	ChannelVolumes ChannelVolumes
}

type SetSourceVolume struct {
	SourceIndex    uint32
	SourceName     string
	ChannelVolumes ChannelVolumes
}

type SetSinkInputVolume struct {
	SinkInputIndex uint32
	ChannelVolumes ChannelVolumes
}

type SetSourceOutputVolume struct {
	SourceOutputIndex uint32
	ChannelVolumes    ChannelVolumes
}

type SetSinkMute struct {
	SinkIndex uint32
	SinkName  string
	Mute      bool
}

type SetSourceMute struct {
	SourceIndex uint32
	SourceName  string
	Mute        bool
}

type SetSinkInputMute struct {
	SinkInputIndex uint32
	Mute           bool
}

type SetSourceOutputMute struct {
	SourceOutputIndex uint32
	Mute              bool
}

type CorkPlaybackStream struct {
	StreamIndex uint32
	Corked      bool
}

type CorkRecordStream struct {
	StreamIndex uint32
	Corked      bool
}

type FlushPlaybackStream struct{ StreamIndex uint32 }
type FlushRecordStream struct{ StreamIndex uint32 }
type TriggerPlaybackStream struct{ StreamIndex uint32 }
type PrebufPlaybackStream struct{ StreamIndex uint32 }

type SetPlaybackStreamBufferAttr struct {
	StreamIndex           uint32
	BufferMaxLength       uint32
	BufferTargetLength    uint32
	BufferPrebufferLength uint32
	BufferMinimumRequest  uint32

	AdjustLatency bool "13"

	EarlyRequests bool "14"
}
type SetPlaybackStreamBufferAttrReply struct {
	BufferMaxLength       uint32
	BufferTargetLength    uint32
	BufferPrebufferLength uint32
	BufferMinimumRequest  uint32

	SinkLatency Microseconds "13"
}

type SetRecordStreamBufferAttr struct {
	StreamIndex     uint32
	BufferMaxLength uint32
	BufferFragSize  uint32

	AdjustLatency bool "13"

	EarlyRequests bool "14"
}
type SetRecordStreamBufferAttrReply struct {
	BufferMaxLength uint32
	BufferFragSize  uint32

	SourceLatency Microseconds "13"
}

type SetDefaultSink struct{ SinkName string }
type SetDefaultSource struct{ SourceName string }

type SetPlaybackStreamName struct {
	StreamIndex uint32
	Name        string
}

type SetRecordStreamName struct {
	StreamIndex uint32
	Name        string
}

type KillClient struct{ ClientIndex uint32 }
type KillSinkInput struct{ SinkInputIndex uint32 }
type KillSourceOutput struct{ SourceOutputIndex uint32 }

type LoadModule struct {
	Name string
	Args string
}
type LoadModuleReply struct{ ModuleIndex uint32 }

type UnloadModule struct{ ModuleIndex uint32 }

type MoveSinkInput struct {
	SinkInputIndex uint32
	DeviceIndex    uint32
	DeviceName     string
}

type MoveSourceOutput struct {
	SourceOutputIndex uint32
	DeviceIndex       uint32
	DeviceName        string
}

type SuspendSink struct {
	SinkIndex uint32
	SinkName  string
	Suspend   bool
}

type SuspendSource struct {
	SourceIndex uint32
	SourceName  string
	Suspend     bool
}

type SetCardProfile struct {
	CardIndex   uint32
	CardName    string
	ProfileName string
}

type SetSinkPort struct {
	SinkIndex uint32
	SinkName  string
	Port      string
}

type SetSourcePort struct {
	SourceIndex uint32
	SourceName  string
	Port        string
}

func (*Auth) opcode() uint32                        { return opAuth }
func (*SetClientName) opcode() uint32               { return opSetClientName }
func (*Exit) opcode() uint32                        { return opExit }
func (*CreatePlaybackStream) opcode() uint32        { return opCreatePlaybackStream }
func (*DeletePlaybackStream) opcode() uint32        { return opDeletePlaybackStream }
func (*CreateRecordStream) opcode() uint32          { return opCreateRecordStream }
func (*DeleteRecordStream) opcode() uint32          { return opDeleteRecordStream }
func (*CreateUploadStream) opcode() uint32          { return opCreateUploadStream }
func (*DeleteUploadStream) opcode() uint32          { return opDeleteUploadStream }
func (*FinishUploadStream) opcode() uint32          { return opFinishUploadStream }
func (*DrainPlaybackStream) opcode() uint32         { return opDrainPlaybackStream }
func (*LookupSink) opcode() uint32                  { return opLookupSink }
func (*LookupSource) opcode() uint32                { return opLookupSource }
func (*Stat) opcode() uint32                        { return opStat }
func (*PlaySample) opcode() uint32                  { return opPlaySample }
func (*RemoveSample) opcode() uint32                { return opRemoveSample }
func (*GetServerInfo) opcode() uint32               { return opGetServerInfo }
func (*GetSinkInfo) opcode() uint32                 { return opGetSinkInfo }
func (*GetSinkInfoList) opcode() uint32             { return opGetSinkInfoList }
func (*GetSourceInfo) opcode() uint32               { return opGetSourceInfo }
func (*GetSourceInfoList) opcode() uint32           { return opGetSourceInfoList }
func (*GetModuleInfo) opcode() uint32               { return opGetModuleInfo }
func (*GetModuleInfoList) opcode() uint32           { return opGetModuleInfoList }
func (*GetClientInfo) opcode() uint32               { return opGetClientInfo }
func (*GetClientInfoList) opcode() uint32           { return opGetClientInfoList }
func (*GetCardInfo) opcode() uint32                 { return opGetCardInfo }
func (*GetCardInfoList) opcode() uint32             { return opGetCardInfoList }
func (*GetSinkInputInfo) opcode() uint32            { return opGetSinkInputInfo }
func (*GetSinkInputInfoList) opcode() uint32        { return opGetSinkInputInfoList }
func (*GetSourceOutputInfo) opcode() uint32         { return opGetSourceOutputInfo }
func (*GetSourceOutputInfoList) opcode() uint32     { return opGetSourceOutputInfoList }
func (*GetSampleInfo) opcode() uint32               { return opGetSampleInfo }
func (*GetSampleInfoList) opcode() uint32           { return opGetSampleInfoList }
func (*Subscribe) opcode() uint32                   { return opSubscribe }
func (*SetSinkVolume) opcode() uint32               { return opSetSinkVolume }
func (*SetSourceVolume) opcode() uint32             { return opSetSourceVolume }
func (*SetSinkInputVolume) opcode() uint32          { return opSetSinkInputVolume }
func (*SetSourceOutputVolume) opcode() uint32       { return opSetSourceOutputVolume }
func (*SetSinkMute) opcode() uint32                 { return opSetSinkMute }
func (*SetSourceMute) opcode() uint32               { return opSetSourceMute }
func (*SetSinkInputMute) opcode() uint32            { return opSetSinkInputMute }
func (*SetSourceOutputMute) opcode() uint32         { return opSetSourceOutputMute }
func (*CorkPlaybackStream) opcode() uint32          { return opCorkPlaybackStream }
func (*CorkRecordStream) opcode() uint32            { return opCorkRecordStream }
func (*FlushPlaybackStream) opcode() uint32         { return opFlushPlaybackStream }
func (*FlushRecordStream) opcode() uint32           { return opFlushRecordStream }
func (*TriggerPlaybackStream) opcode() uint32       { return opTriggerPlaybackStream }
func (*PrebufPlaybackStream) opcode() uint32        { return opPrebufPlaybackStream }
func (*SetPlaybackStreamBufferAttr) opcode() uint32 { return opSetPlaybackStreamBufferAttr }
func (*SetRecordStreamBufferAttr) opcode() uint32   { return opSetRecordStreamBufferAttr }
func (*SetDefaultSink) opcode() uint32              { return opSetDefaultSink }
func (*SetDefaultSource) opcode() uint32            { return opSetDefaultSource }
func (*SetPlaybackStreamName) opcode() uint32       { return opSetPlaybackStreamName }
func (*SetRecordStreamName) opcode() uint32         { return opSetRecordStreamName }
func (*KillClient) opcode() uint32                  { return opKillClient }
func (*KillSinkInput) opcode() uint32               { return opKillSinkInput }
func (*KillSourceOutput) opcode() uint32            { return opKillSourceOutput }
func (*LoadModule) opcode() uint32                  { return opLoadModule }
func (*UnloadModule) opcode() uint32                { return opUnloadModule }
func (*MoveSinkInput) opcode() uint32               { return opMoveSinkInput }
func (*MoveSourceOutput) opcode() uint32            { return opMoveSourceOutput }
func (*SuspendSink) opcode() uint32                 { return opSuspendSink }
func (*SuspendSource) opcode() uint32               { return opSuspendSource }
func (*SetCardProfile) opcode() uint32              { return opSetCardProfile }
func (*SetSinkPort) opcode() uint32                 { return opSetSinkPort }
func (*SetSourcePort) opcode() uint32               { return opSetSourcePort }

func (*AuthReply) replyTo() uint32                        { return opAuth }
func (*SetClientNameReply) replyTo() uint32               { return opSetClientName }
func (*CreatePlaybackStreamReply) replyTo() uint32        { return opCreatePlaybackStream }
func (*CreateRecordStreamReply) replyTo() uint32          { return opCreateRecordStream }
func (*CreateUploadStreamReply) replyTo() uint32          { return opCreateUploadStream }
func (*LookupSinkReply) replyTo() uint32                  { return opLookupSink }
func (*LookupSourceReply) replyTo() uint32                { return opLookupSource }
func (*StatReply) replyTo() uint32                        { return opStat }
func (*PlaySampleReply) replyTo() uint32                  { return opPlaySample }
func (*GetServerInfoReply) replyTo() uint32               { return opGetServerInfo }
func (*GetSinkInfoReply) replyTo() uint32                 { return opGetSinkInfo }
func (*GetSinkInfoListReply) replyTo() uint32             { return opGetSinkInfoList }
func (*GetSourceInfoReply) replyTo() uint32               { return opGetSourceInfo }
func (*GetSourceInfoListReply) replyTo() uint32           { return opGetSourceInfoList }
func (*GetModuleInfoReply) replyTo() uint32               { return opGetModuleInfo }
func (*GetModuleInfoListReply) replyTo() uint32           { return opGetModuleInfoList }
func (*GetClientInfoReply) replyTo() uint32               { return opGetClientInfo }
func (*GetClientInfoListReply) replyTo() uint32           { return opGetClientInfoList }
func (*GetCardInfoReply) replyTo() uint32                 { return opGetCardInfo }
func (*GetCardInfoListReply) replyTo() uint32             { return opGetCardInfoList }
func (*GetSinkInputInfoReply) replyTo() uint32            { return opGetSinkInputInfo }
func (*GetSinkInputInfoListReply) replyTo() uint32        { return opGetSinkInputInfoList }
func (*GetSourceOutputInfoReply) replyTo() uint32         { return opGetSourceOutputInfo }
func (*GetSourceOutputInfoListReply) replyTo() uint32     { return opGetSourceOutputInfoList }
func (*GetSampleInfoReply) replyTo() uint32               { return opGetSampleInfo }
func (*GetSampleInfoListReply) replyTo() uint32           { return opGetSampleInfoList }
func (*LoadModuleReply) replyTo() uint32                  { return opLoadModule }
func (*SetPlaybackStreamBufferAttrReply) replyTo() uint32 { return opSetPlaybackStreamBufferAttr }
func (*SetRecordStreamBufferAttrReply) replyTo() uint32   { return opSetRecordStreamBufferAttr }
