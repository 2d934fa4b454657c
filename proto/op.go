package proto

// Command opcodes of the native protocol. The numbering mirrors the
// server's native-common header and must not be reordered.
const (
	opError   uint32 = 0
	opTimeout uint32 = 1
	opReply   uint32 = 2

	opCreatePlaybackStream uint32 = 3
	opDeletePlaybackStream uint32 = 4
	opCreateRecordStream   uint32 = 5
	opDeleteRecordStream   uint32 = 6

	opExit          uint32 = 7
	opAuth          uint32 = 8
	opSetClientName uint32 = 9

	opLookupSink          uint32 = 10
	opLookupSource        uint32 = 11
	opDrainPlaybackStream uint32 = 12
	opStat                uint32 = 13
	opGetPlaybackLatency  uint32 = 14
	opCreateUploadStream  uint32 = 15
	opDeleteUploadStream  uint32 = 16
	opFinishUploadStream  uint32 = 17
	opPlaySample          uint32 = 18
	opRemoveSample        uint32 = 19

	opGetServerInfo           uint32 = 20
	opGetSinkInfo             uint32 = 21
	opGetSinkInfoList         uint32 = 22
	opGetSourceInfo           uint32 = 23
	opGetSourceInfoList       uint32 = 24
	opGetModuleInfo           uint32 = 25
	opGetModuleInfoList       uint32 = 26
	opGetClientInfo           uint32 = 27
	opGetClientInfoList       uint32 = 28
	opGetSinkInputInfo        uint32 = 29
	opGetSinkInputInfoList    uint32 = 30
	opGetSourceOutputInfo     uint32 = 31
	opGetSourceOutputInfoList uint32 = 32
	opGetSampleInfo           uint32 = 33
	opGetSampleInfoList       uint32 = 34
	opSubscribe               uint32 = 35

	opSetSinkVolume         uint32 = 36
	opSetSinkInputVolume    uint32 = 37
	opSetSourceVolume       uint32 = 38
	opSetSinkMute           uint32 = 39
	opSetSourceMute         uint32 = 40
	opCorkPlaybackStream    uint32 = 41
	opFlushPlaybackStream   uint32 = 42
	opTriggerPlaybackStream uint32 = 43

	opSetDefaultSink        uint32 = 44
	opSetDefaultSource      uint32 = 45
	opSetPlaybackStreamName uint32 = 46
	opSetRecordStreamName   uint32 = 47
	opKillClient            uint32 = 48
	opKillSinkInput         uint32 = 49
	opKillSourceOutput      uint32 = 50

	opLoadModule   uint32 = 51
	opUnloadModule uint32 = 52

	// 53..56 are obsolete autoload commands.

	opGetRecordLatency     uint32 = 57
	opCorkRecordStream     uint32 = 58
	opFlushRecordStream    uint32 = 59
	opPrebufPlaybackStream uint32 = 60

	// server -> client
	opRequest              uint32 = 61
	opOverflow             uint32 = 62
	opUnderflow            uint32 = 63
	opPlaybackStreamKilled uint32 = 64
	opRecordStreamKilled   uint32 = 65
	opSubscribeEvent       uint32 = 66

	opMoveSinkInput                  uint32 = 67
	opMoveSourceOutput               uint32 = 68
	opSetSinkInputMute               uint32 = 69
	opSuspendSink                    uint32 = 70
	opSuspendSource                  uint32 = 71
	opSetPlaybackStreamBufferAttr    uint32 = 72
	opSetRecordStreamBufferAttr      uint32 = 73
	opUpdatePlaybackStreamSampleRate uint32 = 74
	opUpdateRecordStreamSampleRate   uint32 = 75

	// server -> client
	opPlaybackStreamSuspended uint32 = 76
	opRecordStreamSuspended   uint32 = 77
	opPlaybackStreamMoved     uint32 = 78
	opRecordStreamMoved       uint32 = 79

	opUpdateRecordStreamProplist   uint32 = 80
	opUpdatePlaybackStreamProplist uint32 = 81
	opUpdateClientProplist         uint32 = 82
	opRemoveRecordStreamProplist   uint32 = 83
	opRemovePlaybackStreamProplist uint32 = 84
	opRemoveClientProplist         uint32 = 85

	opStarted uint32 = 86 // server -> client

	opExtension uint32 = 87

	opGetCardInfo     uint32 = 88
	opGetCardInfoList uint32 = 89
	opSetCardProfile  uint32 = 90

	// server -> client
	opClientEvent               uint32 = 91
	opPlaybackStreamEvent       uint32 = 92
	opRecordStreamEvent         uint32 = 93
	opPlaybackBufferAttrChanged uint32 = 94
	opRecordBufferAttrChanged   uint32 = 95

	opSetSinkPort           uint32 = 96
	opSetSourcePort         uint32 = 97
	opSetSourceOutputVolume uint32 = 98
	opSetSourceOutputMute   uint32 = 99

	opSetPortLatencyOffset uint32 = 100

	opEnableSRBChannel  uint32 = 101
	opDisableSRBChannel uint32 = 102

	opRegisterMemfdShmid uint32 = 103
)
