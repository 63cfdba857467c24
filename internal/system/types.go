// Package system speaks the brick's system-command family: fixed request
// and reply envelopes for file transfer, directory management and mailbox
// messages, as opposed to the bytecode programs of the direct family.
package system

import "fmt"

// Command and reply type discriminators for the system-command family.
const (
	CommandReply   byte = 0x01
	CommandNoReply byte = 0x81
	ReplyOK        byte = 0x03
	ReplyError     byte = 0x05
)

// Command identifies one system operation. The reply echoes it back.
type Command byte

const (
	BeginDownload     Command = 0x92 // host -> brick
	ContinueDownload  Command = 0x93
	BeginUpload       Command = 0x94 // brick -> host
	ContinueUpload    Command = 0x95
	BeginGetFile      Command = 0x96
	ContinueGetFile   Command = 0x97
	CloseFileHandle   Command = 0x98
	ListFiles         Command = 0x99
	ContinueListFiles Command = 0x9A
	CreateDir         Command = 0x9B
	DeleteFile        Command = 0x9C
	ListOpenHandles   Command = 0x9D
	WriteMailbox      Command = 0x9E
	BluetoothPin      Command = 0x9F
	EnterFWUpdate     Command = 0xA0
)

// Transfer chunk limits. The brick buffers 1024 bytes per message; after
// framing and envelope overhead a reply carries at most 1014 data bytes and
// a request at most 1016.
const (
	MaxReplyBytes = 1014
	MaxTxBytes    = 1016
)

// ReturnCode is the brick's per-command status byte.
type ReturnCode byte

const (
	Success            ReturnCode = 0x00
	UnknownHandle      ReturnCode = 0x01
	HandleNotReady     ReturnCode = 0x02
	CorruptFile        ReturnCode = 0x03
	NoHandlesAvailable ReturnCode = 0x04
	NoPermission       ReturnCode = 0x05
	IllegalPath        ReturnCode = 0x06
	FileExists         ReturnCode = 0x07
	EndOfFile          ReturnCode = 0x08
	SizeError          ReturnCode = 0x09
	UnknownError       ReturnCode = 0x0A
	IllegalFilename    ReturnCode = 0x0B
	IllegalConnection  ReturnCode = 0x0C
)

func (rc ReturnCode) String() string {
	switch rc {
	case Success:
		return "SUCCESS"
	case UnknownHandle:
		return "UNKNOWN_HANDLE"
	case HandleNotReady:
		return "HANDLE_NOT_READY"
	case CorruptFile:
		return "CORRUPT_FILE"
	case NoHandlesAvailable:
		return "NO_HANDLES_AVAILABLE"
	case NoPermission:
		return "NO_PERMISSION"
	case IllegalPath:
		return "ILLEGAL_PATH"
	case FileExists:
		return "FILE_EXISTS"
	case EndOfFile:
		return "END_OF_FILE"
	case SizeError:
		return "SIZE_ERROR"
	case UnknownError:
		return "UNKNOWN_ERROR"
	case IllegalFilename:
		return "ILLEGAL_FILENAME"
	case IllegalConnection:
		return "ILLEGAL_CONNECTION"
	}
	return fmt.Sprintf("RC(%#02x)", byte(rc))
}
