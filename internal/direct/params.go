package direct

// ParamType tags every encoded parameter so the VM knows how to interpret
// the bytes that follow.
type ParamType byte

const (
	// Immediate constants.
	LC0 ParamType = 0x00 // 6-bit value packed into the tag byte
	LC1 ParamType = 0x81 // 8-bit value
	LC2 ParamType = 0x82 // 16-bit value
	LC4 ParamType = 0x83 // 32-bit value
	LCS ParamType = 0x84 // null-terminated string

	// Pointers to local (stack) variables.
	LV1 ParamType = 0xC1 // 8-bit offset
	LV2 ParamType = 0xC2 // 16-bit offset
	LV4 ParamType = 0xC3 // 32-bit offset

	// Pointers to global (reply buffer) variables.
	GV0 ParamType = 0x60 // 5-bit offset packed into the tag byte
	GV1 ParamType = 0xE1 // 8-bit offset
	GV2 ParamType = 0xE2 // 16-bit offset
	GV4 ParamType = 0xE3 // 32-bit offset

	// Handles and labels.
	ParamHandle ParamType = 0x10 // 8-bit handle index
	ParamAddr   ParamType = 0x08 // 3-bit address
	ParamLabel  ParamType = 0xA0
)

// paramTypeLen is the number of operand bytes following each tag. Packed
// forms (LC0, GV0) carry their value in the tag byte itself.
func paramTypeLen(pt ParamType) int {
	switch pt {
	case LC0, GV0:
		return 0
	case LC1, LV1, GV1, ParamHandle, ParamAddr, ParamLabel:
		return 1
	case LC2, LV2, GV2:
		return 2
	case LC4, LV4, GV4:
		return 4
	}
	return -1
}

// DataFormat describes a value's representation in scratch space and in the
// reply buffer.
type DataFormat byte

const (
	Data8   DataFormat = 0x00
	Data16  DataFormat = 0x01
	Data32  DataFormat = 0x02
	DataF   DataFormat = 0x03 // 32-bit IEEE-754 single precision
	DataS   DataFormat = 0x04 // null-terminated string
	DataA   DataFormat = 0x05 // array handle
	DataV   DataFormat = 0x07 // variable type
	DataPct DataFormat = 0x10 // percent (INPUT_READEXT)
	DataRaw DataFormat = 0x12 // raw (INPUT_READEXT)
	DataSI  DataFormat = 0x13 // SI unit (INPUT_READEXT)

	// Host-side only: marks a 1-byte reply slot decoded as a Go bool.
	DataBool DataFormat = 0xFE
)

// dataFormatLen is the byte width of a fixed-size DataFormat; it doubles as
// the format's alignment. Variable-size formats (DataS, DataA, DataV) have
// no fixed width and return 0.
func dataFormatLen(df DataFormat) int {
	switch df {
	case Data8, DataPct, DataBool:
		return 1
	case Data16:
		return 2
	case Data32, DataF, DataRaw, DataSI:
		return 4
	}
	return 0
}
