// Package direct assembles direct commands: small straight-line bytecode
// programs the brick executes immediately, in parallel with any running user
// program.
//
// A command carries two scratch spaces. Local variables live on the
// executing object's stack and are never echoed back. Global variables are
// the communication reply buffer itself: global offset 0 is reply-buffer
// offset 0, and the global byte count is exactly the number of payload bytes
// the brick sends back. Offsets in both spaces must be aligned to the value
// width.
//
// Wire layout of a finalized command (before transport framing):
//
//	byte 0:   command type (reply / no-reply)
//	byte 1:   global byte count, low 8 bits
//	byte 2:   local byte count << 2 | global byte count >> 8
//	byte 3-n: bytecode
package direct

import (
	"fmt"
	"math/bits"

	"github.com/danmuck/brickctl/internal/wire"
)

const headerSize = 3

type marker uint8

const (
	markerNone marker = iota
	markerOpen
	markerClose
)

// replyFormat is one entry of the reply format list. The list mirrors every
// global allocation in order and is the sole source of truth for decoding;
// it is never transmitted.
type replyFormat struct {
	format DataFormat
	strLen int
	marker marker
}

// Builder accumulates one direct command. The zero value is not usable; call
// NewBuilder. A builder maps to exactly one instruction stream and is
// consumed by Send.
type Builder struct {
	msg         []byte
	formats     []replyFormat
	localBytes  int
	globalBytes int
}

// Transport is the link surface a builder needs to dispatch a command.
type Transport interface {
	Send(msg []byte) error
	SendForReply(msg []byte) ([]byte, error)
}

func NewBuilder() *Builder {
	// Three reserved header bytes, finalized at send time.
	return &Builder{msg: make([]byte, headerSize, 64)}
}

// LocalBytes is the bytes of local scratch allocated so far.
func (b *Builder) LocalBytes() int { return b.localBytes }

// GlobalBytes is the bytes of reply buffer the brick will populate.
func (b *Builder) GlobalBytes() int { return b.globalBytes }

// Len is the current instruction stream length, header included.
func (b *Builder) Len() int { return len(b.msg) }

type snapshot struct {
	msgLen      int
	formatLen   int
	localBytes  int
	globalBytes int
}

// add applies fn transactionally: if the result exceeds any capacity limit,
// the stream, format list and both counters are restored and ErrCapacity is
// returned. The builder stays usable for smaller instructions.
func (b *Builder) add(fn func()) error {
	s := snapshot{len(b.msg), len(b.formats), b.localBytes, b.globalBytes}

	fn()

	if len(b.msg) > MaxCommandLen ||
		b.globalBytes > MaxCommandLen ||
		b.localBytes > MaxLocalBytes {
		b.msg = b.msg[:s.msgLen]
		b.formats = b.formats[:s.formatLen]
		b.localBytes = s.localBytes
		b.globalBytes = s.globalBytes
		return ErrCapacity
	}
	return nil
}

// Send finalizes the header and dispatches the command over tx. Commands
// that allocated global scratch travel the reply path and return the decoded
// values; all others are fire-and-forget and return a nil result.
func (b *Builder) Send(tx Transport) ([]any, error) {
	if len(b.msg) <= headerSize {
		return nil, ErrEmptyCommand
	}

	b.msg[1] = byte(b.globalBytes)
	b.msg[2] = byte(b.localBytes)<<2 | byte(b.globalBytes>>8)&0x03

	if b.globalBytes > 0 {
		b.msg[0] = CommandReply
		reply, err := tx.SendForReply(b.msg)
		if err != nil {
			return nil, err
		}
		return b.parseReply(reply)
	}

	b.msg[0] = CommandNoReply
	return nil, tx.Send(b.msg)
}

func (b *Builder) op(code Opcode) {
	b.msg = append(b.msg, byte(code))
}

func (b *Builder) sub(code byte) {
	b.msg = append(b.msg, code)
}

// constParam encodes an immediate with the narrowest sufficient width,
// judged by the magnitude's bit length: 6 bits pack into the tag byte, then
// 8, 16 and finally 32-bit operands.
func (b *Builder) constParam(v int) {
	b.param(v, constParamType(v))
}

func constParamType(v int) ParamType {
	m := int64(v)
	if m < 0 {
		m = -m
	}
	switch n := bits.Len64(uint64(m)); {
	case n > 16:
		return LC4
	case n > 8:
		return LC2
	case n > 6:
		return LC1
	default:
		return LC0
	}
}

// param emits a tag byte and the little-endian operand at the tag's width.
// Packed forms fold the value into the tag byte itself.
func (b *Builder) param(v int, pt ParamType) {
	switch pt {
	case LC0:
		b.msg = append(b.msg, byte(LC0)|byte(v)&0x3F)
		return
	case GV0:
		b.msg = append(b.msg, byte(GV0)|byte(v)&0x1F)
		return
	case ParamHandle, ParamAddr:
		b.msg = append(b.msg, byte(pt)|byte(v))
		return
	}

	b.msg = append(b.msg, byte(pt))
	switch paramTypeLen(pt) {
	case 1:
		b.msg = wire.AppendU8(b.msg, uint8(v))
	case 2:
		b.msg = wire.AppendU16(b.msg, uint16(v))
	case 4:
		b.msg = wire.AppendU32(b.msg, uint32(v))
	default:
		// Unreachable for the tag set this package emits.
		panic(fmt.Sprintf("direct: parameter type %#02x has no operand width", byte(pt)))
	}
}

func (b *Builder) stringParam(s string) {
	b.msg = append(b.msg, byte(LCS))
	b.msg = wire.AppendString(b.msg, s)
}

func (b *Builder) floatParam(v float32) {
	b.msg = append(b.msg, byte(LC4))
	b.msg = wire.AppendF32(b.msg, v)
}

// localVar is a handle to allocated local scratch, replayed into the stream
// each time the variable is referenced.
type localVar struct {
	offset int
	pt     ParamType
}

// allocLocal pads the local counter up to the format's alignment, hands out
// the aligned offset, and picks the narrowest pointer width that covers the
// counter's current magnitude. Widths grow monotonically as scratch grows;
// earlier references are never rewritten.
func (b *Builder) allocLocal(df DataFormat) localVar {
	width := dataFormatLen(df)
	if pad := b.localBytes % width; pad != 0 {
		b.localBytes += width - pad
	}

	pt := LV1
	switch {
	case b.localBytes > 0xFFFF:
		pt = LV4
	case b.localBytes > 0xFF:
		pt = LV2
	}

	v := localVar{offset: b.localBytes, pt: pt}
	b.localBytes += width
	return v
}

func (b *Builder) localParam(v localVar) {
	b.param(v.offset, v.pt)
}

// replyScalar allocates an aligned global slot for a fixed-width reply
// value: it emits the global-pointer parameter, records the format for the
// decoder, and advances the global counter.
func (b *Builder) replyScalar(df DataFormat) {
	width := dataFormatLen(df)
	if pad := b.globalBytes % width; pad != 0 {
		b.globalBytes += width - pad
	}

	b.param(b.globalBytes, globalPointerType(b.globalBytes))
	b.formats = append(b.formats, replyFormat{format: df})
	b.globalBytes += width
}

// replyString allocates a fixed-size string slot of maxLen bytes. String
// slots are not aligned and always occupy the declared length regardless of
// where the terminator lands.
func (b *Builder) replyString(maxLen int) {
	b.param(b.globalBytes, globalPointerType(b.globalBytes))
	b.formats = append(b.formats, replyFormat{format: DataS, strLen: maxLen})
	b.globalBytes += maxLen
}

func globalPointerType(offset int) ParamType {
	switch {
	case offset > 0xFFFF:
		return GV4
	case offset > 0xFF:
		return GV2
	}
	return GV1
}

// openTuple / closeTuple bracket the reply allocations of one multi-value
// operation so the decoder groups them into a single Tuple.
func (b *Builder) openTuple() {
	b.formats = append(b.formats, replyFormat{marker: markerOpen})
}

func (b *Builder) closeTuple() {
	b.formats = append(b.formats, replyFormat{marker: markerClose})
}
