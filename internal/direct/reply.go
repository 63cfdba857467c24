package direct

import (
	"fmt"

	"github.com/danmuck/brickctl/internal/wire"
)

// Tuple groups the values returned by one multi-value operation.
type Tuple []any

// parseReply decodes the raw reply payload against the recorded format list.
// The decoder walks the same alignment rule the encoder used, so each
// value's offset is re-derived rather than transmitted. Byte 0 is the reply
// type discriminator; the remaining bytes must exactly fill the global
// scratch space.
func (b *Builder) parseReply(buf []byte) ([]any, error) {
	if len(buf) == 0 {
		return nil, fmt.Errorf("%w: empty reply", ErrReplyLength)
	}
	if buf[0] == ReplyError {
		return nil, fmt.Errorf("%w: reply type %#02x", ErrReplyError, buf[0])
	}
	if len(buf)-1 != b.globalBytes {
		return nil, fmt.Errorf("%w: expected %d payload bytes, got %d",
			ErrReplyLength, b.globalBytes, len(buf)-1)
	}

	result := make([]any, 0, len(b.formats))
	var tup Tuple
	inTuple := false
	index := 0

	for _, f := range b.formats {
		switch f.marker {
		case markerOpen:
			tup = Tuple{}
			inTuple = true
			continue
		case markerClose:
			result = append(result, tup)
			tup = nil
			inTuple = false
			continue
		}

		var (
			value any
			err   error
		)
		if f.format == DataS {
			// String slots are unaligned and consume their declared
			// length, wherever the terminator sits.
			value, err = wire.String(buf, index+1, f.strLen)
			if err != nil {
				return nil, fmt.Errorf("direct: decode string at %d: %w", index, err)
			}
			index += f.strLen
		} else {
			width := dataFormatLen(f.format)
			if pad := index % width; pad != 0 {
				index += width - pad
			}
			value, err = decodeScalar(buf, index+1, f.format)
			if err != nil {
				return nil, fmt.Errorf("direct: decode %#02x at %d: %w", byte(f.format), index, err)
			}
			index += width
		}

		if inTuple {
			tup = append(tup, value)
		} else {
			result = append(result, value)
		}
	}

	return result, nil
}

func decodeScalar(buf []byte, i int, df DataFormat) (any, error) {
	switch df {
	case DataBool:
		if i >= len(buf) {
			return nil, wire.ErrShortBuffer
		}
		return buf[i] != 0, nil
	case DataF:
		return wire.F32(buf, i)
	default:
		switch dataFormatLen(df) {
		case 1:
			if i >= len(buf) {
				return nil, wire.ErrShortBuffer
			}
			return buf[i], nil
		case 2:
			return wire.U16(buf, i)
		case 4:
			return wire.U32(buf, i)
		}
	}
	return nil, fmt.Errorf("direct: data format %#02x has no fixed width", byte(df))
}
