// Package wire implements the binary primitives shared by the direct and
// system command codecs. All multi-byte integers on the wire are little
// endian; floats are IEEE-754 single precision; strings are null terminated.
package wire

import (
	"encoding/binary"
	"errors"
	"math"
)

var ErrShortBuffer = errors.New("wire: short buffer")

func AppendU8(buf []byte, v uint8) []byte {
	return append(buf, v)
}

func AppendU16(buf []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(buf, v)
}

func AppendU32(buf []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(buf, v)
}

func AppendF32(buf []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
}

// AppendString appends s with a terminating null byte. A terminator already
// present in s is not doubled.
func AppendString(buf []byte, s string) []byte {
	buf = append(buf, s...)
	if len(s) == 0 || s[len(s)-1] != 0 {
		buf = append(buf, 0)
	}
	return buf
}

func U16(buf []byte, i int) (uint16, error) {
	if i < 0 || i+2 > len(buf) {
		return 0, ErrShortBuffer
	}
	return binary.LittleEndian.Uint16(buf[i:]), nil
}

func U32(buf []byte, i int) (uint32, error) {
	if i < 0 || i+4 > len(buf) {
		return 0, ErrShortBuffer
	}
	return binary.LittleEndian.Uint32(buf[i:]), nil
}

func F32(buf []byte, i int) (float32, error) {
	bits, err := U32(buf, i)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// String reads a null-terminated string of up to max bytes starting at i.
// The terminator is optional when the slot ends at the buffer boundary.
func String(buf []byte, i, max int) (string, error) {
	if i < 0 || i > len(buf) {
		return "", ErrShortBuffer
	}
	end := i + max
	if end > len(buf) {
		end = len(buf)
	}
	for j := i; j < end; j++ {
		if buf[j] == 0 {
			return string(buf[i:j]), nil
		}
	}
	return string(buf[i:end]), nil
}
