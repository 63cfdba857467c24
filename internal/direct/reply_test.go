package direct

import (
	"errors"
	"testing"
)

func TestParseReplySingleScalar(t *testing.T) {
	b := NewBuilder()
	b.replyScalar(DataPct)

	vals, err := b.parseReply([]byte{ReplyOK, 0x4B})
	if err != nil {
		t.Fatalf("parseReply: %v", err)
	}
	if len(vals) != 1 {
		t.Fatalf("got %d values, want 1", len(vals))
	}
	if pct, ok := vals[0].(byte); !ok || pct != 75 {
		t.Fatalf("value = %#v, want byte 75", vals[0])
	}
}

func TestParseReplyFloat(t *testing.T) {
	b := NewBuilder()
	b.replyScalar(DataF)

	// 7.5 little-endian.
	vals, err := b.parseReply([]byte{ReplyOK, 0x00, 0x00, 0xF0, 0x40})
	if err != nil {
		t.Fatalf("parseReply: %v", err)
	}
	if f, ok := vals[0].(float32); !ok || f != 7.5 {
		t.Fatalf("value = %#v, want float32 7.5", vals[0])
	}
}

func TestParseReplyTupleWithPadding(t *testing.T) {
	b := NewBuilder()
	b.openTuple()
	b.replyScalar(Data8)
	b.replyScalar(Data32) // pads to offset 4
	b.closeTuple()

	buf := []byte{
		ReplyOK,
		0x32,             // speed 50
		0x00, 0x00, 0x00, // alignment padding
		0x10, 0x27, 0x00, 0x00, // tacho 10000
	}
	vals, err := b.parseReply(buf)
	if err != nil {
		t.Fatalf("parseReply: %v", err)
	}
	if len(vals) != 1 {
		t.Fatalf("got %d values, want 1 tuple", len(vals))
	}
	tup, ok := vals[0].(Tuple)
	if !ok || len(tup) != 2 {
		t.Fatalf("value = %#v, want 2-element Tuple", vals[0])
	}
	if speed := tup[0].(byte); speed != 50 {
		t.Fatalf("speed = %d, want 50", speed)
	}
	if tacho := tup[1].(uint32); tacho != 10000 {
		t.Fatalf("tacho = %d, want 10000", tacho)
	}
}

func TestParseReplyStringSlot(t *testing.T) {
	b := NewBuilder()
	b.replyString(8)
	b.replyScalar(Data8)

	// The string occupies all 8 declared bytes regardless of where its
	// terminator sits; the scalar follows at offset 8.
	buf := []byte{ReplyOK, 'V', '1', '.', '0', '9', 'H', 0x00, 0xFF, 0x2A}
	vals, err := b.parseReply(buf)
	if err != nil {
		t.Fatalf("parseReply: %v", err)
	}
	if s := vals[0].(string); s != "V1.09H" {
		t.Fatalf("string = %q, want %q", s, "V1.09H")
	}
	if v := vals[1].(byte); v != 0x2A {
		t.Fatalf("scalar = %#02x, want 0x2A", v)
	}
}

func TestParseReplyBool(t *testing.T) {
	b := NewBuilder()
	b.replyScalar(DataBool)

	vals, err := b.parseReply([]byte{ReplyOK, 0x01})
	if err != nil {
		t.Fatalf("parseReply: %v", err)
	}
	if pressed := vals[0].(bool); !pressed {
		t.Fatalf("value = false, want true")
	}
}

func TestParseReplyErrorType(t *testing.T) {
	b := NewBuilder()
	b.replyScalar(Data8)

	if _, err := b.parseReply([]byte{ReplyError, 0x00}); !errors.Is(err, ErrReplyError) {
		t.Fatalf("error reply: %v, want ErrReplyError", err)
	}
}

func TestParseReplyLengthMismatch(t *testing.T) {
	b := NewBuilder()
	b.replyScalar(Data32)

	cases := [][]byte{
		nil,
		{ReplyOK},
		{ReplyOK, 0x01, 0x02},
		{ReplyOK, 0x01, 0x02, 0x03, 0x04, 0x05},
	}
	for _, buf := range cases {
		if _, err := b.parseReply(buf); !errors.Is(err, ErrReplyLength) {
			t.Fatalf("parseReply(%#v): %v, want ErrReplyLength", buf, err)
		}
	}
}
