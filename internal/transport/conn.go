// Package transport frames command payloads for the serial link. Every
// message is wrapped with a 2-byte little-endian length and a 2-byte message
// counter; the length counts the counter bytes plus the payload. Replies use
// the same framing and must echo the counter.
package transport

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/danmuck/brickctl/internal/observability"
	"github.com/danmuck/brickctl/internal/wire"
)

// Command-type discriminators shared by both command families. The high bit
// cleared means the brick must send a reply.
const (
	TypeDirectReply   byte = 0x00
	TypeDirectNoReply byte = 0x80
	TypeSystemReply   byte = 0x01
	TypeSystemNoReply byte = 0x81
)

var (
	ErrEmptyMessage    = errors.New("transport: empty message")
	ErrExpectsReply    = errors.New("transport: message type expects a reply")
	ErrNoReplyExpected = errors.New("transport: message type does not expect a reply")
	ErrCounterMismatch = errors.New("transport: reply message counter does not match")
	ErrShortReply      = errors.New("transport: short reply")
)

// ExpectsReply reports whether the message's command-type byte obliges the
// brick to answer.
func ExpectsReply(msg []byte) bool {
	if len(msg) == 0 {
		return false
	}
	return msg[0] == TypeDirectReply || msg[0] == TypeSystemReply
}

// Conn serializes command exchanges over one link. It is not safe for
// concurrent use; callers needing asynchronous dispatch should front it with
// a single worker (see internal/dispatch).
type Conn struct {
	rw      io.ReadWriteCloser
	counter uint16
	log     zerolog.Logger
}

func NewConn(rw io.ReadWriteCloser, logger zerolog.Logger) *Conn {
	return &Conn{rw: rw, log: logger}
}

func (c *Conn) Close() error {
	return c.rw.Close()
}

// Send frames and writes a no-reply message.
func (c *Conn) Send(msg []byte) error {
	if len(msg) == 0 {
		return ErrEmptyMessage
	}
	if ExpectsReply(msg) {
		return ErrExpectsReply
	}
	counter := c.nextCounter()
	if err := c.writeFrame(msg, counter); err != nil {
		return err
	}
	observability.RecordCommand(family(msg), "no_reply")
	return nil
}

// SendForReply frames and writes a reply-expecting message, then blocks
// reading the framed response. The counter echo is stripped from the returned
// payload.
func (c *Conn) SendForReply(msg []byte) ([]byte, error) {
	if len(msg) == 0 {
		return nil, ErrEmptyMessage
	}
	if !ExpectsReply(msg) {
		return nil, ErrNoReplyExpected
	}
	counter := c.nextCounter()
	start := time.Now()
	if err := c.writeFrame(msg, counter); err != nil {
		return nil, err
	}

	reply, err := c.readFrame()
	if err != nil {
		return nil, err
	}
	echo, err := wire.U16(reply, 0)
	if err != nil {
		observability.RecordProtocolError("short_reply")
		return nil, ErrShortReply
	}
	if echo != counter {
		observability.RecordProtocolError("counter_mismatch")
		return nil, fmt.Errorf("%w: sent %#04x, got %#04x", ErrCounterMismatch, counter, echo)
	}

	observability.RecordCommand(family(msg), "reply")
	observability.RecordRoundTrip(family(msg), time.Since(start))
	c.log.Debug().
		Int("reply_len", len(reply)-2).
		Dur("round_trip", time.Since(start)).
		Msg("reply received")
	return reply[2:], nil
}

func (c *Conn) nextCounter() uint16 {
	c.counter++
	return c.counter
}

func (c *Conn) writeFrame(msg []byte, counter uint16) error {
	frame := make([]byte, 0, 4+len(msg))
	frame = wire.AppendU16(frame, uint16(2+len(msg)))
	frame = wire.AppendU16(frame, counter)
	frame = append(frame, msg...)

	if _, err := c.rw.Write(frame); err != nil {
		return err
	}
	observability.RecordBytes("tx", len(frame))
	c.log.Debug().
		Uint16("counter", counter).
		Int("len", len(msg)).
		Hex("type", msg[:1]).
		Msg("message sent")
	return nil
}

func (c *Conn) readFrame() ([]byte, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(c.rw, lenBuf[:]); err != nil {
		return nil, err
	}
	replyLen, _ := wire.U16(lenBuf[:], 0)
	if replyLen < 2 {
		observability.RecordProtocolError("short_reply")
		return nil, ErrShortReply
	}
	reply := make([]byte, replyLen)
	if _, err := io.ReadFull(c.rw, reply); err != nil {
		return nil, err
	}
	observability.RecordBytes("rx", int(replyLen)+2)
	return reply, nil
}

func family(msg []byte) string {
	if msg[0] == TypeSystemReply || msg[0] == TypeSystemNoReply {
		return "system"
	}
	return "direct"
}
