package system

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/danmuck/brickctl/internal/wire"
)

var (
	ErrCommandFailed = errors.New("system: command failed on the brick")
	ErrBadEnvelope   = errors.New("system: malformed reply envelope")
	ErrNameTooLong   = errors.New("system: mailbox name exceeds 254 bytes")
	ErrPayloadSize   = errors.New("system: payload exceeds 16-bit length field")
)

// Transport is the link surface the client needs; *transport.Conn satisfies
// it, and tests inject a scripted fake.
type Transport interface {
	Send(msg []byte) error
	SendForReply(msg []byte) ([]byte, error)
}

// Client issues system commands over one connection. Not safe for concurrent
// use; serialize through a dispatcher when sharing a connection.
type Client struct {
	tx  Transport
	log zerolog.Logger
}

func NewClient(tx Transport, logger zerolog.Logger) *Client {
	return &Client{tx: tx, log: logger.With().Str("component", "system").Logger()}
}

// roundTrip sends one reply-expecting command and validates the three-byte
// reply envelope: reply type, command echo, return code. It returns the data
// following the envelope together with the return code; codes other than the
// listed ok set become an ErrCommandFailed.
func (c *Client) roundTrip(cmd Command, payload []byte, ok ...ReturnCode) ([]byte, ReturnCode, error) {
	msg := make([]byte, 0, 2+len(payload))
	msg = append(msg, CommandReply, byte(cmd))
	msg = append(msg, payload...)

	reply, err := c.tx.SendForReply(msg)
	if err != nil {
		return nil, 0, err
	}
	if len(reply) < 3 {
		return nil, 0, fmt.Errorf("%w: %d bytes", ErrBadEnvelope, len(reply))
	}
	if reply[0] != ReplyOK && reply[0] != ReplyError {
		return nil, 0, fmt.Errorf("%w: reply type %#02x", ErrBadEnvelope, reply[0])
	}
	if reply[1] != byte(cmd) {
		return nil, 0, fmt.Errorf("%w: command echo %#02x, sent %#02x",
			ErrBadEnvelope, reply[1], byte(cmd))
	}

	rc := ReturnCode(reply[2])
	accepted := rc == Success
	for _, code := range ok {
		accepted = accepted || rc == code
	}
	if reply[0] == ReplyError && !accepted {
		return nil, rc, fmt.Errorf("%w: %s (cmd %#02x)", ErrCommandFailed, rc, byte(cmd))
	}

	c.log.Debug().
		Uint8("cmd", byte(cmd)).
		Str("rc", rc.String()).
		Int("data_bytes", len(reply)-3).
		Msg("system round trip")
	return reply[3:], rc, nil
}

// WriteMailbox posts a payload to a named mailbox on the brick, where a
// running program picks it up with a mailbox read block. Fire and forget:
// the brick never acknowledges mailbox writes.
func (c *Client) WriteMailbox(name string, payload []byte) error {
	if len(name)+1 > 0xFF {
		return ErrNameTooLong
	}
	if len(payload) > 0xFFFF {
		return ErrPayloadSize
	}

	msg := make([]byte, 0, 5+len(name)+len(payload))
	msg = append(msg, CommandNoReply, byte(WriteMailbox))
	msg = wire.AppendU8(msg, uint8(len(name)+1))
	msg = wire.AppendString(msg, name)
	msg = wire.AppendU16(msg, uint16(len(payload)))
	msg = append(msg, payload...)

	c.log.Debug().Str("mailbox", name).Int("bytes", len(payload)).Msg("mailbox write")
	return c.tx.Send(msg)
}
