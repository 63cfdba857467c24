package transport

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
)

// fakeLink records written frames and serves scripted read bytes.
type fakeLink struct {
	wrote  bytes.Buffer
	toRead bytes.Buffer
	closed bool
}

func (f *fakeLink) Write(p []byte) (int, error) { return f.wrote.Write(p) }
func (f *fakeLink) Read(p []byte) (int, error)  { return f.toRead.Read(p) }
func (f *fakeLink) Close() error                { f.closed = true; return nil }

func newTestConn(link io.ReadWriteCloser) *Conn {
	return NewConn(link, zerolog.Nop())
}

func TestSendFramesMessage(t *testing.T) {
	link := &fakeLink{}
	c := newTestConn(link)

	msg := []byte{TypeDirectNoReply, 0x00, 0x00, 0xA3}
	if err := c.Send(msg); err != nil {
		t.Fatalf("send: %v", err)
	}

	// len = 2 counter bytes + 4 payload bytes; first counter is 1.
	want := []byte{0x06, 0x00, 0x01, 0x00, 0x80, 0x00, 0x00, 0xA3}
	if !bytes.Equal(link.wrote.Bytes(), want) {
		t.Fatalf("frame mismatch: got=%x want=%x", link.wrote.Bytes(), want)
	}
}

func TestSendRejectsReplyExpectingMessage(t *testing.T) {
	c := newTestConn(&fakeLink{})
	if err := c.Send([]byte{TypeDirectReply, 0x01, 0x00}); !errors.Is(err, ErrExpectsReply) {
		t.Fatalf("expected ErrExpectsReply, got %v", err)
	}
	if err := c.Send([]byte{TypeSystemReply, 0x99}); !errors.Is(err, ErrExpectsReply) {
		t.Fatalf("expected ErrExpectsReply, got %v", err)
	}
}

func TestSendForReplyRejectsNoReplyMessage(t *testing.T) {
	c := newTestConn(&fakeLink{})
	if _, err := c.SendForReply([]byte{TypeDirectNoReply}); !errors.Is(err, ErrNoReplyExpected) {
		t.Fatalf("expected ErrNoReplyExpected, got %v", err)
	}
}

func TestSendForReplyRoundTrip(t *testing.T) {
	link := &fakeLink{}
	// Reply frame: len=5 (counter + 3 payload), counter echo 0x0001,
	// payload [0x02 0x4B 0x00].
	link.toRead.Write([]byte{0x05, 0x00, 0x01, 0x00, 0x02, 0x4B, 0x00})
	c := newTestConn(link)

	reply, err := c.SendForReply([]byte{TypeDirectReply, 0x01, 0x00})
	if err != nil {
		t.Fatalf("send for reply: %v", err)
	}
	if !bytes.Equal(reply, []byte{0x02, 0x4B, 0x00}) {
		t.Fatalf("reply mismatch: %x", reply)
	}
}

func TestSendForReplyCounterMismatch(t *testing.T) {
	link := &fakeLink{}
	link.toRead.Write([]byte{0x03, 0x00, 0x34, 0x12, 0x02})
	c := newTestConn(link)

	_, err := c.SendForReply([]byte{TypeDirectReply, 0x00, 0x00})
	if !errors.Is(err, ErrCounterMismatch) {
		t.Fatalf("expected ErrCounterMismatch, got %v", err)
	}
}

func TestCounterIncrementsPerMessage(t *testing.T) {
	link := &fakeLink{}
	c := newTestConn(link)

	for i := 0; i < 3; i++ {
		if err := c.Send([]byte{TypeDirectNoReply}); err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
	}
	frames := link.wrote.Bytes()
	// Each frame is 5 bytes: len(2) + counter(2) + payload(1).
	for i := 0; i < 3; i++ {
		counter := uint16(frames[i*5+2]) | uint16(frames[i*5+3])<<8
		if counter != uint16(i+1) {
			t.Fatalf("frame %d counter = %d, want %d", i, counter, i+1)
		}
	}
}

func TestTransportErrorPropagates(t *testing.T) {
	c := newTestConn(&fakeLink{}) // nothing scripted to read
	_, err := c.SendForReply([]byte{TypeSystemReply, 0x99})
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestExpectsReply(t *testing.T) {
	cases := []struct {
		first byte
		want  bool
	}{
		{TypeDirectReply, true},
		{TypeSystemReply, true},
		{TypeDirectNoReply, false},
		{TypeSystemNoReply, false},
	}
	for _, tc := range cases {
		if got := ExpectsReply([]byte{tc.first}); got != tc.want {
			t.Fatalf("ExpectsReply(%#02x) = %v, want %v", tc.first, got, tc.want)
		}
	}
	if ExpectsReply(nil) {
		t.Fatalf("nil message must not expect a reply")
	}
}
