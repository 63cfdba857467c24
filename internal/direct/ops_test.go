package direct

import (
	"bytes"
	"testing"
)

// fakeTransport records dispatched commands and plays back a scripted reply.
type fakeTransport struct {
	sent    [][]byte
	replies [][]byte
	err     error
}

func (f *fakeTransport) Send(msg []byte) error {
	f.sent = append(f.sent, append([]byte(nil), msg...))
	return f.err
}

func (f *fakeTransport) SendForReply(msg []byte) ([]byte, error) {
	f.sent = append(f.sent, append([]byte(nil), msg...))
	if f.err != nil {
		return nil, f.err
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return reply, nil
}

func TestSendNoReplyHeader(t *testing.T) {
	tx := &fakeTransport{}
	b := NewBuilder()
	if err := b.AddOutputSpeed(OutB|OutC, 50, LayerMaster); err != nil {
		t.Fatalf("AddOutputSpeed: %v", err)
	}
	if err := b.AddOutputStart(OutB|OutC, LayerMaster); err != nil {
		t.Fatalf("AddOutputStart: %v", err)
	}

	vals, err := b.Send(tx)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if vals != nil {
		t.Fatalf("no-reply command returned values: %#v", vals)
	}
	if len(tx.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(tx.sent))
	}

	msg := tx.sent[0]
	want := []byte{
		CommandNoReply, 0x00, 0x00,
		0xA5, 0x00, 0x06, 0x81, 0x32, // OUTPUT_SPEED layer 0, BC, 50
		0xA6, 0x00, 0x06, // OUTPUT_START layer 0, BC
	}
	if !bytes.Equal(msg, want) {
		t.Fatalf("message = %#v, want %#v", msg, want)
	}
}

func TestSendReplyHeaderAndDecode(t *testing.T) {
	tx := &fakeTransport{replies: [][]byte{{ReplyOK, 0x4B}}}
	b := NewBuilder()
	if err := b.AddUIReadGetLBatt(); err != nil {
		t.Fatalf("AddUIReadGetLBatt: %v", err)
	}

	vals, err := b.Send(tx)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if len(vals) != 1 || vals[0].(byte) != 75 {
		t.Fatalf("values = %#v, want [75]", vals)
	}

	msg := tx.sent[0]
	want := []byte{
		CommandReply, 0x01, 0x00,
		0x81, 0x12, 0xE1, 0x00, // UI_READ GET_LBATT -> global 0
	}
	if !bytes.Equal(msg, want) {
		t.Fatalf("message = %#v, want %#v", msg, want)
	}
}

func TestSendHeaderPacksLocals(t *testing.T) {
	tx := &fakeTransport{replies: [][]byte{{ReplyOK, 0x0A}}}
	b := NewBuilder()
	if err := b.AddTimerWait(500); err != nil {
		t.Fatalf("AddTimerWait: %v", err)
	}
	if err := b.AddKeepAlive(); err != nil {
		t.Fatalf("AddKeepAlive: %v", err)
	}

	if _, err := b.Send(tx); err != nil {
		t.Fatalf("Send: %v", err)
	}

	msg := tx.sent[0]
	// 4 local bytes, 1 global byte: header byte 2 is locals<<2 | globals>>8.
	if msg[1] != 0x01 || msg[2] != 4<<2 {
		t.Fatalf("header = %#02x %#02x, want 0x01 0x10", msg[1], msg[2])
	}
}

func TestInputReadySIBytecode(t *testing.T) {
	b := NewBuilder()
	err := b.AddInputDeviceReadySI(In2, int(UltrasonicModeCM), DeviceEV3Ultrasonic, LayerMaster)
	if err != nil {
		t.Fatalf("AddInputDeviceReadySI: %v", err)
	}
	want := []byte{
		0x99, 0x1D, // INPUT_DEVICE READY_SI
		0x81, 0x00, // layer
		0x81, 0x01, // port 2
		0x81, 0x1E, // device type
		0x81, 0x00, // mode
		0x81, 0x01, // one value
		0xE1, 0x00, // -> global 0
	}
	if got := b.msg[headerSize:]; !bytes.Equal(got, want) {
		t.Fatalf("bytecode = %#v, want %#v", got, want)
	}
	if b.GlobalBytes() != 4 {
		t.Fatalf("global bytes = %d, want 4", b.GlobalBytes())
	}
}

func TestVersionStringRoundTrip(t *testing.T) {
	reply := make([]byte, 1+MaxVersionStringLen)
	reply[0] = ReplyOK
	copy(reply[1:], "V1.09H\x00")
	tx := &fakeTransport{replies: [][]byte{reply}}

	b := NewBuilder()
	if err := b.AddUIReadGetFWVers(); err != nil {
		t.Fatalf("AddUIReadGetFWVers: %v", err)
	}
	vals, err := b.Send(tx)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if s := vals[0].(string); s != "V1.09H" {
		t.Fatalf("firmware version = %q, want %q", s, "V1.09H")
	}
}

func TestSDCardTupleRoundTrip(t *testing.T) {
	tx := &fakeTransport{replies: [][]byte{{
		ReplyOK,
		0x01,             // present
		0x00, 0x00, 0x00, // padding to the first DATA32
		0x00, 0x00, 0x02, 0x00, // total 131072 KiB
		0x00, 0x90, 0x01, 0x00, // free 102400 KiB
	}}}

	b := NewBuilder()
	if err := b.AddUIReadGetSDCard(); err != nil {
		t.Fatalf("AddUIReadGetSDCard: %v", err)
	}
	vals, err := b.Send(tx)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	tup := vals[0].(Tuple)
	if ok := tup[0].(bool); !ok {
		t.Fatalf("present = false, want true")
	}
	if total := tup[1].(uint32); total != 131072 {
		t.Fatalf("total = %d, want 131072", total)
	}
	if free := tup[2].(uint32); free != 102400 {
		t.Fatalf("free = %d, want 102400", free)
	}
}
