package direct

import (
	"bytes"
	"errors"
	"testing"
)

func TestConstParamTypeWidths(t *testing.T) {
	cases := []struct {
		v    int
		want ParamType
	}{
		{0, LC0},
		{1, LC0},
		{63, LC0},
		{-63, LC0},
		{64, LC1},
		{-64, LC1},
		{127, LC1},
		{255, LC1},
		{256, LC2},
		{-1000, LC2},
		{65535, LC2},
		{65536, LC4},
		{-100000, LC4},
	}
	for _, c := range cases {
		if got := constParamType(c.v); got != c.want {
			t.Fatalf("constParamType(%d) = %#02x, want %#02x", c.v, byte(got), byte(c.want))
		}
	}
}

func TestConstParamEncoding(t *testing.T) {
	cases := []struct {
		v    int
		want []byte
	}{
		{0x2A, []byte{0x2A}},
		{-2, []byte{0x3E}},
		{100, []byte{0x81, 0x64}},
		{-100, []byte{0x81, 0x9C}},
		{1000, []byte{0x82, 0xE8, 0x03}},
		{100000, []byte{0x83, 0xA0, 0x86, 0x01, 0x00}},
	}
	for _, c := range cases {
		b := NewBuilder()
		b.constParam(c.v)
		if got := b.msg[headerSize:]; !bytes.Equal(got, c.want) {
			t.Fatalf("constParam(%d) = %#v, want %#v", c.v, got, c.want)
		}
	}
}

func TestAllocLocalAligns(t *testing.T) {
	b := NewBuilder()
	if v := b.allocLocal(Data8); v.offset != 0 {
		t.Fatalf("first DATA8 at offset %d, want 0", v.offset)
	}
	// One byte in use, next slot is 4 wide: counter pads to 4.
	v := b.allocLocal(Data32)
	if v.offset != 4 {
		t.Fatalf("DATA32 after DATA8 at offset %d, want 4", v.offset)
	}
	if b.LocalBytes() != 8 {
		t.Fatalf("local bytes = %d, want 8", b.LocalBytes())
	}
	if v.pt != LV1 {
		t.Fatalf("pointer type %#02x, want LV1", byte(v.pt))
	}
}

func TestReplyScalarAligns(t *testing.T) {
	b := NewBuilder()
	b.replyScalar(Data8)
	b.replyScalar(DataF)
	if b.GlobalBytes() != 8 {
		t.Fatalf("global bytes = %d, want 8", b.GlobalBytes())
	}
	// The float's pointer parameter must name the padded offset 4.
	want := []byte{0xE1, 0x00, 0xE1, 0x04}
	if got := b.msg[headerSize:]; !bytes.Equal(got, want) {
		t.Fatalf("reply pointers = %#v, want %#v", got, want)
	}
}

func TestGlobalPointerWidthGrows(t *testing.T) {
	b := NewBuilder()

	// Four 64-byte version-string slots fill globals 0..255; every pointer
	// so far fits the 1-byte GV1 form.
	for i := 0; i < 4; i++ {
		if err := b.AddUIReadGetFWVers(); err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
	}
	if b.GlobalBytes() != 256 {
		t.Fatalf("global bytes = %d, want 256", b.GlobalBytes())
	}
	prefix := append([]byte(nil), b.msg...)

	// The fifth slot starts at offset 256 and must take the 2-byte GV2
	// form; instructions already emitted stay byte-identical.
	if err := b.AddUIReadGetFWVers(); err != nil {
		t.Fatalf("fifth read: %v", err)
	}
	wantTail := []byte{0x81, 0x0A, 0x82, 0x40, 0x00, 0xE2, 0x00, 0x01}
	if got := b.msg[len(prefix):]; !bytes.Equal(got, wantTail) {
		t.Fatalf("fifth read = %#v, want %#v", got, wantTail)
	}
	if !bytes.Equal(b.msg[:len(prefix)], prefix) {
		t.Fatal("widening a later pointer rewrote earlier instructions")
	}
	if b.GlobalBytes() != 320 {
		t.Fatalf("global bytes = %d, want 320", b.GlobalBytes())
	}
}

func TestTimerWaitBytecode(t *testing.T) {
	b := NewBuilder()
	if err := b.AddTimerWait(100); err != nil {
		t.Fatalf("AddTimerWait: %v", err)
	}
	want := []byte{
		0x85, 0x81, 0x64, 0xC1, 0x00, // TIMER_WAIT 100 -> local 0
		0x86, 0xC1, 0x00, // TIMER_READY local 0
	}
	if got := b.msg[headerSize:]; !bytes.Equal(got, want) {
		t.Fatalf("bytecode = %#v, want %#v", got, want)
	}
	if b.LocalBytes() != 4 {
		t.Fatalf("local bytes = %d, want 4", b.LocalBytes())
	}
}

func TestSoundToneBytecode(t *testing.T) {
	b := NewBuilder()
	if err := b.AddSoundTone(2, 440, 1000); err != nil {
		t.Fatalf("AddSoundTone: %v", err)
	}
	want := []byte{0x94, 0x01, 0x81, 0x02, 0x82, 0xB8, 0x01, 0x82, 0xE8, 0x03}
	if got := b.msg[headerSize:]; !bytes.Equal(got, want) {
		t.Fatalf("bytecode = %#v, want %#v", got, want)
	}
}

func TestStringParamTerminated(t *testing.T) {
	b := NewBuilder()
	if err := b.AddUIDrawText(ColorForeground, 8, 20, "Hi"); err != nil {
		t.Fatalf("AddUIDrawText: %v", err)
	}
	want := []byte{
		0x84, 0x05, 0x81, 0x01, 0x82, 0x08, 0x00, 0x82, 0x14, 0x00,
		0x84, 'H', 'i', 0x00,
	}
	if got := b.msg[headerSize:]; !bytes.Equal(got, want) {
		t.Fatalf("bytecode = %#v, want %#v", got, want)
	}
}

func TestLocalCapacityRollback(t *testing.T) {
	b := NewBuilder()
	// Each wait takes 4 bytes of local scratch; 15 fit under the 63-byte cap.
	for i := 0; i < 15; i++ {
		if err := b.AddTimerWait(10); err != nil {
			t.Fatalf("wait %d: %v", i, err)
		}
	}
	msgLen, localBytes := b.Len(), b.LocalBytes()

	if err := b.AddTimerWait(10); !errors.Is(err, ErrCapacity) {
		t.Fatalf("16th wait: %v, want ErrCapacity", err)
	}
	if b.Len() != msgLen || b.LocalBytes() != localBytes {
		t.Fatalf("rollback left len=%d locals=%d, want len=%d locals=%d",
			b.Len(), b.LocalBytes(), msgLen, localBytes)
	}

	// The builder must still accept instructions that fit.
	if err := b.AddSoundBreak(); err != nil {
		t.Fatalf("after rollback: %v", err)
	}
}

func TestMessageCapacityRollback(t *testing.T) {
	b := NewBuilder()
	text := string(bytes.Repeat([]byte{'x'}, 240))

	// Fill until the stream overflows, keeping the state seen just before
	// the failing add.
	var err error
	msgLen, formatLen := b.Len(), len(b.formats)
	for err == nil {
		msgLen, formatLen = b.Len(), len(b.formats)
		err = b.AddUIDrawText(ColorForeground, 0, 0, text)
	}
	if !errors.Is(err, ErrCapacity) {
		t.Fatalf("overflow add: %v, want ErrCapacity", err)
	}
	if b.Len() != msgLen || len(b.formats) != formatLen {
		t.Fatalf("rollback left len=%d formats=%d, want len=%d formats=%d",
			b.Len(), len(b.formats), msgLen, formatLen)
	}
	if b.Len() > MaxCommandLen {
		t.Fatalf("builder exceeded MaxCommandLen: %d", b.Len())
	}
}

func TestSendEmptyCommand(t *testing.T) {
	b := NewBuilder()
	if _, err := b.Send(&fakeTransport{}); !errors.Is(err, ErrEmptyCommand) {
		t.Fatalf("Send on empty builder: %v, want ErrEmptyCommand", err)
	}
}

func TestSinglePortIndex(t *testing.T) {
	b := NewBuilder()
	if err := b.AddOutputRead(OutA|OutB, LayerMaster); !errors.Is(err, ErrBadPort) {
		t.Fatalf("multi-port read: %v, want ErrBadPort", err)
	}
	if idx, ok := OutC.Index(); !ok || idx != 2 {
		t.Fatalf("OutC.Index() = %d, %v", idx, ok)
	}
}
