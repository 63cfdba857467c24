package observability

import (
	"testing"
	"time"
)

func TestRegisterMetricsIsIdempotent(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()
}

func TestRecordHelpersDoNotPanic(t *testing.T) {
	RecordCommand("direct", "reply")
	RecordCommand("system", "no_reply")
	RecordRoundTrip("direct", 15*time.Millisecond)
	RecordBytes("tx", 12)
	RecordBytes("rx", 7)
	RecordProtocolError("counter_mismatch")
}
