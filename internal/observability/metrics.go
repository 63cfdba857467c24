package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	commandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "brickctl",
			Subsystem: "transport",
			Name:      "commands_total",
			Help:      "Total commands sent to the brick.",
		},
		[]string{"family", "mode"},
	)
	commandDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "brickctl",
			Subsystem: "transport",
			Name:      "command_duration_seconds",
			Help:      "Round-trip duration of reply-expecting commands.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"family"},
	)
	transportBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "brickctl",
			Subsystem: "transport",
			Name:      "bytes_total",
			Help:      "Framed bytes written to and read from the link.",
		},
		[]string{"direction"},
	)
	protocolErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "brickctl",
			Subsystem: "transport",
			Name:      "protocol_errors_total",
			Help:      "Protocol-level failures by kind.",
		},
		[]string{"kind"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(commandsTotal, commandDuration, transportBytes, protocolErrors)
	})
}

func RecordCommand(family, mode string) {
	RegisterMetrics()
	commandsTotal.WithLabelValues(family, mode).Inc()
}

func RecordRoundTrip(family string, duration time.Duration) {
	RegisterMetrics()
	commandDuration.WithLabelValues(family).Observe(duration.Seconds())
}

func RecordBytes(direction string, n int) {
	RegisterMetrics()
	transportBytes.WithLabelValues(direction).Add(float64(n))
}

func RecordProtocolError(kind string) {
	RegisterMetrics()
	protocolErrors.WithLabelValues(kind).Inc()
}
