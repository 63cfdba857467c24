package transport

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.bug.st/serial"
)

// Config describes the serial link to the brick. The zero ReadTimeout keeps
// reads blocking indefinitely, matching the protocol's synchronous model;
// callers that want bounded waits set it explicitly.
type Config struct {
	Port        string
	Baud        int
	ReadTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Port: "/dev/rfcomm0",
		Baud: 115200,
	}
}

// Dial opens the serial port (8 data bits, no parity, one stop bit) and
// wraps it in a Conn.
func Dial(cfg Config, logger zerolog.Logger) (*Conn, error) {
	mode := &serial.Mode{
		BaudRate: cfg.Baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(cfg.Port, mode)
	if err != nil {
		return nil, fmt.Errorf("transport: open %s: %w", cfg.Port, err)
	}
	if cfg.ReadTimeout > 0 {
		if err := port.SetReadTimeout(cfg.ReadTimeout); err != nil {
			port.Close()
			return nil, fmt.Errorf("transport: set read timeout: %w", err)
		}
	}
	logger.Info().
		Str("port", cfg.Port).
		Int("baud", cfg.Baud).
		Dur("read_timeout", cfg.ReadTimeout).
		Msg("serial port opened")
	return NewConn(port, logger), nil
}
