// brickctl is an interactive console for poking a brick over its serial
// link: each single-letter command assembles one direct command, sends it,
// and prints the decoded reply.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/brickctl/internal/direct"
	"github.com/danmuck/brickctl/internal/dispatch"
	"github.com/danmuck/brickctl/internal/logging"
	"github.com/danmuck/brickctl/internal/observability"
	"github.com/danmuck/brickctl/internal/transport"
)

func main() {
	cfgPath := flag.String("config", "", "path to TOML config")
	flag.Parse()

	logging.ConfigureRuntime()
	if err := run(*cfgPath); err != nil {
		fmt.Fprintf(os.Stderr, "brickctl: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath string) error {
	cfg := defaultAppConfig()
	if cfgPath != "" {
		var err error
		if cfg, err = loadConfig(cfgPath); err != nil {
			return err
		}
	}
	logger := log.With().Str("app", "brickctl").Logger()

	if cfg.MetricsAddr != "" {
		go func() {
			if err := observability.ServeMetrics(cfg.MetricsAddr, "brickctl", logger); err != nil {
				logger.Error().Err(err).Msg("metrics server exited")
			}
		}()
	}

	conn, err := transport.Dial(cfg.Serial, logger)
	if err != nil {
		return err
	}
	defer conn.Close()

	worker := dispatch.NewWorker(8, logger)
	defer worker.Stop()

	console := &console{conn: conn, worker: worker}
	printHelp()

	sc := bufio.NewScanner(os.Stdin)
	for fmt.Print("> "); sc.Scan(); fmt.Print("> ") {
		cmd := strings.TrimSpace(sc.Text())
		if cmd == "q" {
			return nil
		}
		console.handle(cmd)
	}
	return sc.Err()
}

func printHelp() {
	fmt.Print(`commands:
  b  battery level (%)        v  battery voltage
  f  firmware version         i  brick IP address
  t  play a tone              s  stop sound
  1  start motors B+C         0  coast motors B+C
  x  brake motors B+C         l  cycle status LEDs
  d  draw a greeting          k  reset sleep timer
  q  quit
`)
}

type console struct {
	conn   *transport.Conn
	worker *dispatch.Worker
	led    direct.LEDPattern
}

func (c *console) handle(cmd string) {
	switch cmd {
	case "":
	case "b":
		c.query("battery", func(b *direct.Builder) error { return b.AddUIReadGetLBatt() })
	case "v":
		c.query("voltage", func(b *direct.Builder) error { return b.AddUIReadGetVBatt() })
	case "f":
		c.query("firmware", func(b *direct.Builder) error { return b.AddUIReadGetFWVers() })
	case "i":
		c.query("ip", func(b *direct.Builder) error { return b.AddUIReadGetIP() })
	case "t":
		c.query("tone", func(b *direct.Builder) error { return b.AddSoundTone(20, 440, 500) })
	case "s":
		c.query("sound off", func(b *direct.Builder) error { return b.AddSoundBreak() })
	case "1":
		c.query("start", func(b *direct.Builder) error {
			if err := b.AddOutputSpeed(direct.OutB|direct.OutC, 40, direct.LayerMaster); err != nil {
				return err
			}
			return b.AddOutputStart(direct.OutB|direct.OutC, direct.LayerMaster)
		})
	case "0":
		c.query("coast", func(b *direct.Builder) error {
			return b.AddOutputStop(direct.OutB|direct.OutC, direct.Coast, direct.LayerMaster)
		})
	case "x":
		c.query("brake", func(b *direct.Builder) error {
			return b.AddOutputStop(direct.OutB|direct.OutC, direct.Brake, direct.LayerMaster)
		})
	case "l":
		c.led = (c.led + 1) % (direct.LEDOrangeHeartbeat + 1)
		pattern := c.led
		c.query("led", func(b *direct.Builder) error { return b.AddSetLEDs(pattern) })
	case "d":
		c.query("draw", func(b *direct.Builder) error {
			if err := b.AddUIDrawClean(); err != nil {
				return err
			}
			if err := b.AddUIDrawText(direct.ColorForeground, 10, 50, "hello from brickctl"); err != nil {
				return err
			}
			return b.AddUIDrawUpdate()
		})
	case "k":
		c.query("keep-alive", func(b *direct.Builder) error { return b.AddKeepAlive() })
	default:
		fmt.Printf("unknown command %q\n", cmd)
	}
}

// query assembles one command and queues it; the worker's callback prints
// whatever the brick sent back.
func (c *console) query(name string, build func(*direct.Builder) error) {
	b := direct.NewBuilder()
	if err := build(b); err != nil {
		fmt.Printf("%s: %v\n", name, err)
		return
	}

	err := c.worker.Put(func() (any, error) {
		return b.Send(c.conn)
	}, func(result any, err error) {
		if err != nil {
			fmt.Printf("%s: %v\n", name, err)
			return
		}
		vals, _ := result.([]any)
		if len(vals) == 0 {
			fmt.Printf("%s: ok\n", name)
			return
		}
		fmt.Printf("%s: %v\n", name, vals)
	})
	if err != nil {
		fmt.Printf("%s: %v\n", name, err)
	}
}
