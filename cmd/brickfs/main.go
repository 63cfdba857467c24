// brickfs manages the brick's filesystem and mailboxes from the host:
// listing, fetching and storing files, creating and deleting directories,
// and posting mailbox messages to a running program.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/brickctl/internal/logging"
	"github.com/danmuck/brickctl/internal/system"
	"github.com/danmuck/brickctl/internal/transport"
)

const usage = `usage: brickfs [-config file] <command> [args]

commands:
  ls [path]              list a directory (default ../prjs)
  get <remote> [local]   copy a file off the brick
  put <local> <remote>   copy a file onto the brick
  mkdir <path>           create a directory
  rm <path>              delete a file or empty directory
  rmtree <path>          delete a directory tree
  mail <box> <text>      post a mailbox message
`

func main() {
	cfgPath := flag.String("config", "", "path to TOML config")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	logging.ConfigureRuntime()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(*cfgPath, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "brickfs: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath string, args []string) error {
	cfg := transport.DefaultConfig()
	if cfgPath != "" {
		loaded, err := loadConfig(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	logger := log.With().Str("app", "brickfs").Logger()

	conn, err := transport.Dial(cfg, logger)
	if err != nil {
		return err
	}
	defer conn.Close()

	client := system.NewClient(conn, logger)
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "ls":
		path := "../prjs"
		if len(rest) > 0 {
			path = rest[0]
		}
		return list(client, path)

	case "get":
		if len(rest) < 1 {
			return fmt.Errorf("get: missing remote path")
		}
		local := filepath.Base(rest[0])
		if len(rest) > 1 {
			local = rest[1]
		}
		data, err := client.UploadFile(rest[0])
		if err != nil {
			return err
		}
		return os.WriteFile(local, data, 0o644)

	case "put":
		if len(rest) < 2 {
			return fmt.Errorf("put: need local and remote paths")
		}
		data, err := os.ReadFile(rest[0])
		if err != nil {
			return err
		}
		return client.DownloadFile(rest[1], data)

	case "mkdir":
		if len(rest) < 1 {
			return fmt.Errorf("mkdir: missing path")
		}
		return client.CreateDir(rest[0])

	case "rm":
		if len(rest) < 1 {
			return fmt.Errorf("rm: missing path")
		}
		return client.DeletePath(rest[0])

	case "rmtree":
		if len(rest) < 1 {
			return fmt.Errorf("rmtree: missing path")
		}
		return client.DeleteDirectory(rest[0])

	case "mail":
		if len(rest) < 2 {
			return fmt.Errorf("mail: need mailbox name and message")
		}
		return client.WriteMailbox(rest[0], []byte(rest[1]))
	}

	flag.Usage()
	return fmt.Errorf("unknown command %q", cmd)
}

func list(client *system.Client, path string) error {
	l, err := client.ListFiles(path)
	if err != nil {
		return err
	}
	for _, d := range l.Dirs {
		fmt.Printf("%11s  %s/\n", "", d)
	}
	for _, f := range l.Files {
		fmt.Printf("%11d  %s\n", f.Size, f.Name)
	}
	return nil
}
