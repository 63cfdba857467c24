package system

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/brickctl/internal/wire"
)

// FileInfo is one regular-file line of a directory listing.
type FileInfo struct {
	MD5  string
	Size uint32
	Name string
}

// Listing is a parsed directory listing. Dirs keep their trailing slash
// stripped; "." and ".." are omitted.
type Listing struct {
	Dirs  []string
	Files []FileInfo
}

// ListFiles retrieves and parses the listing of a directory on the brick.
// Paths are relative to /home/root/lms2012/sys unless absolute.
func (c *Client) ListFiles(path string) (*Listing, error) {
	payload := make([]byte, 0, 3+len(path))
	payload = wire.AppendU16(payload, MaxReplyBytes)
	payload = wire.AppendString(payload, path)

	data, rc, err := c.roundTrip(ListFiles, payload, EndOfFile)
	if err != nil {
		return nil, err
	}
	if len(data) < 5 {
		return nil, fmt.Errorf("%w: list header %d bytes", ErrBadEnvelope, len(data))
	}
	listSize, _ := wire.U32(data, 0)
	handle := data[4]
	raw := append([]byte(nil), data[5:]...)

	for uint32(len(raw)) < listSize && rc != EndOfFile {
		cont := make([]byte, 0, 3)
		cont = wire.AppendU8(cont, handle)
		cont = wire.AppendU16(cont, MaxReplyBytes)

		data, rc, err = c.roundTrip(ContinueListFiles, cont, EndOfFile)
		if err != nil {
			return nil, err
		}
		if len(data) < 2 && rc != EndOfFile {
			return nil, fmt.Errorf("%w: empty continuation", ErrBadEnvelope)
		}
		if len(data) < 1 {
			break
		}
		handle = data[0]
		raw = append(raw, data[1:]...)
	}

	return parseListing(string(raw))
}

// parseListing splits the brick's newline-separated listing: directories are
// bare names with a trailing slash, files are "md5 hexsize name".
func parseListing(raw string) (*Listing, error) {
	l := &Listing{}
	for _, line := range strings.Split(raw, "\n") {
		if line == "" {
			continue
		}
		if strings.HasSuffix(line, "/") {
			name := strings.TrimSuffix(line, "/")
			if name == "." || name == ".." {
				continue
			}
			l.Dirs = append(l.Dirs, name)
			continue
		}

		parts := strings.SplitN(line, " ", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("system: unparseable listing line %q", line)
		}
		size, err := strconv.ParseUint(parts[1], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("system: bad size in listing line %q: %w", line, err)
		}
		l.Files = append(l.Files, FileInfo{
			MD5:  strings.ToLower(parts[0]),
			Size: uint32(size),
			Name: parts[2],
		})
	}
	return l, nil
}

// UploadFile reads a file off the brick and returns its contents. Upload is
// named from the brick's point of view.
func (c *Client) UploadFile(path string) ([]byte, error) {
	payload := make([]byte, 0, 3+len(path))
	payload = wire.AppendU16(payload, MaxReplyBytes)
	payload = wire.AppendString(payload, path)

	data, rc, err := c.roundTrip(BeginUpload, payload, EndOfFile)
	if err != nil {
		return nil, err
	}
	if len(data) < 5 {
		return nil, fmt.Errorf("%w: upload header %d bytes", ErrBadEnvelope, len(data))
	}
	fileSize, _ := wire.U32(data, 0)
	handle := data[4]
	buf := append([]byte(nil), data[5:]...)

	for uint32(len(buf)) < fileSize && rc != EndOfFile {
		cont := make([]byte, 0, 3)
		cont = wire.AppendU8(cont, handle)
		cont = wire.AppendU16(cont, MaxReplyBytes)

		data, rc, err = c.roundTrip(ContinueUpload, cont, EndOfFile)
		if err != nil {
			return nil, err
		}
		if len(data) < 2 && rc != EndOfFile {
			return nil, fmt.Errorf("%w: empty continuation", ErrBadEnvelope)
		}
		if len(data) < 1 {
			break
		}
		handle = data[0]
		buf = append(buf, data[1:]...)
	}

	if uint32(len(buf)) != fileSize {
		return nil, fmt.Errorf("system: file %s truncated: got %d of %d bytes",
			path, len(buf), fileSize)
	}
	c.log.Info().Str("path", path).Int("bytes", len(buf)).Msg("file read")
	return buf, nil
}

// DownloadFile writes data to a file on the brick, creating missing parent
// directories. Download is named from the brick's point of view.
func (c *Client) DownloadFile(path string, data []byte) error {
	payload := make([]byte, 0, 5+len(path))
	payload = wire.AppendU32(payload, uint32(len(data)))
	payload = wire.AppendString(payload, path)

	reply, _, err := c.roundTrip(BeginDownload, payload)
	if err != nil {
		return err
	}
	if len(reply) < 1 {
		return fmt.Errorf("%w: no download handle", ErrBadEnvelope)
	}
	handle := reply[0]

	// At least one continue always goes out, even for an empty file: the
	// brick closes the handle on the END_OF_FILE ack of the final chunk.
	sent := 0
	for {
		chunk := data[sent:]
		if len(chunk) > MaxTxBytes {
			chunk = chunk[:MaxTxBytes]
		}
		cont := make([]byte, 0, 1+len(chunk))
		cont = wire.AppendU8(cont, handle)
		cont = append(cont, chunk...)

		if _, _, err := c.roundTrip(ContinueDownload, cont, EndOfFile); err != nil {
			return err
		}
		sent += len(chunk)
		if sent >= len(data) {
			break
		}
	}
	c.log.Info().Str("path", path).Int("bytes", len(data)).Msg("file written")
	return nil
}

// CreateDir creates a directory on the brick, parents included.
func (c *Client) CreateDir(path string) error {
	payload := make([]byte, 0, 1+len(path))
	payload = wire.AppendString(payload, path)
	_, _, err := c.roundTrip(CreateDir, payload)
	return err
}

// DeletePath removes a file or an empty directory.
func (c *Client) DeletePath(path string) error {
	payload := make([]byte, 0, 1+len(path))
	payload = wire.AppendString(payload, path)
	_, _, err := c.roundTrip(DeleteFile, payload)
	return err
}

// DeleteDirectory removes a directory tree recursively.
func (c *Client) DeleteDirectory(path string) error {
	l, err := c.ListFiles(path)
	if err != nil {
		return err
	}
	for _, f := range l.Files {
		if err := c.DeletePath(path + "/" + f.Name); err != nil {
			return err
		}
	}
	for _, d := range l.Dirs {
		if err := c.DeleteDirectory(path + "/" + d); err != nil {
			return err
		}
	}
	return c.DeletePath(path)
}
