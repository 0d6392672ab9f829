// Package entropy supplies the random bytes used to build random integers.
//
// A source is any io.Reader. Fill turns every failure, including a short
// read, into an error wrapping ErrUnavailable; there is no fallback source.
package entropy

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/sha3"
)

// ErrUnavailable is wrapped by every error returned from Fill and Open.
var ErrUnavailable = errors.New("entropy: source unavailable")

// DefaultDevice is read by Device when its Path is empty.
const DefaultDevice = "/dev/urandom"

// System is the operating system's CSPRNG.
var System io.Reader = rand.Reader

// Fill fills buf completely from source.
func Fill(source io.Reader, buf []byte) error {
	if source == nil {
		return fmt.Errorf("%w: nil source", ErrUnavailable)
	}
	n, err := io.ReadFull(source, buf)
	if err != nil {
		return fmt.Errorf("%w: read %d of %d bytes: %w", ErrUnavailable, n, len(buf), err)
	}
	return nil
}

// Device reads from a character device such as /dev/urandom. The device is
// opened for each Read and closed before Read returns.
type Device struct {
	Path string
}

func (d Device) Read(p []byte) (n int, err error) {
	path := d.Path
	if path == "" {
		path = DefaultDevice
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return io.ReadFull(f, p)
}

// NewShake returns an endless deterministic stream: the SHAKE256 output for
// seed. Equal seeds give equal streams, which makes it useful for
// reproducible runs and tests. It is not a substitute for System when
// generating secrets.
func NewShake(seed []byte) io.Reader {
	h := sha3.NewShake256()
	_, _ = h.Write(seed)
	return h
}

// Config names a source. It is what the command line flags map onto.
type Config struct {
	Name   string // system|device|shake
	Seed   string // shake only
	Device string // device only; DefaultDevice if empty
}

// Open resolves cfg to a source. An empty name means System.
func Open(cfg Config) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Name)) {
	case "", "system":
		return System, nil
	case "device":
		return Device{Path: cfg.Device}, nil
	case "shake":
		if cfg.Seed == "" {
			return nil, fmt.Errorf("%w: shake source needs a seed", ErrUnavailable)
		}
		return NewShake([]byte(cfg.Seed)), nil
	default:
		return nil, fmt.Errorf("%w: unknown source %q", ErrUnavailable, cfg.Name)
	}
}
