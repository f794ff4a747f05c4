package system

import (
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/spf13/afero"
)

// System is the operating-system surface the shell commands run against.
// Every field can be replaced in tests.
type System struct {
	Fs       afero.Fs
	Clock    func() time.Time
	Getwd    func() (string, error)
	Hostname func() (string, error)
	LookupIP func(host string) ([]net.IP, error)
	Clear    func() error
}

// New returns a System backed by the real OS. Terminal clearing writes to out.
func New(out io.Writer) *System {
	return &System{
		Fs:       afero.NewOsFs(),
		Clock:    time.Now,
		Getwd:    os.Getwd,
		Hostname: os.Hostname,
		LookupIP: net.LookupIP,
		Clear:    func() error { return ClearScreen(out) },
	}
}

func (s *System) Now() time.Time {
	return s.Clock()
}

// HostIP resolves the host name to an address, preferring IPv4.
func (s *System) HostIP() (string, error) {
	host, err := s.Hostname()
	if err != nil {
		return "", fmt.Errorf("failed to get hostname: %w", err)
	}

	ips, err := s.LookupIP(host)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", host, err)
	}
	if len(ips) == 0 {
		return "", fmt.Errorf("no address found for %s", host)
	}

	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			return v4.String(), nil
		}
	}
	return ips[0].String(), nil
}
