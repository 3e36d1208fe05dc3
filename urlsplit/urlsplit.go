// Package urlsplit decomposes URLs of the form scheme://host[:port][/path][#fragment]
// into their components. This is by no means a validating parser: it only finds the
// structural separators, leaving everything in between as-is.
package urlsplit

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/indigo-web/strutils/config"
	strerrors "github.com/indigo-web/strutils/errors"
	"github.com/indigo-web/strutils/internal/address"
	"github.com/indigo-web/strutils/internal/strutil"
)

const schemeSeparator = "://"

// Info is a split URL. Fields are substrings of the input (except the scheme, which is
// copied whenever it must be lowercased), so the input is never modified.
type Info struct {
	// Scheme is always ASCII-lowercased.
	Scheme string `json:"scheme"`
	// Host preserves its original case.
	Host string `json:"host"`
	// Port is either explicit or defaulted by the scheme. 0 means that neither
	// was known.
	Port uint16 `json:"port"`
	// Path is "/" if no path was presented. Fragment is never included.
	Path string `json:"path"`
}

// Authority returns host and port, omitting the port if it's the well-known default one
// for the scheme (see config.Default). Use Splitter.Authority for custom defaults.
func (i Info) Authority() string {
	return defaultSplitter.Authority(i)
}

// String reconstructs the URL. The result is not necessarily equal to the input: the
// scheme is lowercased, a default port and the fragment are dropped and an empty path
// becomes "/". Like Authority, it relies on the well-known default ports only; use
// Splitter.String for custom defaults.
func (i Info) String() string {
	return i.Scheme + schemeSeparator + i.Authority() + i.Path
}

var defaultSplitter = NewSplitter(config.Default().URL)

// Split splits the URL using the default config.
func Split(url string) (Info, error) {
	return defaultSplitter.Split(url)
}

// Splitter splits URLs, resolving missing ports by the configured defaults. It's safe
// for concurrent use.
type Splitter struct {
	defaultPorts map[string]uint16
}

func NewSplitter(cfg config.URL) Splitter {
	ports := make(map[string]uint16, len(cfg.DefaultPorts))
	for scheme, port := range cfg.DefaultPorts {
		ports[strutil.LowerASCII(scheme)] = port
	}

	return Splitter{defaultPorts: ports}
}

// DefaultPort returns the port assumed for the scheme, or 0 if it's unknown. The scheme
// must be lowercased.
func (s Splitter) DefaultPort(scheme string) uint16 {
	return s.defaultPorts[scheme]
}

// Authority is Info.Authority, but with the splitter's default ports.
func (s Splitter) Authority(info Info) string {
	return address.Join(info.Host, info.Port, s.DefaultPort(info.Scheme))
}

// String is Info.String, but with the splitter's default ports.
func (s Splitter) String(info Info) string {
	return info.Scheme + schemeSeparator + s.Authority(info) + info.Path
}

// Split decomposes the URL. The only failure is a missing "://" separator, reported as
// errors.ErrInvalidURL. Port is parsed permissively: anything that isn't a leading run
// of decimal digits fitting into uint16 results in the scheme's default port.
func (s Splitter) Split(url string) (Info, error) {
	scheme, rest, found := strings.Cut(url, schemeSeparator)
	if !found {
		return Info{}, errors.Wrapf(strerrors.ErrInvalidURL, "split %q", url)
	}

	info := Info{
		Scheme: strutil.LowerASCII(scheme),
		Path:   "/",
	}

	authority, path, found := strutil.CutFrom(rest, '/')
	if found {
		info.Path, _, _ = strutil.Cut(path, '#')
	}

	// a fragment may also follow the authority directly
	authority, _, _ = strutil.Cut(authority, '#')

	host, port, found := strutil.Cut(authority, ':')
	info.Host = host
	if found {
		info.Port = strutil.ParsePort(port)
	}

	if info.Port == 0 {
		info.Port = s.DefaultPort(info.Scheme)
	}

	return info, nil
}
