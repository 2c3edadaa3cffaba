package media

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"seehuhn.de/go/icc"
)

// ProfileFetcher opens the bytes of a color profile named by a URI.
// Implementations must be safe for concurrent use.
type ProfileFetcher interface {
	Fetch(uri *url.URL) (io.ReadCloser, error)
}

// ProfileFetcherFunc adapts a function to the ProfileFetcher interface.
type ProfileFetcherFunc func(uri *url.URL) (io.ReadCloser, error)

// Fetch implements ProfileFetcher.
func (f ProfileFetcherFunc) Fetch(uri *url.URL) (io.ReadCloser, error) {
	return f(uri)
}

// maxProfileSize is the largest profile accepted, in bytes.
const maxProfileSize = 32 << 20

// embeddedScheme names profiles compiled into the binary.
const embeddedScheme = "embedded"

// standardProfileURI names the standard sRGB profile.
const standardProfileURI = embeddedScheme + ":sRGB"

var embeddedProfiles = map[string][]byte{
	"sRGB":    icc.SRGBv4Profile,
	"sRGB-v2": icc.SRGBv2Profile,
}

// DefaultFetcher reads local files (plain paths and file:// URIs), remote
// profiles over http(s), and the profiles compiled into the binary
// (embedded:sRGB, embedded:sRGB-v2).
type DefaultFetcher struct {
	// Client is used for http and https URIs. Nil means http.DefaultClient.
	Client *http.Client
}

// Fetch implements ProfileFetcher.
func (f DefaultFetcher) Fetch(uri *url.URL) (io.ReadCloser, error) {
	switch uri.Scheme {
	case "", "file":
		return os.Open(filepath.FromSlash(uri.Path))
	case "http", "https":
		client := f.Client
		if client == nil {
			client = http.DefaultClient
		}
		resp, err := client.Get(uri.String())
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("fetch %s: %s", uri, resp.Status)
		}
		return resp.Body, nil
	case embeddedScheme:
		data, ok := embeddedProfiles[uri.Opaque]
		if !ok {
			return nil, fmt.Errorf("no embedded profile %q", uri.Opaque)
		}
		return io.NopCloser(bytes.NewReader(data)), nil
	}
	return nil, fmt.Errorf("unsupported profile scheme %q", uri.Scheme)
}

type fetcherBox struct{ ProfileFetcher }

var fetcherPtr atomic.Pointer[fetcherBox]

func init() {
	fetcherPtr.Store(&fetcherBox{DefaultFetcher{}})
}

// SetProfileFetcher sets the process-wide profile fetcher.
// Pass nil to restore DefaultFetcher.
//
// SetProfileFetcher is safe for concurrent use. Contexts that are already
// created keep their bytes.
func SetProfileFetcher(f ProfileFetcher) {
	if f == nil {
		f = DefaultFetcher{}
	}
	fetcherPtr.Store(&fetcherBox{f})
	propagateLogger(f, Logger())
	Logger().Debug("profile fetcher replaced", "fetcher", fmt.Sprintf("%T", f))
}

func profileFetcher() ProfileFetcher {
	return fetcherPtr.Load().ProfileFetcher
}

// parseProfileURI parses a profile location. Strings without a scheme, and
// Windows drive paths, are taken as file paths.
func parseProfileURI(s string) (*url.URL, error) {
	if s == "" {
		return nil, ErrNilURI
	}
	if filepath.VolumeName(s) != "" || !strings.Contains(s, ":") {
		return &url.URL{Path: filepath.ToSlash(s)}, nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: profile uri %q: %w", ErrInvalidArgument, s, err)
	}
	return u, nil
}

var errProfileTooLarge = fmt.Errorf("%w: profile larger than %d bytes", ErrMalformedData, maxProfileSize)

// readProfile fetches and reads the profile at uri.
func readProfile(f ProfileFetcher, uri *url.URL) ([]byte, error) {
	if f == nil {
		f = profileFetcher()
	}
	rc, err := f.Fetch(uri)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxProfileSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxProfileSize {
		return nil, errProfileTooLarge
	}
	return data, nil
}

func isProfileTooLarge(err error) bool {
	return errors.Is(err, errProfileTooLarge)
}
