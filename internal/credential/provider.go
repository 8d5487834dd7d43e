// Package credential owns the FRED API key lifecycle: lazy lookup from the
// environment on first use, memoized for the remainder of the process.
package credential

import (
	"errors"
	"os"
	"sync"
)

// EnvAPIKey is the environment variable supplying the FRED API key.
const EnvAPIKey = "FRED_API_KEY"

// ErrNotConfigured indicates no API key is available. Every tool call fails
// with the same fixed message until the environment is corrected; there is
// no per-call recovery.
var ErrNotConfigured = errors.New("FRED_API_KEY environment variable not set")

// Provider resolves the API key exactly once, on first use, and serves the
// memoized value afterwards. The key is read-only after resolution, so
// concurrent tool calls share it without contention.
type Provider struct {
	once   sync.Once
	key    string
	lookup func() string
}

// NewEnvProvider returns a Provider backed by the FRED_API_KEY environment
// variable. The variable is not read until the first Get call: a server can
// start without a key and only report the problem when a tool is invoked.
func NewEnvProvider() *Provider {
	return &Provider{
		lookup: func() string { return os.Getenv(EnvAPIKey) },
	}
}

// Static returns a Provider that always yields the given key. Used by tests
// and by callers that already resolved the credential elsewhere.
func Static(key string) *Provider {
	return &Provider{
		lookup: func() string { return key },
	}
}

// Get returns the memoized API key, resolving it on first call. An empty
// key resolves to ErrNotConfigured, permanently for this Provider.
func (p *Provider) Get() (string, error) {
	p.once.Do(func() {
		p.key = p.lookup()
	})
	if p.key == "" {
		return "", ErrNotConfigured
	}
	return p.key, nil
}
