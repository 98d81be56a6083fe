// Package certs installs the vendor CA bundle as the process-wide TLS
// trust store on boards that ship one.
//
// Installation never fails: a missing or unparseable bundle installs an
// empty trust store, and every later TLS handshake fails at the
// protocol layer instead. The Result value exists so the caller can put
// that degradation into the startup diagnostics rather than discover it
// from a handshake error an hour later.
package certs

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"os"
	"sync"
)

// DefaultBundlePath is where the vendor image places the CA bundle.
const DefaultBundlePath = "/usr/etc/tls/cert.pem"

// Outcome classifies a trust-store installation.
type Outcome int

const (
	// OutcomeInstalled means the bundle parsed and its certificates are
	// now the process trust store.
	OutcomeInstalled Outcome = iota

	// OutcomeNotFound means the bundle file was missing or unreadable.
	// An empty trust store was installed.
	OutcomeNotFound

	// OutcomeParseError means the file was read but contained no
	// parseable certificates. An empty trust store was installed.
	OutcomeParseError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInstalled:
		return "installed"
	case OutcomeNotFound:
		return "not-found"
	case OutcomeParseError:
		return "parse-error"
	default:
		return "unknown"
	}
}

// Result reports what a call to InstallOverride did.
type Result struct {
	Outcome  Outcome
	Path     string
	Certs    int      // certificates installed
	Subjects []string // subject common names, for diagnostics
	Err      error    // underlying read error, nil unless NotFound
}

var (
	mu                sync.Mutex
	overrideConfig    *tls.Config
	originalTransport http.RoundTripper
)

// InstallOverride replaces the process-wide TLS trust store with the
// parsed contents of the PEM bundle at path. The replacement always
// happens, even when the resulting certificate set is empty; the
// Result says which of the three outcomes occurred. Call before any
// network connection is established.
func InstallOverride(path string) Result {
	res := Result{Path: path}
	pool := x509.NewCertPool()

	data, err := os.ReadFile(path)
	if err != nil {
		res.Outcome = OutcomeNotFound
		res.Err = err
		install(pool)
		return res
	}

	for len(data) > 0 {
		var block *pem.Block
		block, data = pem.Decode(data)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			continue
		}
		pool.AddCert(cert)
		res.Certs++
		res.Subjects = append(res.Subjects, cert.Subject.CommonName)
	}

	if res.Certs == 0 {
		res.Outcome = OutcomeParseError
	} else {
		res.Outcome = OutcomeInstalled
	}
	install(pool)
	return res
}

// install makes pool the trust store for the default HTTP transport and
// for clients built from Default.
func install(pool *x509.CertPool) {
	mu.Lock()
	defer mu.Unlock()

	overrideConfig = &tls.Config{
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	}

	if tr, ok := http.DefaultTransport.(*http.Transport); ok {
		if originalTransport == nil {
			originalTransport = tr
		}
		cloned := tr.Clone()
		cloned.TLSClientConfig = overrideConfig.Clone()
		http.DefaultTransport = cloned
	}
}

// Default returns a copy of the installed override TLS configuration,
// or nil when no override is active (platform defaults apply). Dialers
// outside net/http should build from this.
func Default() *tls.Config {
	mu.Lock()
	defer mu.Unlock()
	if overrideConfig == nil {
		return nil
	}
	return overrideConfig.Clone()
}

// Reset removes the override and restores the platform default
// transport. Intended for tests and bench tooling.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	overrideConfig = nil
	if originalTransport != nil {
		http.DefaultTransport = originalTransport
		originalTransport = nil
	}
}
