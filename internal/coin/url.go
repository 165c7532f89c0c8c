package coin

import (
	"fmt"
	"regexp"
	"strings"
)

// rpcURLPattern matches user:pass@host[:port] daemon URLs, with
// bracketed IPv6 hosts.
var rpcURLPattern = regexp.MustCompile(`^.+@(\[[0-9a-fA-F:]+\]|[^:]+)(:[0-9]+)?`)

// SanitizeRPCURL normalizes a daemon URL: surrounding whitespace and
// trailing slashes are removed, the chain's default RPC port is filled
// in when absent, a missing scheme defaults to http, and the result is
// always terminated with a single slash.
func (p *Profile) SanitizeRPCURL(rawURL string) (string, error) {
	u := strings.TrimSpace(rawURL)
	u = strings.TrimRight(u, "/")
	m := rpcURLPattern.FindStringSubmatch(u)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDaemonURL, rawURL)
	}
	if m[2] == "" {
		u = fmt.Sprintf("%s:%d", u, p.RPCPort)
	}
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "http://" + u
	}
	return u + "/", nil
}
