package clientip

import (
	"errors"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// ErrInvalidProxy is returned for a trusted proxy entry that is neither an
// address nor a CIDR prefix.
var ErrInvalidProxy = errors.New("clientip.invalid_proxy")

// ForwardingHeaders lists the single value proxy headers consulted for a
// trusted peer, highest priority first. X-Forwarded-For is handled separately
// because it carries a comma separated chain.
var ForwardingHeaders = []string{
	"CF-Connecting-IP",
	"X-Real-IP",
}

// Resolver finds the originating client address of a request. Forwarding
// headers are honored only when the TCP peer is one of the trusted proxies;
// otherwise the peer itself is the client.
type Resolver struct {
	trusted []netip.Prefix
}

// New returns a Resolver trusting the given proxy networks. With no prefixes
// every request resolves to its TCP peer.
func New(trusted ...netip.Prefix) *Resolver {
	return &Resolver{trusted: trusted}
}

// NewFromConfig parses cfg.TrustedProxies into a Resolver.
func NewFromConfig(cfg Config) (*Resolver, error) {
	prefixes, err := ParsePrefixes(cfg.TrustedProxies)
	if err != nil {
		return nil, err
	}
	return New(prefixes...), nil
}

// ParsePrefixes accepts CIDR prefixes and bare addresses.
func ParsePrefixes(list []string) ([]netip.Prefix, error) {
	out := make([]netip.Prefix, 0, len(list))
	for _, s := range list {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if p, err := netip.ParsePrefix(s); err == nil {
			out = append(out, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(s)
		if err != nil {
			return nil, errors.Join(ErrInvalidProxy, err)
		}
		addr = addr.Unmap()
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}

var defaultResolver = New()

// GetIP resolves r with no trusted proxies, which is always the TCP peer.
func GetIP(r *http.Request) string {
	return defaultResolver.IP(r)
}

// IP returns the client address of r in canonical form, or an empty string
// when nothing usable is found.
//
// For a trusted peer the order is ForwardingHeaders, then X-Forwarded-For
// walked from the right, skipping trusted hops. Any other peer is returned
// as is.
func (res *Resolver) IP(r *http.Request) string {
	peer, ok := peerAddr(r.RemoteAddr)
	if !ok {
		return ""
	}
	if !res.isTrusted(peer) {
		return peer.String()
	}

	for _, h := range ForwardingHeaders {
		if addr, ok := parseAddr(r.Header.Get(h)); ok {
			return addr.String()
		}
	}

	if forwarded := r.Header.Values("X-Forwarded-For"); len(forwarded) > 0 {
		hops := strings.Split(strings.Join(forwarded, ","), ",")
		for i := len(hops) - 1; i >= 0; i-- {
			addr, ok := parseAddr(hops[i])
			if !ok {
				// The chain is broken below this hop; nothing left of it can be trusted.
				break
			}
			if !res.isTrusted(addr) {
				return addr.String()
			}
		}
	}

	return peer.String()
}

func (res *Resolver) isTrusted(addr netip.Addr) bool {
	for _, p := range res.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

func peerAddr(remote string) (netip.Addr, bool) {
	host, _, err := net.SplitHostPort(remote)
	if err != nil {
		return parseAddr(remote)
	}
	return parseAddr(host)
}

func parseAddr(s string) (netip.Addr, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return netip.Addr{}, false
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, false
	}
	// IPv4-mapped IPv6 addresses are reported as plain IPv4; zones are dropped.
	return addr.Unmap().WithZone(""), true
}
