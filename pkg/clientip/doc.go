// Package clientip resolves the originating client address of an HTTP
// request behind reverse proxies.
//
// Proxy headers are attacker controlled unless the request came through a
// proxy you run, so a Resolver only reads CF-Connecting-IP, X-Real-IP and
// X-Forwarded-For when the TCP peer is in its trusted set (TRUSTED_PROXIES,
// comma separated addresses or CIDR prefixes). Without trusted proxies the
// client is the TCP peer.
//
// The address is captured with each new session for informational purposes
// and used as the key for per-client rate limiting. Resolution never fails;
// an empty string means no valid address was found.
package clientip
