package middleware

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/xy-planning-network/cairn"
)

const unknownIP = "0.0.0.0"

// non-public ranges, on top of those netip.Addr.IsPrivate reports
var reservedPrefixes = []netip.Prefix{
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("198.18.0.0/15"),
}

// InjectIPAddress promotes the client IP address of the *http.Request
// to *http.Request.Context under cairn.IpAddrKey.
func InjectIPAddress() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), cairn.IpAddrKey, GetIPAddress(r))
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}

// GetIPAddress returns the client IP address of r.
//
// GetIPAddress walks "X-Forwarded-For" and then "X-Real-Ip" from right to left,
// returning the first public address, the one right before our proxy.
// Otherwise, the host of r.RemoteAddr returns when it is public, else 0.0.0.0.
func GetIPAddress(r *http.Request) string {
	for _, h := range []string{"X-Forwarded-For", "X-Real-Ip"} {
		addresses := strings.Split(r.Header.Get(h), ",")
		for i := len(addresses) - 1; i >= 0; i-- {
			if ip, ok := publicAddr(addresses[i]); ok {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if ip, ok := publicAddr(host); ok {
		return ip
	}

	return unknownIP
}

func publicAddr(raw string) (string, bool) {
	addr, err := netip.ParseAddr(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}

	addr = addr.Unmap()
	if !addr.IsGlobalUnicast() || addr.IsPrivate() {
		return "", false
	}

	for _, p := range reservedPrefixes {
		if p.Contains(addr) {
			return "", false
		}
	}

	return addr.String(), true
}
