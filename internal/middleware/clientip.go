// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net"
	"net/http"
	"strings"
)

// UnknownAddress is the sentinel bucket for requests whose client address
// cannot be determined. All such clients share one rate-limit quota.
const UnknownAddress = "unknown"

// ClientAddress extracts the client address from the request for
// rate-limiting purposes. It trusts reverse-proxy headers first:
// X-Real-IP, then the first X-Forwarded-For entry, then RemoteAddr.
func ClientAddress(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return strings.TrimSpace(ip)
	}

	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		// X-Forwarded-For can contain multiple IPs; take the first one
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	if r.RemoteAddr != "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			return host
		}
		return r.RemoteAddr
	}

	return UnknownAddress
}
