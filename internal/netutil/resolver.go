// Package netutil provides the DNS lookup used when deciding a node's
// network address.
package netutil

import (
	"context"
	"net"
)

// Resolver answers forward lookups of node hostnames. A miss is an
// expected condition for a node that has never been launched, so it is
// reported as ok=false rather than an error.
type Resolver interface {
	// LookupIPv4 returns the first IPv4 address for hostname.
	LookupIPv4(ctx context.Context, hostname string) (string, bool)
}

type systemResolver struct {
	r *net.Resolver
}

// SystemResolver returns a Resolver backed by the host's DNS
// configuration.
func SystemResolver() Resolver {
	return &systemResolver{r: net.DefaultResolver}
}

func (s *systemResolver) LookupIPv4(ctx context.Context, hostname string) (string, bool) {
	ips, err := s.r.LookupIP(ctx, "ip4", hostname)
	if err != nil || len(ips) == 0 {
		return "", false
	}
	return ips[0].String(), true
}

// StaticResolver resolves from a fixed hostname-to-address map. Used in
// tests and in deployments where node addresses are pinned in a file
// rather than DNS.
type StaticResolver map[string]string

// LookupIPv4 implements Resolver.
func (s StaticResolver) LookupIPv4(_ context.Context, hostname string) (string, bool) {
	ip, ok := s[hostname]
	return ip, ok
}
