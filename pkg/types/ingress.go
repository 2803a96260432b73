package types

import "time"

// PathType is the matching mode for an IngressPath.
type PathType string

const (
	PathTypeExact  PathType = "exact"
	PathTypePrefix PathType = "prefix"
)

// Ingress is a host/path routing document the orchestrator's ingress
// collaborator applies in front of Surge-managed Services.
type Ingress struct {
	ID        string
	Name      string
	Rules     []*IngressRule
	TLS       *IngressTLS
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IngressRule matches a single Host to one or more IngressPaths.
type IngressRule struct {
	Host  string
	Paths []*IngressPath
}

// IngressPath is one routable path within an IngressRule, with optional
// per-path middleware configuration.
type IngressPath struct {
	Path          string
	PathType      PathType
	Backend       *IngressBackend
	RateLimit     *RateLimit
	AccessControl *AccessControl
	Headers       *HeaderManipulation
	Rewrite       *PathRewrite
}

// IngressBackend names the Service (and port) a matched request is
// forwarded to; the load balancer resolves ServiceName to live Capsules.
type IngressBackend struct {
	ServiceName string
	Port        int
}

// IngressTLS configures HTTPS termination for the hosts covered by an
// Ingress, optionally via ACME auto-issuance.
type IngressTLS struct {
	Hosts   []string
	AutoSSL bool
}

// RateLimit enforces a per-client-IP token bucket on a path.
type RateLimit struct {
	RequestsPerSecond float64
	Burst             int
}

// AccessControl allow/deny-lists client IPs or CIDRs on a path.
type AccessControl struct {
	AllowedIPs []string
	DeniedIPs  []string
}

// HeaderManipulation adds, overwrites, or strips headers on the proxied
// request.
type HeaderManipulation struct {
	Add    map[string]string
	Set    map[string]string
	Remove []string
}

// PathRewrite rewrites the forwarded request path.
type PathRewrite struct {
	StripPrefix string
	ReplacePath string
}

// TLSCertificate is a stored certificate/key pair, either user-supplied or
// ACME-issued, keyed by the hosts it covers.
type TLSCertificate struct {
	ID        string
	Name      string
	Hosts     []string
	CertPEM   []byte
	KeyPEM    []byte
	Issuer    string
	NotBefore time.Time
	NotAfter  time.Time
	AutoRenew bool
	Labels    map[string]string
	CreatedAt time.Time
	UpdatedAt time.Time
}
