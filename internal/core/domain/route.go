package domain

import "strings"

// LoadBalancedScheme prefixes target URIs that name a service instead of a host.
const LoadBalancedScheme = "lb://"

// Route maps an inbound path pattern to a downstream target.
type Route struct {
	ID            string            `json:"id"`
	PathPattern   string            `json:"pathPattern"`
	TargetURI     string            `json:"targetUri"`
	StaticHeaders map[string]string `json:"staticHeaders,omitempty"`
	StaticParams  map[string]string `json:"staticParams,omitempty"`
}

// IsLoadBalanced reports whether the target is resolved through the service registry.
func (r Route) IsLoadBalanced() bool {
	return strings.HasPrefix(r.TargetURI, LoadBalancedScheme)
}

// TargetServiceName returns the service name of an lb:// target, or "" for a fixed URL.
func (r Route) TargetServiceName() string {
	if !r.IsLoadBalanced() {
		return ""
	}
	return strings.TrimPrefix(r.TargetURI, LoadBalancedScheme)
}

// Matches reports whether path satisfies the route's pattern.
// Patterns ending in "/**" match the prefix itself and everything below it; others match exactly.
func (r Route) Matches(path string) bool {
	if prefix, ok := strings.CutSuffix(r.PathPattern, "/**"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return path == r.PathPattern
}
