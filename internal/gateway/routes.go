// Package gateway is the routing front door: an ordered route table, a registry that
// load-balances lb:// targets and a reverse proxy that ties them together.
package gateway

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/SscSPs/currency_microservices/internal/core/domain"
)

// DefaultRoutes returns the built-in table, in match order.
func DefaultRoutes() []domain.Route {
	return []domain.Route{
		{
			ID:            "get",
			PathPattern:   "/get",
			TargetURI:     "http://httpbin.org:80",
			StaticHeaders: map[string]string{"MyHeader": "MyURI"},
			StaticParams:  map[string]string{"Param": "MyValue"},
		},
		{ID: "currency-exchange", PathPattern: "/exchange/**", TargetURI: "lb://currency-exchange"},
		{ID: "currency-conversion", PathPattern: "/convert/**", TargetURI: "lb://currency-conversion"},
		{ID: "currency-conversion-alt", PathPattern: "/convert-alt/**", TargetURI: "lb://currency-conversion"},
	}
}

// RouteTable is an immutable, ordered list of routes. The first matching route wins.
type RouteTable struct {
	routes []domain.Route
}

// NewRouteTable validates routes and fixes their order.
func NewRouteTable(routes []domain.Route) (*RouteTable, error) {
	table := &RouteTable{routes: make([]domain.Route, 0, len(routes))}
	for i, r := range routes {
		if !strings.HasPrefix(r.PathPattern, "/") {
			return nil, fmt.Errorf("route %d (%s): path pattern %q must start with /", i, r.ID, r.PathPattern)
		}
		if r.IsLoadBalanced() {
			if r.TargetServiceName() == "" {
				return nil, fmt.Errorf("route %d (%s): %q names no service", i, r.ID, r.TargetURI)
			}
		} else if _, err := parseTarget(r.TargetURI); err != nil {
			return nil, fmt.Errorf("route %d (%s): %w", i, r.ID, err)
		}
		table.routes = append(table.routes, r)
	}
	return table, nil
}

// Resolve returns the first route whose pattern matches path.
func (t *RouteTable) Resolve(path string) (domain.Route, bool) {
	for _, r := range t.routes {
		if r.Matches(path) {
			return r, true
		}
	}
	return domain.Route{}, false
}

// Routes returns a copy of the table in match order.
func (t *RouteTable) Routes() []domain.Route {
	out := make([]domain.Route, len(t.routes))
	copy(out, t.routes)
	return out
}

func parseTarget(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid target %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid target %q: want scheme://host", raw)
	}
	return u, nil
}
