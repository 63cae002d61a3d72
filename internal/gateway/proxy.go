package gateway

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/SscSPs/currency_microservices/internal/core/domain"
	"github.com/SscSPs/currency_microservices/internal/dto"
	"github.com/SscSPs/currency_microservices/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Proxy forwards requests to the target of the first matching route.
type Proxy struct {
	table     *RouteTable
	registry  *Registry
	transport http.RoundTripper
}

// NewProxy creates a Proxy. transport may be nil to use http.DefaultTransport.
func NewProxy(table *RouteTable, registry *Registry, transport http.RoundTripper) *Proxy {
	return &Proxy{table: table, registry: registry, transport: transport}
}

// Handle is meant to be installed as the engine's NoRoute handler so that every path the
// gateway does not serve itself goes through the route table.
func (p *Proxy) Handle(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	path := c.Request.URL.Path

	route, ok := p.table.Resolve(path)
	if !ok {
		logger.Debug("No route matched", slog.String("path", path))
		c.JSON(http.StatusNotFound, dto.NewErrorDetails("no route matches "+path, path))
		return
	}

	target, err := p.target(route)
	if err != nil {
		logger.Warn("Route target unavailable", slog.String("route", route.ID), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, dto.NewErrorDetails(err.Error(), path))
		return
	}

	logger.Debug("Forwarding request", slog.String("route", route.ID), slog.String("target", target.String()))
	requestID := c.Writer.Header().Get(middleware.RequestIDHeader)

	rp := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
			if requestID != "" {
				pr.Out.Header.Set(middleware.RequestIDHeader, requestID)
			}
			applyFilters(route, pr.Out)
		},
		Transport: p.transport,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Error("Upstream request failed", slog.String("route", route.ID), slog.String("target", target.String()), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusBadGateway, dto.NewErrorDetails("upstream request failed", path))
		},
	}
	rp.ServeHTTP(c.Writer, c.Request)
}

func (p *Proxy) target(route domain.Route) (*url.URL, error) {
	if route.IsLoadBalanced() {
		return p.registry.Pick(route.TargetServiceName())
	}
	return parseTarget(route.TargetURI)
}

// applyFilters sets the route's static headers, replacing inbound values, and appends its
// static query parameters after the client's query, which is left untouched.
func applyFilters(route domain.Route, out *http.Request) {
	for name, value := range route.StaticHeaders {
		out.Header.Set(name, value)
	}
	if len(route.StaticParams) == 0 {
		return
	}
	params := make(url.Values, len(route.StaticParams))
	for name, value := range route.StaticParams {
		params.Set(name, value)
	}
	if out.URL.RawQuery == "" {
		out.URL.RawQuery = params.Encode()
		return
	}
	out.URL.RawQuery += "&" + params.Encode()
}
