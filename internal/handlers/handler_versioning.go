package handlers

import (
	"net/http"
	"strings"

	"github.com/SscSPs/currency_microservices/internal/apperrors"
	portssvc "github.com/SscSPs/currency_microservices/internal/core/ports/services"
	"github.com/SscSPs/currency_microservices/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Version discriminators for the person resource.
const (
	versionHeader      = "X-API-VERSION"
	versionQueryParam  = "version"
	versionMediaPrefix = "application/vnd.company.app-v"
	versionMediaSuffix = "+json"
	defaultVersion     = "1"
)

type versioningHandler struct {
	versioningService portssvc.VersioningSvc
}

// registerVersioningRoutes exposes the same resource under each versioning strategy.
func registerVersioningRoutes(rg gin.IRoutes, versioningService portssvc.VersioningSvc) {
	h := &versioningHandler{versioningService: versioningService}

	// URI path
	rg.GET("/v1/person", h.fixed("1"))
	rg.GET("/v2/person", h.fixed("2"))
	// Request parameter
	rg.GET("/person", h.byParam)
	// Custom header
	rg.GET("/person/header", h.byHeader)
	// Media type
	rg.GET("/person/accept", h.byMediaType)
	// All discriminators at once
	rg.GET("/person/negotiated", h.negotiated)
}

func (h *versioningHandler) respond(c *gin.Context, version string) {
	body, err := h.versioningService.Resolve(version)
	if err != nil {
		respondError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err, "Failed to resolve version")
		return
	}
	c.JSON(http.StatusOK, body)
}

func (h *versioningHandler) fixed(version string) gin.HandlerFunc {
	return func(c *gin.Context) { h.respond(c, version) }
}

func (h *versioningHandler) missing(c *gin.Context, what string) {
	respondError(c, middleware.GetLoggerFromCtx(c.Request.Context()),
		apperrors.NewValidationError("missing version "+what), "Missing version discriminator")
}

// byParam godoc
// @Summary Person, versioned by request parameter
// @Tags versioning
// @Produce json
// @Param version query string true "1 or 2"
// @Success 200 {object} domain.PersonV1
// @Failure 400 {object} dto.ErrorDetails
// @Router /person [get]
func (h *versioningHandler) byParam(c *gin.Context) {
	version, ok := c.GetQuery(versionQueryParam)
	if !ok {
		h.missing(c, "parameter")
		return
	}
	h.respond(c, version)
}

// byHeader godoc
// @Summary Person, versioned by custom header
// @Tags versioning
// @Produce json
// @Param X-API-VERSION header string true "1 or 2"
// @Success 200 {object} domain.PersonV1
// @Failure 400 {object} dto.ErrorDetails
// @Router /person/header [get]
func (h *versioningHandler) byHeader(c *gin.Context) {
	version := c.GetHeader(versionHeader)
	if version == "" {
		h.missing(c, "header")
		return
	}
	h.respond(c, version)
}

// byMediaType godoc
// @Summary Person, versioned by Accept media type
// @Tags versioning
// @Produce json
// @Param Accept header string true "application/vnd.company.app-v1+json or application/vnd.company.app-v2+json"
// @Success 200 {object} domain.PersonV1
// @Failure 400 {object} dto.ErrorDetails
// @Router /person/accept [get]
func (h *versioningHandler) byMediaType(c *gin.Context) {
	version, ok := versionFromAccept(c.GetHeader("Accept"))
	if !ok {
		h.missing(c, "media type")
		return
	}
	h.respond(c, version)
}

// negotiated godoc
// @Summary Person, versioned by whichever discriminator is present
// @Description Header wins over parameter, parameter over media type. With none present v1 is served.
// @Tags versioning
// @Produce json
// @Success 200 {object} domain.PersonV1
// @Failure 400 {object} dto.ErrorDetails
// @Router /person/negotiated [get]
func (h *versioningHandler) negotiated(c *gin.Context) {
	h.respond(c, negotiateVersion(c))
}

func negotiateVersion(c *gin.Context) string {
	if v := c.GetHeader(versionHeader); v != "" {
		return v
	}
	if v, ok := c.GetQuery(versionQueryParam); ok {
		return v
	}
	if v, ok := versionFromAccept(c.GetHeader("Accept")); ok {
		return v
	}
	return defaultVersion
}

// versionFromAccept finds the first vendor media type in an Accept header and returns its version.
func versionFromAccept(accept string) (string, bool) {
	for _, part := range strings.Split(accept, ",") {
		mediaType, _, _ := strings.Cut(part, ";")
		mediaType = strings.ToLower(strings.TrimSpace(mediaType))
		rest, ok := strings.CutPrefix(mediaType, versionMediaPrefix)
		if !ok {
			continue
		}
		if version, ok := strings.CutSuffix(rest, versionMediaSuffix); ok && version != "" {
			return version, true
		}
	}
	return "", false
}
