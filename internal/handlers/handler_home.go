package handlers

import (
	"net/http"

	"github.com/SscSPs/currency_microservices/internal/core/domain"
	"github.com/SscSPs/currency_microservices/internal/dto"
	"github.com/gin-gonic/gin"
)

// getHelloWorld godoc
// @Summary Plain text greeting
// @Tags hello
// @Produce plain
// @Success 200 {string} string "Hello World"
// @Router /hello-world [get]
func getHelloWorld(c *gin.Context) {
	c.String(http.StatusOK, "Hello World")
}

// getHelloWorldBean godoc
// @Summary JSON greeting
// @Tags hello
// @Produce json
// @Success 200 {object} dto.HelloWorldResponse
// @Router /hello-world-bean [get]
func getHelloWorldBean(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HelloWorldResponse{Message: "Hello World"})
}

// registerHelloWorldRoutes registers the greeting routes.
func registerHelloWorldRoutes(rg gin.IRoutes) {
	rg.GET("/hello-world", getHelloWorld)
	rg.GET("/hello-world-bean", getHelloWorldBean)
}

// projectBean keeps only the named JSON fields of a SomeBean.
func projectBean(bean domain.SomeBean, fields ...string) map[string]string {
	all := map[string]string{"field1": bean.Field1, "field2": bean.Field2, "field3": bean.Field3}
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		if v, ok := all[f]; ok {
			out[f] = v
		}
	}
	return out
}

// registerFilteringRoutes registers the dynamic field filtering routes.
func registerFilteringRoutes(rg gin.IRoutes) {
	rg.GET("/filtering", func(c *gin.Context) {
		bean := domain.SomeBean{Field1: "value1", Field2: "value2", Field3: "value3"}
		c.JSON(http.StatusOK, projectBean(bean, "field1", "field3"))
	})
	rg.GET("/filtering-list", func(c *gin.Context) {
		beans := []domain.SomeBean{{Field1: "value4", Field2: "value5", Field3: "value6"}}
		out := make([]map[string]string, len(beans))
		for i, b := range beans {
			out[i] = projectBean(b, "field2", "field3")
		}
		c.JSON(http.StatusOK, out)
	})
}

// registerLimitsRoutes serves the configured limits.
func registerLimitsRoutes(rg gin.IRoutes, limits domain.Limits) {
	rg.GET("/limits", func(c *gin.Context) {
		c.JSON(http.StatusOK, limits)
	})
}
