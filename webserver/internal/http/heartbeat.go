package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkglog "github.com/jaconsta/rag-gallery/pkg/log"
)

// NewRouter builds the HTTP surface alongside the gRPC services: a single
// heartbeat endpoint external load balancers can poll (spec §4.8).
func NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(pkglog.L()))

	r.GET("/heartbeat/", heartbeat)

	return r
}

func heartbeat(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
