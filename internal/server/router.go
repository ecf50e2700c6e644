// Package server exposes the compressor over HTTP.
package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chronos-tachyon/hufftree"
)

type Dependencies struct {
	CodecHandler *CodecHandler
	Logger       hufftree.Logger
}

// New returns an engine with recovery, request logging and every route
// registered.
func New(d Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if d.Logger != nil {
		r.Use(requestLogger(d.Logger))
	}
	Register(r, d)
	return r
}

func Register(r *gin.Engine, d Dependencies) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/compress", d.CodecHandler.Compress)
		v1.POST("/decompress", d.CodecHandler.Decompress)
	}
}

func requestLogger(l hufftree.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		if status >= 500 {
			l.Errorf("%s %s %d %v", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
			return
		}
		l.Infof("%s %s %d %v", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
	}
}
