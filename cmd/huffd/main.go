// Command huffd serves the compressor over HTTP.  See internal/config for
// the environment variables it reads.
package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/chronos-tachyon/hufftree"
	"github.com/chronos-tachyon/hufftree/internal/config"
	"github.com/chronos-tachyon/hufftree/internal/logger"
	"github.com/chronos-tachyon/hufftree/internal/server"
)

func main() {
	cfg, warnings := config.Load()
	logg := logger.New(os.Stderr, cfg.Quiet)
	for _, w := range warnings {
		logg.Errorf("config: %s", w)
	}

	gin.SetMode(gin.ReleaseMode)
	codecH := server.NewCodecHandler(hufftree.Processor{Logger: logg}, cfg.MaxBodyBytes)
	r := server.New(server.Dependencies{
		CodecHandler: codecH,
		Logger:       logg,
	})

	logg.Infof("starting server at %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		logg.Errorf("server: %v", err)
		os.Exit(1)
	}
}
