package server

import (
	"log/slog"
	"time"

	"github.com/alkime/recap/internal/config"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// securityConfig builds the response header policy for the JSON API. HSTS is only
// sent in production, where the server sits behind TLS.
func securityConfig(cfg *config.Config) secure.Config {
	var sts int64
	if cfg.IsProduction() {
		sts = int64(cfg.HSTSMaxAge)
	}

	return secure.Config{
		STSSeconds:            sts,
		STSIncludeSubdomains:  true,
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: config.BuildCSP(cfg.CSPMode),
	}
}

func useSecurityHeaders(router *gin.Engine, cfg *config.Config, logger *slog.Logger) {
	router.Use(secure.New(securityConfig(cfg)))

	logger.Debug("Security headers enabled",
		"hsts", cfg.IsProduction(),
		"csp_mode", cfg.CSPMode,
	)
}

// requestLogger logs one line per request through slog.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Debug("Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
