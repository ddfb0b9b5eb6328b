package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	corsAllowMethods = "GET, POST, PUT, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization"
	corsMaxAge       = "600"
)

// corsMiddleware answers preflight requests and sets CORS headers for
// allowed origins. An empty list or "*" allows every origin.
func (h *Handler) corsMiddleware(c *gin.Context) {
	origin := c.GetHeader("Origin")
	if origin != "" {
		if allowed, ok := h.allowOrigin(origin); ok {
			hdr := c.Writer.Header()
			hdr.Set("Access-Control-Allow-Origin", allowed)
			hdr.Set("Access-Control-Allow-Methods", corsAllowMethods)
			hdr.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			hdr.Set("Access-Control-Max-Age", corsMaxAge)
			if allowed != "*" {
				hdr.Add("Vary", "Origin")
			}
		}
	}

	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}

func (h *Handler) allowOrigin(origin string) (string, bool) {
	if len(h.origins) == 0 {
		return "*", true
	}
	for _, o := range h.origins {
		if o == "*" {
			return "*", true
		}
		if o == origin {
			return origin, true
		}
	}
	return "", false
}

// requestLogger logs one line per request once the handler chain is done.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	if h.log == nil {
		return
	}
	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"client_ip", c.ClientIP())
}
