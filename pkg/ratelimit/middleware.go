package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"tixly/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Middleware enforces the per-IP budgets. Limiter failures fail open: an
// unreachable Redis should not take the API down with it.
func Middleware(rateLimiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := getClientIP(c)
		limitType := getLimitType(c.FullPath())

		result, err := rateLimiter.IsAllowed(c.Request.Context(), clientIP, limitType)
		if err != nil {
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetTime))

		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, response.Envelope{
				Success: false,
				Message: "Rate limit exceeded",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// getLimitType classifies a route into a budget class.
func getLimitType(path string) LimitType {
	switch {
	// Health/monitoring endpoints
	case strings.HasPrefix(path, "/health"),
		strings.HasPrefix(path, "/ping"),
		strings.HasPrefix(path, "/status"):
		return LimitTypeHealth

	// Admin endpoints
	case strings.Contains(path, "/admin"):
		return LimitTypeAdmin

	// Money-moving endpoints get the tightest budget
	case strings.Contains(path, "/orders"),
		strings.Contains(path, "/payments"),
		strings.Contains(path, "/withdrawals"):
		return LimitTypeOrder

	// Public browsing endpoints
	case strings.Contains(path, "/events"),
		strings.Contains(path, "/tickets"),
		strings.Contains(path, "/vendors"),
		strings.Contains(path, "/users"):
		return LimitTypePublic

	default:
		return LimitTypeDefault
	}
}

// getClientIP extracts the real client IP.
func getClientIP(c *gin.Context) string {
	xForwardedFor := c.GetHeader("X-Forwarded-For")
	if xForwardedFor != "" {
		ips := strings.Split(xForwardedFor, ",")
		if len(ips) > 0 {
			ip := strings.TrimSpace(ips[0])
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	xRealIP := c.GetHeader("X-Real-IP")
	if xRealIP != "" {
		if net.ParseIP(xRealIP) != nil {
			return xRealIP
		}
	}

	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}

	return ip
}
