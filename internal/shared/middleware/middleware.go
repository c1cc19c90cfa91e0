package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"tixly/internal/shared/apperror"
	"tixly/internal/shared/auth"
	"tixly/internal/shared/config"
	"tixly/internal/shared/utils/response"
)

const actorKey = "actor"

// Identify resolves the request actor and stores it in the gin context.
// Identity comes from an optional Bearer token; the legacy vendor_id and
// is_admin request parameters take precedence when present, so untokenized
// vendor dashboards keep working.
func Identify(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := actorFromToken(c, cfg)

		if raw := c.Query("vendor_id"); raw != "" {
			if vendorID, err := uuid.Parse(raw); err == nil {
				actor.VendorID = vendorID
			}
		}
		if raw := c.Query("user_id"); raw != "" {
			if userID, err := uuid.Parse(raw); err == nil {
				actor.UserID = userID
			}
		}
		if c.Query("is_admin") == "true" {
			actor.Admin = true
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// ActorFrom returns the actor resolved by Identify. A missing entry yields
// the zero (anonymous) actor.
func ActorFrom(c *gin.Context) auth.Actor {
	if value, exists := c.Get(actorKey); exists {
		if actor, ok := value.(auth.Actor); ok {
			return actor
		}
	}
	return auth.Actor{}
}

// RequireAdmin rejects requests whose actor lacks admin rights.
func RequireAdmin(authz auth.Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authz.IsAdmin(ActorFrom(c)) {
			response.Error(c, apperror.Authorization("admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// actorFromToken parses an optional Bearer token. Invalid or absent tokens
// fall through to an anonymous actor; the request is not rejected here.
func actorFromToken(c *gin.Context, cfg *config.Config) auth.Actor {
	var actor auth.Actor

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return actor
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return actor
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return actor
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return actor
	}

	if raw, ok := claims["user_id"].(string); ok {
		if userID, err := uuid.Parse(raw); err == nil {
			actor.UserID = userID
		}
	}
	if raw, ok := claims["vendor_id"].(string); ok {
		if vendorID, err := uuid.Parse(raw); err == nil {
			actor.VendorID = vendorID
		}
	}
	if isAdmin, ok := claims["is_admin"].(bool); ok {
		actor.Admin = isAdmin
	}

	return actor
}
