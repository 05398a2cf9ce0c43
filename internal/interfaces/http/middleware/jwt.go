package middleware

import (
	"net/http"
	"strings"

	"github.com/facturation/backend/internal/infrastructure/auth"
	"github.com/facturation/backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
)

// Context keys set by the JWT middleware
const (
	JWTClaimsKey  = "jwt_claims"
	JWTUserIDKey  = "jwt_user_id"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// JWTConfig holds JWT middleware configuration
type JWTConfig struct {
	Service *auth.JWTService
	// SkipPaths bypass authentication entirely (health checks, login)
	SkipPaths []string
}

// JWTAuth creates a JWT authentication middleware. Requests on skip paths
// pass through; everything else needs a valid bearer token.
func JWTAuth(cfg JWTConfig) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortUnauthorized(c, "Authentification requise")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, "En-tête Authorization invalide")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			abortUnauthorized(c, "Jeton manquant")
			return
		}

		claims, err := cfg.Service.Validate(tokenString)
		if err != nil {
			switch err {
			case auth.ErrExpiredToken:
				abortUnauthorized(c, "Le jeton a expiré")
			case auth.ErrTokenNotYetValid:
				abortUnauthorized(c, "Le jeton n'est pas encore valide")
			default:
				abortUnauthorized(c, "Jeton invalide")
			}
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTUserIDKey, claims.UserID)

		// Enrich the request context so logs carry the user id
		ctx := c.Request.Context()
		ctx, _ = logger.WithUserID(ctx, logger.FromContext(ctx), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}

// GetClaims retrieves JWT claims stored by the middleware, or nil
func GetClaims(c *gin.Context) *auth.Claims {
	if v, exists := c.Get(JWTClaimsKey); exists {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

// GetUserID retrieves the authenticated user id, or an empty string
func GetUserID(c *gin.Context) string {
	if v, exists := c.Get(JWTUserIDKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
