package http

import (
	"github.com/gin-gonic/gin"

	"github.com/zerozero/zerozero/internal/domain/auth"
)

const authClaimsKey = "auth_claims"

func setClaims(c *gin.Context, claims auth.Claims) {
	c.Set(authClaimsKey, claims)
}

func getClaims(c *gin.Context) (auth.Claims, bool) {
	value, ok := c.Get(authClaimsKey)
	if !ok {
		return auth.Claims{}, false
	}
	claims, ok := value.(auth.Claims)
	return claims, ok
}

// currentUserID returns the authenticated user id, or nil for anonymous
// requests on optional-auth routes.
func currentUserID(c *gin.Context) *int64 {
	claims, ok := getClaims(c)
	if !ok {
		return nil
	}
	id := claims.UserID
	return &id
}
