package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ojlab/discussions/domain"
)

// IdentityKey is the gin context key holding the authenticated domain.Identity.
const IdentityKey = "identity"

// AuthMiddleware verifies the gateway-minted bearer token and stores the
// caller's identity in the request context. Token issuance happens on the
// platform side; this service only checks the signature and claims.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		identity, err := identityFromClaims(claims)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

func identityFromClaims(claims jwt.MapClaims) (domain.Identity, error) {
	id, ok := claims["identity_id"].(float64)
	if !ok {
		return domain.Identity{}, errMissingClaim("identity_id")
	}
	username, ok := claims["username"].(string)
	if !ok {
		return domain.Identity{}, errMissingClaim("username")
	}

	var roles []string
	if rawRoles, ok := claims["roles"].([]interface{}); ok {
		for _, r := range rawRoles {
			if role, ok := r.(string); ok {
				roles = append(roles, role)
			}
		}
	}

	return domain.Identity{
		ID:       int64(id),
		Username: username,
		Roles:    roles,
	}, nil
}

type errMissingClaim string

func (e errMissingClaim) Error() string {
	return string(e) + " claim is missing or malformed"
}
