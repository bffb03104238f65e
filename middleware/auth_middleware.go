package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const (
	RoleVoter = "voter"
	RoleAdmin = "admin"

	principalKey = "principal"
)

// Principal is the authenticated identity carried through the request
// context. VoterID is set for voter tokens, Username for admin tokens.
type Principal struct {
	ID       uint   `json:"id"`
	Role     string `json:"role"`
	VoterID  string `json:"voterId,omitempty"`
	Username string `json:"username,omitempty"`
	Name     string `json:"name,omitempty"`
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// IssueToken signs a JWT for the principal with a one hour expiry.
func IssueToken(p Principal, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"principal_id": p.ID,
		"role":         p.Role,
		"voter_id":     p.VoterID,
		"username":     p.Username,
		"name":         p.Name,
		"exp":          time.Now().Add(time.Hour).Unix(),
	})
	return token.SignedString(secret)
}

// JWTAuthMiddleware validates the Bearer token and stores the decoded
// Principal in the gin context for the handlers downstream.
func JWTAuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization header required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		id, ok := claims["principal_id"].(float64)
		role, _ := claims["role"].(string)
		if !ok || (role != RoleVoter && role != RoleAdmin) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		principal := Principal{ID: uint(id), Role: role}
		principal.VoterID, _ = claims["voter_id"].(string)
		principal.Username, _ = claims["username"].(string)
		principal.Name, _ = claims["name"].(string)

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireAdmin rejects non-admin principals. Must run after
// JWTAuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}
		if !principal.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the Principal stored by JWTAuthMiddleware.
func GetPrincipal(c *gin.Context) (Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	principal, ok := value.(Principal)
	return principal, ok
}
