package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"mentorhub/utils"
)

// authenticate validates the bearer token for the expected role and returns
// the authenticated subject ID.
func authenticate(c *gin.Context, role string) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		return "", false
	}

	id, tokenRole, err := utils.ExtractIDFromToken(tokenString)
	if err != nil || id == "" || tokenRole != role {
		return "", false
	}

	// The cached hash is the revocation gate: a missing or mismatched entry
	// means the token was revoked or superseded.
	key := "auth:" + cachePrefix(role) + ":" + id
	cached, err := utils.GetAuthCacheClient().Get(c.Request.Context(), key).Result()
	if err == redis.Nil || (err == nil && cached != utils.HashToken(tokenString)) {
		return "", false
	}
	if err != nil && err != redis.Nil {
		return "", false
	}

	return id, true
}

func cachePrefix(role string) string {
	if role == "mentor" {
		return "mentor"
	}
	return "user"
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "Insufficient authorization",
		"code":  0,
	})
}

// JWTAuthUserMiddleware guards mentee endpoints. The authenticated mentee ID
// is stored on the context as "userID".
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		id, ok := authenticate(c, "mentee")
		if !ok {
			abortUnauthorized(c)
			return
		}
		c.Set("userID", id)
		c.Next()
	}
}

// JWTAuthMentorMiddleware guards mentor endpoints. The authenticated mentor
// ID is stored on the context as "mentorID".
func JWTAuthMentorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		id, ok := authenticate(c, "mentor")
		if !ok {
			abortUnauthorized(c)
			return
		}
		c.Set("mentorID", id)
		c.Next()
	}
}
