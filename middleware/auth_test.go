package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub/utils"
)

func serveProtected(mw gin.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	r := gin.New()
	r.GET("/protected", mw, func(c *gin.Context) { c.Status(http.StatusOK) })
	r.ServeHTTP(w, req)
	return w
}

func TestUserMiddlewareRejectsMissingOrMalformedTokens(t *testing.T) {
	for _, header := range []string{"", "Bearer ", "Bearer not-a-jwt", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := serveProtected(JWTAuthUserMiddleware(), req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

// A mentor token never passes the mentee guard, and vice versa; the role
// check fires before any cache lookup.
func TestMiddlewareRejectsWrongRole(t *testing.T) {
	mentorToken, err := utils.GenerateToken("mentor-1", "ada@example.com", "mentor", time.Hour)
	require.NoError(t, err)
	menteeToken, err := utils.GenerateToken("mentee-1", "grace@example.com", "mentee", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+mentorToken)
	assert.Equal(t, http.StatusUnauthorized, serveProtected(JWTAuthUserMiddleware(), req).Code)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+menteeToken)
	assert.Equal(t, http.StatusUnauthorized, serveProtected(JWTAuthMentorMiddleware(), req).Code)
}

// The revocation lookup runs on the request context: a request cancelled
// before the lookup is rejected instead of holding a dangling redis call.
func TestRevocationLookupUsesRequestContext(t *testing.T) {
	prev := utils.AuthCacheClient
	utils.AuthCacheClient = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer func() { utils.AuthCacheClient = prev }()

	token, err := utils.GenerateToken("mentee-1", "grace@example.com", "mentee", time.Hour)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil).WithContext(ctx)
	req.Header.Set("Authorization", "Bearer "+token)

	w := serveProtected(JWTAuthUserMiddleware(), req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
