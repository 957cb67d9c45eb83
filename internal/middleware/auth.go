package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireAuth는 작가 세션이 있어야 통과. API 응답이므로 redirect 대신 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		photographerID := sess.Get("photographer_id")
		if photographerID == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "로그인이 필요합니다"})
			return
		}
		c.Next()
	}
}

// PhotographerID reads the session subject set at login. Empty string means
// an unauthenticated request.
func PhotographerID(c *gin.Context) string {
	sess := sessions.Default(c)
	id, _ := sess.Get("photographer_id").(string)
	return id
}
