package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"HospitalConnect/utils"
)

// JWTAuth guards a route group with a bearer token. On success the subject id
// and the natural-key claim land on the context for the handlers.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.FailedResponse("missing authorization header"))
			return
		}
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.FailedResponse("invalid authorization header"))
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.FailedResponse("invalid or expired token"))
			return
		}

		c.Set("userId", claims.Subject)
		if claims.Email != "" {
			c.Set("email", claims.Email)
		}
		if claims.PhoneNumber != "" {
			c.Set("phoneNumber", claims.PhoneNumber)
		}
		c.Next()
	}
}
