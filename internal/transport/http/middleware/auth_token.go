package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gigboard/internal/core/auth"
	"gigboard/internal/service"
	resp "gigboard/internal/transport/http/response"
)

// HeaderAuthToken is the header the frontend sends bearer tokens in.
const HeaderAuthToken = "x-auth-token"

const callerKey = "caller"

// AuthToken verifies the x-auth-token header and stores the caller
// identity on the context. requireType additionally gates on role.
func AuthToken(j *auth.JWTer, requireType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(HeaderAuthToken)
		if token == "" {
			resp.Error(c, http.StatusUnauthorized, "No token, authorization denied")
			return
		}
		claims, err := j.Parse(token)
		if err != nil {
			resp.Error(c, http.StatusUnauthorized, "Token is not valid")
			return
		}
		if requireType != "" && claims.UserType != requireType {
			resp.Error(c, http.StatusForbidden, "Forbidden")
			return
		}
		c.Set(callerKey, service.Caller{ID: claims.UserID, UserType: claims.UserType})
		c.Next()
	}
}

// CallerFrom returns the identity AuthToken stored, if any.
func CallerFrom(c *gin.Context) (service.Caller, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return service.Caller{}, false
	}
	caller, ok := v.(service.Caller)
	return caller, ok
}
