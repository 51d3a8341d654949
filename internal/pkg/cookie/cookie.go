package cookie

import (
	"github.com/gin-gonic/gin"
)

// AccessTokenCookieName is set by the dashboard's session layer; this service only reads it.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, err := c.Cookie(AccessTokenCookieName)
	if err != nil {
		return ""
	}
	return token
}
