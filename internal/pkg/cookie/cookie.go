package cookie

import (
	"github.com/gin-gonic/gin"
)

// session cookie issued by the dashboard login flow
const AccessTokenCookieName = "qbm-hydronet-token"

func GetAccessToken(c *gin.Context) string {
	token, err := c.Cookie(AccessTokenCookieName)
	if err != nil {
		return ""
	}
	return token
}
