package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// CookieName is the cookie the login handler sets and the extractor reads.
const CookieName = "token"

// ExtractToken pulls a candidate token from the request: the
// Authorization bearer header wins, then the token cookie.
func ExtractToken(c *gin.Context) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		if token := strings.TrimPrefix(header, "Bearer "); token != header && token != "" {
			return token, true
		}
	}
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}
