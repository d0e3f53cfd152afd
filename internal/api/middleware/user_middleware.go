package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/karakusgokhan/team-hub/pkg/logger"
)

var log = logger.NewLogger()

// UserHeader carries the acting team member's name. The dashboard has no
// account system; identity is a self-selected roster name.
const UserHeader = "X-TeamHub-User"

const userKey = "current_user"

// CurrentUser resolves the acting member from the request header and
// falls back to the configured default.
func CurrentUser(defaultUser string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := strings.TrimSpace(c.GetHeader(UserHeader))
		if user == "" {
			user = defaultUser
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// GetUser returns the acting member's name set by CurrentUser.
func GetUser(c *gin.Context) string {
	if user, ok := c.Get(userKey); ok {
		if name, ok := user.(string); ok {
			return name
		}
	}
	return ""
}
