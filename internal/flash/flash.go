package flash

import (
	"encoding/base64"
	"strings"

	"github.com/gin-gonic/gin"
)

// One-shot flash notices, carried in a cookie between a redirect and the
// next rendered page. The controller sets a notice, redirects, and the next
// page render takes (and clears) it.

const cookieName = "gb_flash"

const (
	LevelSuccess = "success"
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelDanger  = "danger"
)

type Notice struct {
	Level   string
	Message string
}

// Set stores a notice for the next rendered page.
func Set(c *gin.Context, level, message string) {
	value := base64.URLEncoding.EncodeToString([]byte(level + "|" + message))
	c.SetCookie(cookieName, value, 60, "/", "", false, true)
}

// Take returns the pending notice, if any, and clears it.
func Take(c *gin.Context) (Notice, bool) {
	value, err := c.Cookie(cookieName)
	if err != nil || value == "" {
		return Notice{}, false
	}
	c.SetCookie(cookieName, "", -1, "/", "", false, true)

	decoded, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return Notice{}, false
	}

	level, message, found := strings.Cut(string(decoded), "|")
	if !found {
		return Notice{Level: LevelInfo, Message: string(decoded)}, true
	}
	return Notice{Level: level, Message: message}, true
}
