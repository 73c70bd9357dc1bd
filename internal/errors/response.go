package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greenbowl/greenbowl-backend/internal/flash"
)

// Response helpers for a server-rendered site: every failure turns into a
// redirect with a one-shot flash notice rather than an error body. The
// 303 status forces the browser to follow a POST with a GET.

// RedirectWithNotice flashes a message and redirects.
func RedirectWithNotice(c *gin.Context, location, level, message string) {
	flash.Set(c, level, message)
	c.Redirect(http.StatusSeeOther, location)
}

// Common failure shortcuts

func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Please log in to continue."
	}
	RedirectWithNotice(c, "/login", flash.LevelWarning, message)
}

func Forbidden(c *gin.Context, location, message string) {
	if message == "" {
		message = "Unauthorized action."
	}
	RedirectWithNotice(c, location, flash.LevelDanger, message)
}

func BadRequest(c *gin.Context, location, message string) {
	RedirectWithNotice(c, location, flash.LevelDanger, message)
}

func NotFound(c *gin.Context, location, message string) {
	if message == "" {
		message = "The requested item was not found."
	}
	RedirectWithNotice(c, location, flash.LevelDanger, message)
}

func Conflict(c *gin.Context, location, message string) {
	RedirectWithNotice(c, location, flash.LevelDanger, message)
}

// ParseAndRedirect classifies an unexpected error and redirects with its
// user-safe message.
func ParseAndRedirect(c *gin.Context, location string, err error, context string) {
	info := Parse(err, context)
	RedirectWithNotice(c, location, flash.LevelDanger, info.Message)
}
