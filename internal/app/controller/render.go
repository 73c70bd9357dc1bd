package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greenbowl/greenbowl-backend/internal/flash"
	"github.com/greenbowl/greenbowl-backend/internal/middleware"
)

// render executes an HTML template with the layout data every page needs:
// the pending flash notice and the login state from the auth middleware.
func render(c *gin.Context, template string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if notice, ok := flash.Take(c); ok {
		data["Notice"] = notice
	}

	if username, ok := middleware.GetUsername(c); ok {
		data["Username"] = username
		data["LoggedIn"] = true
	}

	c.HTML(http.StatusOK, template, data)
}
