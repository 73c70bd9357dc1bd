package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greenbowl/greenbowl-backend/config"
	"github.com/greenbowl/greenbowl-backend/internal/app/service"
	apperrors "github.com/greenbowl/greenbowl-backend/internal/errors"
	"github.com/greenbowl/greenbowl-backend/internal/flash"
	"github.com/greenbowl/greenbowl-backend/internal/middleware"
	"github.com/greenbowl/greenbowl-backend/pkg/util"
)

type AuthController struct {
	authService service.AuthService
	sessionCfg  config.SessionConfig
}

func NewAuthController(authService service.AuthService, sessionCfg config.SessionConfig) *AuthController {
	return &AuthController{
		authService: authService,
		sessionCfg:  sessionCfg,
	}
}

type RegisterForm struct {
	Username string `form:"username" binding:"required,min=3,max=50"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
}

type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// ShowRegister renders the registration page
// GET /register
func (ctrl *AuthController) ShowRegister(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); ok {
		c.Redirect(http.StatusSeeOther, "/menu")
		return
	}
	render(c, "register.html", nil)
}

// Register handles the registration form
// POST /register
func (ctrl *AuthController) Register(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	if _, ok := middleware.GetUserID(c); ok {
		c.Redirect(http.StatusSeeOther, "/menu")
		return
	}

	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		log.Warn("Invalid registration form", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, "/register", "Please fill in all fields correctly.")
		return
	}

	_, err := ctrl.authService.Register(form.Username, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrAccountExists) {
			apperrors.Conflict(c, "/register", "Username or email already exists")
			return
		}
		log.Error("Registration failed", err, map[string]interface{}{
			"username": form.Username,
		})
		apperrors.ParseAndRedirect(c, "/register", err, "register user")
		return
	}

	apperrors.RedirectWithNotice(c, "/login", flash.LevelSuccess, "Registration successful! Please log in.")
}

// ShowLogin renders the login page
// GET /login
func (ctrl *AuthController) ShowLogin(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); ok {
		c.Redirect(http.StatusSeeOther, "/menu")
		return
	}
	render(c, "login.html", nil)
}

// Login handles the login form and sets the session cookie
// POST /login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	if _, ok := middleware.GetUserID(c); ok {
		c.Redirect(http.StatusSeeOther, "/menu")
		return
	}

	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		log.Warn("Invalid login form", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, "/login", "Please enter your username and password.")
		return
	}

	user, sess, err := ctrl.authService.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			apperrors.BadRequest(c, "/login", "Invalid username or password")
			return
		}
		log.Error("Login failed", err, map[string]interface{}{
			"username": form.Username,
		})
		apperrors.ParseAndRedirect(c, "/login", err, "login")
		return
	}

	token, err := util.GenerateSessionToken(sess.ID, user.ID, ctrl.sessionCfg.Secret, ctrl.sessionCfg.TTL)
	if err != nil {
		log.Error("Failed to issue session token", err, map[string]interface{}{
			"user_id": user.ID,
		})
		apperrors.ParseAndRedirect(c, "/login", err, "login")
		return
	}

	c.SetCookie(ctrl.sessionCfg.CookieName, token, int(ctrl.sessionCfg.TTL.Seconds()), "/", "", false, true)
	apperrors.RedirectWithNotice(c, "/menu", flash.LevelSuccess, "Logged in successfully!")
}

// Logout ends the session and clears the cookie
// GET /logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	if sessionID, ok := middleware.GetSessionID(c); ok {
		if err := ctrl.authService.Logout(c.Request.Context(), sessionID); err != nil {
			log.Error("Failed to delete session", err, map[string]interface{}{
				"session_id": sessionID,
			})
		}
	}

	c.SetCookie(ctrl.sessionCfg.CookieName, "", -1, "/", "", false, true)
	apperrors.RedirectWithNotice(c, "/", flash.LevelInfo, "Logged out successfully")
}

// Profile renders the account page
// GET /profile
func (ctrl *AuthController) Profile(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, _ := middleware.GetUserID(c)
	user, err := ctrl.authService.GetUserByID(userID)
	if err != nil {
		log.Error("Failed to load profile", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRedirect(c, "/", err, "load profile")
		return
	}

	render(c, "profile.html", gin.H{
		"User": user,
	})
}
