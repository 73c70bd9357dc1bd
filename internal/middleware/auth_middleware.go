package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/greenbowl/greenbowl-backend/internal/errors"
	"github.com/greenbowl/greenbowl-backend/internal/session"
	"github.com/greenbowl/greenbowl-backend/pkg/util"
)

// Context keys for user information
const (
	UserIDKey    = "user_id"
	UsernameKey  = "username"
	SessionIDKey = "session_id"
)

type AuthMiddleware struct {
	sessions      session.Store
	sessionSecret string
	cookieName    string
}

func NewAuthMiddleware(sessions session.Store, sessionSecret, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:      sessions,
		sessionSecret: sessionSecret,
		cookieName:    cookieName,
	}
}

// resolve validates the session cookie and loads its server-side record.
// A valid cookie whose record was deleted (logout, expiry) resolves to
// nothing, so logout takes effect before the token itself expires.
func (m *AuthMiddleware) resolve(c *gin.Context) (*session.Session, bool) {
	log := GetLoggerFromContext(c)

	token, err := c.Cookie(m.cookieName)
	if err != nil || token == "" {
		return nil, false
	}

	claims, err := util.ValidateSessionToken(token, m.sessionSecret)
	if err != nil {
		log.Debug("Session cookie validation failed", map[string]interface{}{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
		return nil, false
	}

	sess, err := m.sessions.Get(c.Request.Context(), claims.SessionID)
	if err != nil {
		log.Debug("Session record not found for cookie", map[string]interface{}{
			"path":       c.Request.URL.Path,
			"session_id": claims.SessionID,
		})
		return nil, false
	}

	return sess, true
}

// Authenticate requires a logged-in user; anonymous requests are redirected
// to the login page.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		sess, ok := m.resolve(c)
		if !ok {
			log.Warn("Unauthenticated request to protected page", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.Unauthorized(c, "Please log in to continue.")
			c.Abort()
			return
		}

		c.Set(UserIDKey, sess.UserID)
		c.Set(UsernameKey, sess.Username)
		c.Set(SessionIDKey, sess.ID)

		log.Debug("User authenticated", map[string]interface{}{
			"user_id": sess.UserID,
			"path":    c.Request.URL.Path,
		})

		c.Next()
	}
}

// OptionalAuthenticate resolves the session if one exists and continues as
// a guest otherwise. The home page and auth pages use it to vary rendering
// by login state.
func (m *AuthMiddleware) OptionalAuthenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, ok := m.resolve(c); ok {
			c.Set(UserIDKey, sess.UserID)
			c.Set(UsernameKey, sess.Username)
			c.Set(SessionIDKey, sess.ID)
		}
		c.Next()
	}
}

// GetUserID extracts the logged-in user's ID from context
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	return userID.(uint), true
}

// GetUsername extracts the logged-in user's name from context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(UsernameKey)
	if !exists {
		return "", false
	}
	return username.(string), true
}

// GetSessionID extracts the session ID from context
func GetSessionID(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get(SessionIDKey)
	if !exists {
		return "", false
	}
	return sessionID.(string), true
}
