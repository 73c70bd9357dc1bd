package controller

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/greenbowl/greenbowl-backend/config"
	"github.com/greenbowl/greenbowl-backend/internal/app/model"
	"github.com/greenbowl/greenbowl-backend/internal/app/repository"
	"github.com/greenbowl/greenbowl-backend/internal/app/service"
	"github.com/greenbowl/greenbowl-backend/internal/db"
	"github.com/greenbowl/greenbowl-backend/internal/middleware"
	"github.com/greenbowl/greenbowl-backend/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testSessionCfg = config.SessionConfig{
	Secret:     "test-session-secret",
	TTL:        time.Hour,
	CookieName: "greenbowl_session",
}

func setupAuthControllerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	sessions := session.NewMemoryStore(testSessionCfg.TTL)
	authService := service.NewAuthService(userRepo, sessions)
	authController := NewAuthController(authService, testSessionCfg)
	authMiddleware := middleware.NewAuthMiddleware(sessions, testSessionCfg.Secret, testSessionCfg.CookieName)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.LoadHTMLGlob("../../../web/templates/*.html")

	router.GET("/register", authMiddleware.OptionalAuthenticate(), authController.ShowRegister)
	router.POST("/register", authMiddleware.OptionalAuthenticate(), authController.Register)
	router.GET("/login", authMiddleware.OptionalAuthenticate(), authController.ShowLogin)
	router.POST("/login", authMiddleware.OptionalAuthenticate(), authController.Login)
	router.GET("/logout", authMiddleware.Authenticate(), authController.Logout)
	router.GET("/profile", authMiddleware.Authenticate(), authController.Profile)

	return router, testDB
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == testSessionCfg.CookieName && cookie.Value != "" {
			return cookie
		}
	}
	return nil
}

func TestAuthController_Register(t *testing.T) {
	router, testDB := setupAuthControllerTest(t)

	w := postForm(router, "/register", url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"password123"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	var user model.User
	require.NoError(t, testDB.Where("username = ?", "alice").First(&user).Error)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "password123", user.PasswordHash)
}

func TestAuthController_Register_Duplicate(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	form := url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"password123"},
	}
	postForm(router, "/register", form)
	w := postForm(router, "/register", form)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/register", w.Header().Get("Location"))
}

func TestAuthController_Register_InvalidForm(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	w := postForm(router, "/register", url.Values{
		"username": {"alice"},
		"email":    {"not-an-email"},
		"password": {"password123"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/register", w.Header().Get("Location"))
}

func TestAuthController_LoginLogout(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	postForm(router, "/register", url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"password123"},
	})

	w := postForm(router, "/login", url.Values{
		"username": {"alice"},
		"password": {"password123"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/menu", w.Header().Get("Location"))

	cookie := sessionCookie(w)
	require.NotNil(t, cookie, "login should set the session cookie")

	// The cookie unlocks the profile page.
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(cookie)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@example.com")

	// Logout ends the session server-side.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// The old cookie no longer works.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(cookie)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAuthController_Login_WrongPassword(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	postForm(router, "/register", url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"password123"},
	})

	w := postForm(router, "/login", url.Values{
		"username": {"alice"},
		"password": {"wrongpassword"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Nil(t, sessionCookie(w))
}

func TestAuthController_AuthPagesRedirectWhenLoggedIn(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	postForm(router, "/register", url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"password123"},
	})
	w := postForm(router, "/login", url.Values{
		"username": {"alice"},
		"password": {"password123"},
	})
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)

	for _, path := range []string{"/login", "/register"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(cookie)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusSeeOther, w.Code, path)
		assert.Equal(t, "/menu", w.Header().Get("Location"), path)
	}
}

func TestAuthController_FlashNoticeSurvivesRedirect(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	w := postForm(router, "/register", url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"password123"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	var flashCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "gb_flash" {
			flashCookie = cookie
		}
	}
	require.NotNil(t, flashCookie, "redirect should carry a flash notice")

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(flashCookie)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Registration successful! Please log in.")
	assert.True(t, strings.Contains(w.Body.String(), "alert-success"))
}
