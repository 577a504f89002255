package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskflow/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.Use(middleware.SessionMiddleware(time.Hour))

	// Обработчик для проверки middleware
	r.GET("/resource", func(c *gin.Context) {
		sessionID, exists := c.Get(middleware.SessionIDKey)
		if !exists {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session ID not found in context"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"session_id": sessionID})
	})

	return r
}

func TestSessionMiddleware_IssuesNewSession(t *testing.T) {
	// Arrange
	router := setupRouter()
	req, _ := http.NewRequest("GET", "/resource", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)

	sessionID := resp.Header().Get(middleware.SessionHeader)
	_, err := uuid.Parse(sessionID)
	require.NoError(t, err)
	assert.Contains(t, resp.Body.String(), sessionID)

	cookies := resp.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookie, cookies[0].Name)
	assert.Equal(t, sessionID, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

func TestSessionMiddleware_UsesHeader(t *testing.T) {
	router := setupRouter()
	sessionID := uuid.NewString()

	req, _ := http.NewRequest("GET", "/resource", nil)
	req.Header.Set(middleware.SessionHeader, sessionID)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, sessionID, resp.Header().Get(middleware.SessionHeader))
	assert.Contains(t, resp.Body.String(), sessionID)
}

func TestSessionMiddleware_UsesCookie(t *testing.T) {
	router := setupRouter()
	sessionID := uuid.NewString()

	req, _ := http.NewRequest("GET", "/resource", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: sessionID})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, sessionID, resp.Header().Get(middleware.SessionHeader))
}

func TestSessionMiddleware_InvalidHeader(t *testing.T) {
	router := setupRouter()

	req, _ := http.NewRequest("GET", "/resource", nil)
	req.Header.Set(middleware.SessionHeader, "../../etc")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid session ID")
}

func TestSessionMiddleware_InvalidCookieIsReplaced(t *testing.T) {
	router := setupRouter()

	req, _ := http.NewRequest("GET", "/resource", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "garbage"})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	sessionID := resp.Header().Get(middleware.SessionHeader)
	assert.NotEqual(t, "garbage", sessionID)
	_, err := uuid.Parse(sessionID)
	assert.NoError(t, err)
}
