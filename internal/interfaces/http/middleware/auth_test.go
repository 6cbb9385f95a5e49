package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediticket/internal/infrastructure/auth"
	"mediticket/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type noopLogger struct{}

func (noopLogger) Debugw(msg string, keysAndValues ...any) {}
func (noopLogger) Infow(msg string, keysAndValues ...any)  {}
func (noopLogger) Warnw(msg string, keysAndValues ...any)  {}
func (noopLogger) Errorw(msg string, keysAndValues ...any) {}
func (noopLogger) Fatalw(msg string, keysAndValues ...any) {}
func (l noopLogger) With(args ...any) logger.Interface     { return l }

func newGatedEngine(jwtService *auth.JWTService) *gin.Engine {
	engine := gin.New()
	m := NewAuthMiddleware(jwtService, noopLogger{})
	engine.GET("/protected", m.RequireStaff(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func doRequest(engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	engine.ServeHTTP(w, req)
	return w
}

func TestRequireStaff_ValidToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", "arts", 24)
	token, err := jwtService.Generate()
	require.NoError(t, err)

	w := doRequest(newGatedEngine(jwtService), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireStaff_MissingHeader(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", "arts", 24)

	w := doRequest(newGatedEngine(jwtService), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireStaff_MalformedHeader(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", "arts", 24)
	engine := newGatedEngine(jwtService)

	for _, header := range []string{"Bearer", "Basic abc", "token-without-scheme"} {
		w := doRequest(engine, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestRequireStaff_InvalidSignature(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", "arts", 24)
	otherService := auth.NewJWTService("other-secret", "arts", 24)
	token, err := otherService.Generate()
	require.NoError(t, err)

	w := doRequest(newGatedEngine(jwtService), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireStaff_WrongSubject(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", "arts", 24)

	// A properly signed token whose subject is not the staff principal.
	claims := jwt.RegisteredClaims{
		Subject:   "patient",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	w := doRequest(newGatedEngine(jwtService), "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireStaff_ExpiredToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", "arts", 24)

	claims := jwt.RegisteredClaims{
		Subject:   "arts",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	w := doRequest(newGatedEngine(jwtService), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
