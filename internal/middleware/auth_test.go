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
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, operatorID int64, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   operatorID,
		"email": "admin@omahonys.ie",
		"exp":   exp.Unix(),
		"iat":   time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireOperator(testSecret), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func serve(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequireOperator(t *testing.T) {
	t.Run("valid token reaches the handler with the operator id set", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		var gotID int64
		r.GET("/protected", RequireOperator(testSecret), func(c *gin.Context) {
			gotID = c.GetInt64(OperatorIDKey)
			c.Status(http.StatusOK)
		})

		token := signToken(t, testSecret, 7, time.Now().Add(time.Hour))
		w := serve(r, "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(7), gotID)
	})

	t.Run("missing header", func(t *testing.T) {
		r := setupRouter()

		w := serve(r, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "AUTH_ERROR")
	})

	t.Run("not a bearer scheme", func(t *testing.T) {
		r := setupRouter()

		w := serve(r, "Basic dXNlcjpwYXNz")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		r := setupRouter()

		token := signToken(t, "other-secret", 7, time.Now().Add(time.Hour))
		w := serve(r, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		r := setupRouter()

		token := signToken(t, testSecret, 7, time.Now().Add(-time.Hour))
		w := serve(r, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid or expired token")
	})

	t.Run("garbage token", func(t *testing.T) {
		r := setupRouter()

		w := serve(r, "Bearer not.a.jwt")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
