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

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func adminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", AdminAuth(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestAdminAuth(t *testing.T) {
	now := time.Now()
	valid := signToken(t, testSecret, jwt.MapClaims{
		"scope": "admin", "iat": now.Unix(), "exp": now.Add(time.Minute).Unix(),
	})

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid_token", "Bearer " + valid, http.StatusOK},
		{"missing_header", "", http.StatusUnauthorized},
		{"not_bearer", valid, http.StatusUnauthorized},
		{"wrong_secret", "Bearer " + signToken(t, "other-secret", jwt.MapClaims{
			"scope": "admin", "exp": now.Add(time.Minute).Unix(),
		}), http.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, testSecret, jwt.MapClaims{
			"scope": "admin", "exp": now.Add(-time.Minute).Unix(),
		}), http.StatusUnauthorized},
		{"wrong_scope", "Bearer " + signToken(t, testSecret, jwt.MapClaims{
			"scope": "viewer", "exp": now.Add(time.Minute).Unix(),
		}), http.StatusForbidden},
	}

	r := adminRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
