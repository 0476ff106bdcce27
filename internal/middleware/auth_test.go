package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cargofunds/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("middleware-secret")

func sign(t *testing.T, key []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(role string) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":  "carol",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
}

func newEngine(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", NewAuthenticator(secret).RequireRole(roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": CallerIdentity(c), "role": c.GetString(ContextRole)})
	})
	return r
}

func TestRequireRole(t *testing.T) {
	expired := validClaims("ADMIN")
	expired["exp"] = time.Now().Add(-time.Minute).Unix()
	noRole := jwt.MapClaims{"sub": "carol", "exp": time.Now().Add(time.Hour).Unix()}
	noSubject := jwt.MapClaims{"role": "ADMIN", "exp": time.Now().Add(time.Hour).Unix()}

	tests := []struct {
		name    string
		header  string
		roles   []string
		status  int
		message string
	}{
		{name: "missing header", status: http.StatusUnauthorized, message: "Authorization is missing"},
		{name: "bad scheme", header: "Token abc", status: http.StatusUnauthorized, message: "Invalid authorization format. Expected 'Bearer <token>'"},
		{name: "garbage token", header: "Bearer abc", status: http.StatusUnauthorized, message: "Invalid token"},
		{name: "wrong key", header: "Bearer " + sign(t, []byte("other"), validClaims("ADMIN")), status: http.StatusUnauthorized, message: "Invalid token"},
		{name: "expired", header: "Bearer " + sign(t, secret, expired), status: http.StatusUnauthorized, message: "Invalid token"},
		{name: "no subject", header: "Bearer " + sign(t, secret, noSubject), status: http.StatusUnauthorized, message: "Subject not found in token"},
		{name: "no role", header: "Bearer " + sign(t, secret, noRole), status: http.StatusForbidden, message: "Role not found in token"},
		{name: "wrong role", header: "Bearer " + sign(t, secret, validClaims("USER")), roles: []string{"ADMIN", "FINANCE"}, status: http.StatusForbidden, message: "Access denied: insufficient permissions"},
		{name: "allowed role", header: "Bearer " + sign(t, secret, validClaims("FINANCE")), roles: []string{"ADMIN", "FINANCE"}, status: http.StatusOK},
		{name: "any role", header: "Bearer " + sign(t, secret, validClaims("USER")), status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			newEngine(tt.roles...).ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.message == "" {
				return
			}
			var body response.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, tt.message, body.Error)
		})
	}
}

func TestRequireRoleSetsCaller(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: tokenCookie, Value: sign(t, secret, validClaims("MANAGER"))})
	w := httptest.NewRecorder()

	newEngine("MANAGER").ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "carol", body["user"])
	assert.Equal(t, "MANAGER", body["role"])
}
