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

func newRouter(verifier *TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Authenticate(RoleAdmin, verifier), func(c *gin.Context) {
		id, ok := CurrentIdentity(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id.ID, "role": id.Role})
	})
	return r
}

func doRequest(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	verifier := NewTokenVerifier("admin-secret")
	other := NewTokenVerifier("user-secret")
	r := newRouter(verifier)

	valid, err := verifier.Sign("admin-42", time.Hour)
	require.NoError(t, err)
	foreign, err := other.Sign("admin-42", time.Hour)
	require.NoError(t, err)
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:           "admin-42",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
	}).SignedString([]byte("admin-secret"))
	require.NoError(t, err)
	noID, err := verifier.Sign("", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, "No token provided!"},
		{"bearer token", "Bearer " + valid, http.StatusOK, `"id":"admin-42"`},
		{"bare token", valid, http.StatusOK, `"role":"admin"`},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized, `"success":false`},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, "Invalid or expired token!"},
		{"missing id claim", "Bearer " + noID, http.StatusUnauthorized, "Invalid token structure!"},
		{"garbage", "Bearer not-a-jwt", http.StatusUnauthorized, "Invalid or expired token!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, tt.header)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	verifier := NewTokenVerifier("secret")
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "x"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}
