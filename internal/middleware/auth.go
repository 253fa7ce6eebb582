package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/coursehive/internal/dto"
	"github.com/rs/zerolog/log"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

const identityKey = "identity"

// Identity is the verified caller of a request.
type Identity struct {
	Role Role
	ID   string
}

// Claims carries the caller id in the "id" claim.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

var errMissingSubject = errors.New("token has no id claim")

// TokenVerifier checks HS256 tokens signed with one shared secret.
type TokenVerifier struct {
	secretKey []byte
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secretKey: []byte(secret)}
}

func (v *TokenVerifier) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return v.secretKey, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if strings.TrimSpace(claims.UserID) == "" {
		return nil, errMissingSubject
	}
	return claims, nil
}

// Sign issues a token for id. A zero ttl issues a token without expiry.
func (v *TokenVerifier) Sign(id string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:           id,
		RegisteredClaims: jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(now)},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secretKey)
}

// Authenticate rejects requests without a valid token for role and stores
// the caller identity on the context.
func Authenticate(role Role, verifier *TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			abortUnauthorized(c, "No token provided!")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims, err := verifier.Verify(tokenString)
		if err != nil {
			log.Debug().Err(err).Str("role", string(role)).Str("path", c.FullPath()).Msg("Rejected token")
			if errors.Is(err, errMissingSubject) {
				abortUnauthorized(c, "Invalid token structure!")
				return
			}
			abortUnauthorized(c, "Invalid or expired token!")
			return
		}

		c.Set(identityKey, Identity{Role: role, ID: claims.UserID})
		c.Next()
	}
}

// CurrentIdentity returns the identity stored by Authenticate.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Success: false, Message: message})
}
