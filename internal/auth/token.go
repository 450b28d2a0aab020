package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"authgate/internal/errs"
	"authgate/internal/models"
)

// Claims is the signed session payload: {subject, email, roles}. The role
// names are a snapshot taken at issue time and may be stale relative to the
// database; access-control decisions always reload the principal by subject
// id instead of trusting them.
type Claims struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies stateless HS256 session tokens. There is
// no server-side session table; expiry is the only revocation mechanism.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the user. Role names are embedded in slice order.
func (s *TokenService) Issue(user *models.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email: user.Email,
		Roles: user.RoleNames(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string. Signature mismatch, a
// malformed payload, and an elapsed expiry all come back as ErrInvalidToken.
// Verify never consults the store.
func (s *TokenService) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errs.ErrInvalidToken
	}
	return claims, nil
}
