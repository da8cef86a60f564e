// Package auth issues and verifies the signed identity tokens used by the
// HTTP layer. Tokens are stateless: verification is a pure function of the
// token, the server secret and the clock.
package auth

import (
	"time"

	"github.com/andrejsm/taskkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated subject attached to a request context
// after a token verifies.
type Identity struct {
	ID    string
	Email string
}

// Claims — registered JWT claims plus the user id and email the token
// was issued for.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Email  string `json:"email"`
}

// GenerateToken signs an HS256 token for the given identity, valid for
// validityDuration from now. Rotating secretKey invalidates every
// outstanding token; that tradeoff is accepted.
func GenerateToken(id Identity, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: id.ID,
		Email:  id.Email,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies tokenString and returns the identity it carries.
// Every failure mode — bad signature, wrong algorithm, malformed payload,
// expired — collapses to common.ErrInvalidToken; callers need no finer
// distinction.
func ParseToken(tokenString string, secretKey []byte) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return &Identity{ID: claims.UserID, Email: claims.Email}, nil
}
