package auth

import (
	"chat-live/domain"
	"chat-live/errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuerName = "chat-live"

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Issuer signs and checks HS256 session tokens.
type Issuer struct {
	secret   []byte
	duration time.Duration
}

func NewIssuer(secret string, duration time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), duration: duration}
}

func (i *Issuer) Duration() time.Duration { return i.duration }

// GenerateToken creates a signed JWT for a specific user.
func (i *Issuer) GenerateToken(userID domain.UserID) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuerName,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrTokenGeneration, err)
	}
	return signed, nil
}

// ValidateToken checks the signature, the algorithm and the expiration of a JWT.
func (i *Issuer) ValidateToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuerName))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrUnauthenticated, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, errors.ErrUnauthenticated
	}
	return claims, nil
}
