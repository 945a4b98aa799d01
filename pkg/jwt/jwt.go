// Package jwt signs and verifies the session token carried by the cookie or the
// Authorization header.
package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptySecret   = errors.New("jwt: empty secret")
	ErrInvalidClaims = errors.New("jwt: invalid claims")
)

// Claims are the registered claims plus the session fields. ShopID is only set for managers,
// so the middleware can build the caller identity without a database round trip.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"` // "admin" | "manager"
	ShopID   string `json:"shop_id,omitempty"`
}

// Session is what a token says about its bearer.
type Session struct {
	UserID   string
	Username string
	Role     string
	ShopID   string
}

// Generate signs an HS256 token for s that expires after expMinutes.
func Generate(secret string, s Session, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:   s.UserID,
		Username: s.Username,
		Role:     s.Role,
		ShopID:   s.ShopID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse verifies signature, expiry and (when issuer is not empty) the issuer.
func Parse(secret, issuer, tokenString string) (*Session, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidClaims
	}
	return &Session{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
		ShopID:   claims.ShopID,
	}, nil
}
