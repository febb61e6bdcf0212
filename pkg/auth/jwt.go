package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned when a token fails validation for any reason
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when a token is past its expiry
	ErrExpiredToken = errors.New("token has expired")
)

// Principal is the authenticated identity attached to a request
type Principal struct {
	UserID string   `json:"sub"`
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Roles  []string `json:"roles,omitempty"`
}

type tokenClaims struct {
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// JWTConfig holds signing configuration shared by issuer and validator
type JWTConfig struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

// JWTIssuer signs access tokens for the session cookie
type JWTIssuer struct {
	cfg JWTConfig
}

// NewJWTIssuer creates a token issuer
func NewJWTIssuer(cfg JWTConfig) (*JWTIssuer, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("jwt secret key is required")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 15 * time.Minute
	}
	return &JWTIssuer{cfg: cfg}, nil
}

// Sign issues an HS256 access token for the given principal
func (i *JWTIssuer) Sign(p Principal) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Email: p.Email,
		Name:  p.Name,
		Roles: p.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			Issuer:    i.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.cfg.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(i.cfg.SecretKey))
}

// TTL reports the configured token lifetime
func (i *JWTIssuer) TTL() time.Duration {
	return i.cfg.TTL
}

// JWTValidator verifies access tokens from the session cookie
type JWTValidator struct {
	cfg JWTConfig
}

// NewJWTValidator creates a token validator
func NewJWTValidator(cfg JWTConfig) (*JWTValidator, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("jwt secret key is required")
	}
	return &JWTValidator{cfg: cfg}, nil
}

// Validate parses and verifies a token, returning the embedded principal
func (v *JWTValidator) Validate(tokenString string) (*Principal, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(v.cfg.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return &Principal{
		UserID: claims.Subject,
		Email:  claims.Email,
		Name:   claims.Name,
		Roles:  claims.Roles,
	}, nil
}
