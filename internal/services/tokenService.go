package services

import (
	"errors"
	"maps"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingEmail = errors.New("email is required")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Time claims are always set by the server, never taken from the caller.
var reservedClaims = []string{"exp", "iat", "nbf"}

// Claims is the identity carried inside an access token.
type Claims struct {
	Email string
	// Profile holds every signed claim, email included, except the time claims.
	Profile   map[string]any
	ExpiresAt time.Time
}

// TokenService issues and verifies HS256 access tokens. It holds no state
// besides its key, so one instance is shared by all requests.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService returns a service signing with secret; tokens live for ttl.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs the supplied identity claims plus an expiry. The claims must
// carry a non-empty string email.
func (s *TokenService) Issue(identity map[string]any) (string, error) {
	email, _ := identity["email"].(string)
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrMissingEmail
	}

	claims := jwt.MapClaims{}
	maps.Copy(claims, identity)
	for _, key := range reservedClaims {
		delete(claims, key)
	}
	claims["email"] = email

	now := s.now()
	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(now.Add(s.ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry. It returns ErrExpiredToken for a
// well-signed token past its TTL and ErrInvalidToken for everything else.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	email, _ := mc["email"].(string)
	if email == "" {
		return nil, ErrInvalidToken
	}
	exp, err := mc.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrInvalidToken
	}

	profile := make(map[string]any, len(mc))
	maps.Copy(profile, mc)
	for _, key := range reservedClaims {
		delete(profile, key)
	}

	return &Claims{Email: email, Profile: profile, ExpiresAt: exp.Time}, nil
}
