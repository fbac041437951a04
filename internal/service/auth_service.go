package service

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"creativestyle/config"
	"creativestyle/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService handles admin authentication
type AuthService struct {
	username     string
	passwordHash []byte
	jwtSecret    []byte
	ttl          time.Duration
	now          func() time.Time
}

// NewAuthService creates a new auth service from explicit configuration.
// When no bcrypt hash is configured the plaintext password is hashed once here.
func NewAuthService(cfg config.AuthConfig) (*AuthService, error) {
	hash := []byte(cfg.AdminPasswordHash)
	if len(hash) == 0 {
		h, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = h
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &AuthService{
		username:     cfg.AdminUsername,
		passwordHash: hash,
		jwtSecret:    []byte(cfg.JWTSecret),
		ttl:          ttl,
		now:          time.Now,
	}, nil
}

// Login validates credentials and returns a signed token
func (s *AuthService) Login(username, password string) (*model.LoginResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	claims := &model.AdminClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:    tokenString,
		Username: username,
	}, nil
}

// ValidateToken validates an admin JWT and returns claims
func (s *AuthService) ValidateToken(tokenString string) (*model.AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.AdminClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
