package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Kim-Emmanuel/granger/pkg/errors"
	"github.com/Kim-Emmanuel/granger/pkg/logger"
)

// operatorTokenTTL is how long an operator session token stays valid
const operatorTokenTTL = 12 * time.Hour

// authService issues and validates operator tokens for the CMS dashboard
type authService struct {
	password string
	secret   []byte
	log      *logger.Logger
}

// NewAuthService creates the operator auth service. Empty password or secret
// leaves the admin surface locked: every login fails.
func NewAuthService(password, secret string, log *logger.Logger) AuthService {
	return &authService{
		password: password,
		secret:   []byte(secret),
		log:      log,
	}
}

// Login exchanges the operator password for a signed HS256 token
func (s *authService) Login(password string) (string, error) {
	if s.password == "" || len(s.secret) == 0 {
		return "", errors.NewAuthenticationError("Admin login is not configured")
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		s.log.Warn("Operator login rejected")
		return "", errors.NewAuthenticationError("Invalid password")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "operator",
		"iat": now.Unix(),
		"exp": now.Add(operatorTokenTTL).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.NewInternalError("Failed to sign token", err)
	}

	s.log.Info("Operator logged in")
	return signed, nil
}

// Validate checks a token issued by Login
func (s *authService) Validate(tokenString string) error {
	if len(s.secret) == 0 {
		return errors.NewAuthenticationError("Admin login is not configured")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return errors.NewAuthenticationError("Invalid or expired token")
	}

	if !token.Valid {
		return errors.NewAuthenticationError("Invalid or expired token")
	}

	return nil
}
