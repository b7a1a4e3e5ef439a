package jwtmanager

import (
	"errors"
	"fmt"
	"postcare-service/internal/app/config"
	"postcare-service/internal/pkg/exceptions"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// tokenTTL is fixed; sessions are long-lived and revocation is out of scope.
const tokenTTL = 30 * 24 * time.Hour

// JWTManager signs and verifies the HS256 session tokens issued at login and
// registration.
type JWTManager struct {
	log    *zap.Logger
	secret []byte
	ttl    time.Duration
}

// NewJWTManager fails closed: a missing secret is a startup error, never a
// fallback to a default key.
func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) (*JWTManager, error) {
	secret := strings.TrimSpace(cfg.JWT.Secret)
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}
	return &JWTManager{
		log:    log,
		secret: []byte(secret),
		ttl:    tokenTTL,
	}, nil
}

// CreateToken issues a signed token carrying the user identity document ID.
func (j *JWTManager) CreateToken(userID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(j.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return signed, nil
}

// VerifyToken validates signature and expiry and returns the user ID claim.
func (j *JWTManager) VerifyToken(tokenString string) (string, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", exceptions.ErrTokenExpired(err)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", exceptions.ErrTokenMalformed(err)
		default:
			return "", exceptions.ErrTokenInvalid(err)
		}
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return "", exceptions.ErrTokenInvalid(fmt.Errorf("token claims are not valid"))
	}

	userID, ok := claims["id"].(string)
	if !ok || userID == "" {
		return "", exceptions.ErrTokenInvalid(fmt.Errorf("token is missing the id claim"))
	}
	return userID, nil
}
