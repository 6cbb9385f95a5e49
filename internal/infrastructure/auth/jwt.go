package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"mediticket/internal/shared/biztime"
)

// ErrUnknownSubject marks a structurally valid token whose subject is
// not the staff principal.
var ErrUnknownSubject = errors.New("unknown token subject")

type Claims struct {
	jwt.RegisteredClaims
}

// JWTService issues and verifies the staff bearer token. There is a
// single principal: the subject of every valid token must equal the
// configured staff username.
type JWTService struct {
	secret        []byte
	staffUsername string
	accessExp     time.Duration
}

func NewJWTService(secret, staffUsername string, accessExpHours int) *JWTService {
	return &JWTService{
		secret:        []byte(secret),
		staffUsername: staffUsername,
		accessExp:     time.Duration(accessExpHours) * time.Hour,
	}
}

// Generate signs an access token for the staff principal.
func (s *JWTService) Generate() (string, error) {
	now := biztime.NowUTC()

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.staffUsername,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessExp)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry, and rejects tokens whose subject
// is not the staff principal.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims.Subject != s.staffUsername {
		return nil, ErrUnknownSubject
	}

	return claims, nil
}

// AccessExpSeconds returns the access token lifetime in seconds.
func (s *JWTService) AccessExpSeconds() int64 {
	return int64(s.accessExp / time.Second)
}
