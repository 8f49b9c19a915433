package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// DefaultTokenTTL is how long issued tokens stay valid when no TTL is given.
const DefaultTokenTTL = 24 * time.Hour

// Token rejection reasons. These stay internal to the service; the HTTP layer
// collapses all of them to 401 so callers get no diagnostic signal.
var (
	// ErrBadSignature is returned when the signature does not match the secret.
	ErrBadSignature = errors.New("token signature mismatch")
	// ErrExpired is returned when the token is past its expiry.
	ErrExpired = errors.New("token expired")
	// ErrMalformed is returned when the token cannot be parsed at all.
	ErrMalformed = errors.New("token malformed")
	// ErrMissingSubject is returned when the token carries no usable subject.
	ErrMissingSubject = errors.New("token missing subject")
)

// TokenService issues and verifies HMAC-SHA256 signed bearer tokens.
// The secret is process-wide and loaded once at startup; rotating it
// invalidates every outstanding token. There is no revocation list, so a
// token stays valid for its full TTL.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs a token for subject expiring after ttl. A zero ttl uses
// DefaultTokenTTL; a negative ttl produces an already-expired token.
func (s *TokenService) Issue(subject uuid.UUID, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   subject.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks the signature and expiry of tokenString and returns the
// subject user ID. Signature validity is established before any claim is
// trusted; when both signature and expiry fail, signature mismatch wins.
func (s *TokenService) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadSignature
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrBadSignature), errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return uuid.Nil, ErrBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return uuid.Nil, ErrExpired
		default:
			return uuid.Nil, ErrMalformed
		}
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return uuid.Nil, ErrMalformed
	}
	if claims.Subject == "" {
		return uuid.Nil, ErrMissingSubject
	}
	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrMissingSubject
	}
	return subject, nil
}
