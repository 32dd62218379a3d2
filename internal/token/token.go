// Package token issues and verifies the signed bearer credentials used by
// the API. Tokens are stateless: nothing is stored server-side and there is
// no revocation list, so a minted token stays valid until its expiry even if
// the user's role changes afterwards.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ypamc/restaurant-backend/internal/core/domain"
)

var (
	// ErrExpired means the token was well-formed and correctly signed but
	// its expiry has passed.
	ErrExpired = errors.New("token expired")
	// ErrInvalid covers every other verification failure: malformed token,
	// wrong signing algorithm, or a signature that does not match the
	// configured secret.
	ErrInvalid = errors.New("invalid token")
)

// Claims is the payload carried by every issued token: registered claims
// plus the user snapshot frozen at login time.
type Claims struct {
	User domain.Snapshot `json:"user"`
	jwt.RegisteredClaims
}

// Manager signs and verifies tokens with a process-wide HS256 secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager returns a Manager. The secret must be non-empty; config
// enforces this at startup so an unsigned deployment cannot boot.
func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token for the given identity snapshot.
func (m *Manager) Issue(user domain.Snapshot) (string, error) {
	now := time.Now()
	claims := Claims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses and validates a token string. It is a pure function of the
// token, the current time and the configured secret. Expiry is reported as
// ErrExpired, every other failure as ErrInvalid.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !parsed.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
