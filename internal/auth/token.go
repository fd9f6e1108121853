package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// CookieName is the cookie carrying the session token.
const CookieName = "airbook_session"

// DefaultTokenTTL bounds how long an issued session stays valid.
const DefaultTokenTTL = 24 * time.Hour

type sessionClaims struct {
	Session
	jwt.RegisteredClaims
}

// IssueToken signs a session into a compact JWT. The token is the only
// session state the server hands out; everything else is derived from it
// per request.
func IssueToken(sess Session, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Session: sess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.Identifier(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "signing session token")
	}
	return signed, nil
}

// ParseToken validates a session token and recovers the Session inside.
func ParseToken(raw string, secret []byte) (*Session, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parsing session token")
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}
	if _, ok := ParseRole(string(claims.Role)); !ok {
		return nil, errors.Errorf("unknown session role %q", claims.Role)
	}
	return &claims.Session, nil
}
