package search

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const StateCookieName = "search_state"

var ErrInvalidState = errors.New("search: invalid navigation state")

// stateClaims carries a filter from the selection page to the results page.
type stateClaims struct {
	Filter Filter `json:"filter"`
	jwt.RegisteredClaims
}

// StateCodec signs and verifies the navigation state with HS256.
type StateCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewStateCodec(secret string, ttl time.Duration) *StateCodec {
	return &StateCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (c *StateCodec) TTL() time.Duration {
	return c.ttl
}

func (c *StateCodec) Encode(f Filter) (string, error) {
	now := c.now()
	claims := stateClaims{
		Filter: f,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			Subject:   "search",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign search state: %w", err)
	}
	return signed, nil
}

func (c *StateCodec) Decode(tokenString string) (Filter, error) {
	claims := &stateClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return Filter{}, ErrInvalidState
	}
	if err := claims.Filter.RequireLocation(); err != nil {
		return Filter{}, ErrInvalidState
	}
	return claims.Filter, nil
}
