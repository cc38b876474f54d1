package session

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "appshell"

// VisitorClaims is the payload of a visitor cookie
type VisitorClaims struct {
	jwt.RegisteredClaims
	VisitorID string `json:"vid"`
}

// Manager issues and verifies signed visitor tokens
type Manager struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

// NewManager creates a manager. An empty secret generates a random key, so
// cookies do not survive a restart.
func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if ttl <= 0 {
		return nil, errors.New("session TTL must be positive")
	}
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("failed to generate signing key: %w", err)
		}
	}
	return &Manager{signingKey: key, ttl: ttl, now: time.Now}, nil
}

// TTL returns the lifetime of issued tokens
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// NewVisitor creates a fresh visitor ID and its signed token
func (m *Manager) NewVisitor() (visitorID, token string, err error) {
	visitorID = uuid.NewString()
	token, err = m.Issue(visitorID)
	if err != nil {
		return "", "", err
	}
	return visitorID, token, nil
}

// Issue signs a token for an existing visitor ID
func (m *Manager) Issue(visitorID string) (string, error) {
	if _, err := uuid.Parse(visitorID); err != nil {
		return "", fmt.Errorf("invalid visitor ID: %w", err)
	}
	now := m.now()
	claims := VisitorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		VisitorID: visitorID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.signingKey)
}

// Verify validates a token and returns its visitor ID
func (m *Manager) Verify(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.New("visitor token is required")
	}

	token, err := jwt.ParseWithClaims(trimmed, &VisitorClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.signingKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(m.now))
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*VisitorClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid visitor token")
	}
	if _, err := uuid.Parse(claims.VisitorID); err != nil {
		return "", fmt.Errorf("invalid visitor ID in token: %w", err)
	}
	return claims.VisitorID, nil
}
