// Package authsession implements the in-memory session map and JWT
// minting/validation behind the auth greeter (spec §4.1), grounded on
// original_source/server_apps/web_server/src/user_auth.rs's UserSessions.
package authsession

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/jaconsta/rag-gallery/pkg/apperror"
)

const (
	hashSeed           = 0xdead_cafe
	sessionNonceLen    = 16
	jwtSecretLen       = 32
	alphanumericRunes  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	jwtAudience        = "jaconsta"
	jwtSubject         = "me@jaconsta.com"
)

// Claims is the exact claim set issued by Manager.Mint; exp is a real
// unix timestamp (the original Rust source hardcodes a broken constant
// here — fixed per spec §9).
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Manager owns the process-lifetime JWT secret and the session map
// linking an auth_id (hash of the session nonce) to the user_id the
// client authenticated as.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uint64]string
	timers   map[uint64]*time.Timer
	secret   []byte
	ttl      time.Duration
}

// NewManager creates a Manager with a fresh random JWT secret, valid
// for this process's lifetime only — restarting the service invalidates
// every outstanding token.
func NewManager(ttl time.Duration) (*Manager, error) {
	secret, err := randomAlphanumeric(jwtSecretLen)
	if err != nil {
		return nil, apperror.New(apperror.AuthCrypto, "NewManager", err)
	}
	return &Manager{
		sessions: make(map[uint64]string),
		timers:   make(map[uint64]*time.Timer),
		secret:   []byte(secret),
		ttl:      ttl,
	}, nil
}

// CreateSession hashes userCode into a user_id, mints a random session
// nonce, stores auth_id(nonce) -> user_id, schedules TTL eviction, and
// returns the signed JWT the client should use for subsequent calls.
func (m *Manager) CreateSession(userCode string) (token string, err error) {
	sessionNonce, err := randomAlphanumeric(sessionNonceLen)
	if err != nil {
		return "", apperror.New(apperror.AuthCrypto, "CreateSession", err)
	}

	userID := HashUserCode(userCode)
	authID := hashSessionNonce(sessionNonce)

	m.mu.Lock()
	m.sessions[authID] = userID
	m.scheduleEviction(authID)
	m.mu.Unlock()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{jwtAudience},
			Subject:   jwtSubject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
		},
		UserID: sessionNonce,
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", apperror.New(apperror.AuthCrypto, "CreateSession", err)
	}
	return signed, nil
}

// Validate parses and verifies a JWT, then resolves its session nonce
// to the stored user_id. Returns apperror.AuthSessionMissing if the
// session has expired or was evicted.
func (m *Manager) Validate(token string) (userID string, err error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithAudience(jwtAudience),
		jwt.WithSubject(jwtSubject),
	)
	if err != nil {
		return "", apperror.New(apperror.AuthSessionMissing, "Validate", err)
	}
	if !parsed.Valid {
		return "", apperror.New(apperror.AuthSessionMissing, "Validate", fmt.Errorf("token not valid"))
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return "", apperror.New(apperror.AuthSessionMissing, "Validate", fmt.Errorf("unexpected claims type"))
	}

	authID := hashSessionNonce(claims.UserID)

	m.mu.RLock()
	userID, found := m.sessions[authID]
	m.mu.RUnlock()
	if !found {
		return "", apperror.New(apperror.AuthSessionMissing, "Validate", fmt.Errorf("session not found"))
	}
	return userID, nil
}

// TTL returns the session lifetime this Manager was configured with, so
// callers can report an expires_at alongside a minted token.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Logout removes a session immediately, canceling its eviction timer.
func (m *Manager) Logout(token string) error {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, &Claims{})
	if err != nil {
		return apperror.New(apperror.AuthSessionMissing, "Logout", err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return apperror.New(apperror.AuthSessionMissing, "Logout", fmt.Errorf("unexpected claims type"))
	}

	authID := hashSessionNonce(claims.UserID)

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, authID)
	if timer, ok := m.timers[authID]; ok {
		timer.Stop()
		delete(m.timers, authID)
	}
	return nil
}

// scheduleEviction must be called with m.mu held.
func (m *Manager) scheduleEviction(authID uint64) {
	if existing, ok := m.timers[authID]; ok {
		existing.Stop()
	}
	m.timers[authID] = time.AfterFunc(m.ttl, func() {
		m.mu.Lock()
		delete(m.sessions, authID)
		delete(m.timers, authID)
		m.mu.Unlock()
	})
}

// HashUserCode derives the stable, storable user_id from a raw user
// code using the same seeded xxHash64 as the session-nonce hash.
func HashUserCode(userCode string) string {
	return fmt.Sprintf("%x", hashSeeded(userCode))
}

func hashSessionNonce(nonce string) uint64 {
	return hashSeeded(nonce)
}

// hashSeeded mixes the fixed seed into the digest before the payload,
// since cespare/xxhash/v2 exposes the unseeded XXH64 variant only.
func hashSeeded(s string) uint64 {
	d := xxhash.New()
	var seedBuf [8]byte
	binary.BigEndian.PutUint64(seedBuf[:], hashSeed)
	d.Write(seedBuf[:])
	d.WriteString(s)
	return d.Sum64()
}

func randomAlphanumeric(n int) (string, error) {
	out := make([]byte, n)
	max := big.NewInt(int64(len(alphanumericRunes)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = alphanumericRunes[idx.Int64()]
	}
	return string(out), nil
}
