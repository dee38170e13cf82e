// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
)

// tokenEntropyBytes is the number of random bytes behind every issued token.
const tokenEntropyBytes = 32

// TokenRegistry is the process-wide table of issued bearer tokens. It maps
// each opaque token string to the id of the user it was issued to.
//
// Tokens live only in process memory: the table is created at process start,
// cleared at shutdown, and lost on restart, which is the only way a token is
// ever invalidated. Membership in the table is the sole proof of
// authentication. A multi-instance deployment would need an external shared
// store instead.
//
// All methods are safe for concurrent use.
type TokenRegistry struct {
	mu     sync.RWMutex
	tokens map[string]int64
}

// NewTokenRegistry constructs an empty token table.
func NewTokenRegistry() *TokenRegistry {
	return &TokenRegistry{
		tokens: make(map[string]int64),
	}
}

// Issue generates a fresh high-entropy URL-safe token and records it for the
// given user. Collisions are not checked: with 256 bits of entropy a repeat
// is not a practical concern.
func (r *TokenRegistry) Issue(userID int64) (string, error) {
	buf := make([]byte, tokenEntropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	r.mu.Lock()
	r.tokens[token] = userID
	r.mu.Unlock()

	return token, nil
}

// Lookup reports the user id a token was issued to, if the token is known.
func (r *TokenRegistry) Lookup(token string) (int64, bool) {
	r.mu.RLock()
	userID, ok := r.tokens[token]
	r.mu.RUnlock()

	return userID, ok
}

// Reset drops every issued token. Called at shutdown; also handy in tests.
func (r *TokenRegistry) Reset() {
	r.mu.Lock()
	r.tokens = make(map[string]int64)
	r.mu.Unlock()
}
