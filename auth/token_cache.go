/*
 * Copyright 2025 filmoteca.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package auth provides the token cache collaborator and password hashing.
// The persistence core only depends on the cache's validity contract; the
// transport layer owns when tokens are checked.
package auth

import (
	"fmt"
	"sync"
	"time"

	"github.com/filmoteca/catalog/database"
	"github.com/filmoteca/catalog/utils"
)

// TokenTTL is how long a cached token stays valid after it was issued. Past
// it, a lookup treats the entry as absent and forces re-resolution.
const TokenTTL = 1200 * time.Second

// TokenInfo describes a resolved token.
type TokenInfo struct {
	IssuedAt     time.Time `json:"issued_at"`
	SubjectID    int64     `json:"subject_id"`
	SubjectEmail string    `json:"subject_email"`
}

// Resolver looks a token up at its source of truth, typically the session
// store of the upstream identity service.
type Resolver func(token, clientKey string) (*TokenInfo, error)

// TokenCache keeps resolved tokens for TokenTTL. A configured forced
// token/client-key pair is always accepted, which lets a trusted peer backend
// call in without a session of its own.
type TokenCache struct {
	mu      sync.Mutex
	entries map[string]*TokenInfo
	resolve Resolver
	cfg     database.AuthConfig
	logger  *utils.Logger
	now     func() time.Time
}

// NewTokenCache constructs a cache using the given resolver and auth config.
func NewTokenCache(resolver Resolver, cfg database.AuthConfig) *TokenCache {
	return &TokenCache{
		entries: make(map[string]*TokenInfo),
		resolve: resolver,
		cfg:     cfg,
		logger:  utils.NewLogger("AUTH"),
		now:     time.Now,
	}
}

func cacheKey(token, clientKey string) string {
	return token + ":" + clientKey
}

// IsValid reports whether the token/client-key pair is currently acceptable:
// the forced pair, a live cache entry, or a token the resolver accepts.
func (c *TokenCache) IsValid(token, clientKey string) bool {
	if c.isForcedValid(token, clientKey) {
		return true
	}
	if _, ok := c.cached(token, clientKey); ok {
		return true
	}
	_, err := c.Resolve(token, clientKey)
	return err == nil
}

// Resolve returns the token's info, re-resolving through the source of truth
// when the cache entry is missing or older than TokenTTL.
func (c *TokenCache) Resolve(token, clientKey string) (*TokenInfo, error) {
	if c.isForcedValid(token, clientKey) {
		info := &TokenInfo{IssuedAt: c.now(), SubjectEmail: c.cfg.ForcedClientKey}
		c.store(token, clientKey, info)
		return info, nil
	}
	if info, ok := c.cached(token, clientKey); ok {
		return info, nil
	}
	if c.resolve == nil {
		return nil, fmt.Errorf("no token resolver configured")
	}
	info, err := c.resolve(token, clientKey)
	if err != nil {
		c.logger.Warn("token resolution failed: ", err)
		return nil, err
	}
	if info.IssuedAt.IsZero() {
		info.IssuedAt = c.now()
	}
	c.store(token, clientKey, info)
	return info, nil
}

// Evict drops the cache entry for a token/client-key pair.
func (c *TokenCache) Evict(token, clientKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, cacheKey(token, clientKey))
}

// Len returns the number of live entries, expiring stale ones first.
func (c *TokenCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for key, info := range c.entries {
		if now.Sub(info.IssuedAt) >= TokenTTL {
			delete(c.entries, key)
		}
	}
	return len(c.entries)
}

func (c *TokenCache) isForcedValid(token, clientKey string) bool {
	return c.cfg.ForcedToken != "" &&
		c.cfg.ForcedClientKey != "" &&
		token == c.cfg.ForcedToken &&
		clientKey == c.cfg.ForcedClientKey
}

func (c *TokenCache) cached(token, clientKey string) (*TokenInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := cacheKey(token, clientKey)
	info, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(info.IssuedAt) >= TokenTTL {
		delete(c.entries, key)
		return nil, false
	}
	return info, true
}

func (c *TokenCache) store(token, clientKey string, info *TokenInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(token, clientKey)] = info
}
