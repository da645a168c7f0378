// Package repo keeps per client preferences in redis or in process memory
package repo

import (
	"context"
	"sync"
	"time"

	perr "layoffs/internal/platform/errors"
	"layoffs/internal/platform/store"
)

// DefaultTTL keeps a preference for a year after the last write
const DefaultTTL = 365 * 24 * time.Hour

// Repo stores one language tag per client
type Repo interface {
	Language(ctx context.Context, clientID string) (lang string, ok bool, err error)
	SetLanguage(ctx context.Context, clientID, lang string) error
}

func langKey(clientID string) string { return "pref:lang:" + clientID }

type kvRepo struct {
	kv  store.KV
	ttl time.Duration
}

// NewKV stores preferences in the key value seam, ttl <= 0 uses DefaultTTL
func NewKV(kv store.KV, ttl time.Duration) Repo {
	if kv == nil {
		panic("preferences.NewKV requires a non nil KV")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &kvRepo{kv: kv, ttl: ttl}
}

func (r *kvRepo) Language(ctx context.Context, clientID string) (string, bool, error) {
	v, ok, err := r.kv.Get(ctx, langKey(clientID))
	if err != nil {
		return "", false, perr.Wrap(err, perr.ErrorCodeUnavailable, "read language preference")
	}
	return v, ok, nil
}

func (r *kvRepo) SetLanguage(ctx context.Context, clientID, lang string) error {
	err := r.kv.Set(ctx, langKey(clientID), lang, r.ttl)
	return perr.WrapIf(err, perr.ErrorCodeUnavailable, "write language preference")
}

// Memory is the fallback when redis is not configured; entries never expire
type Memory struct {
	mu    sync.RWMutex
	langs map[string]string
}

// NewMemory returns an empty in process repo
func NewMemory() *Memory { return &Memory{langs: make(map[string]string)} }

// Language implements Repo
func (m *Memory) Language(_ context.Context, clientID string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.langs[clientID]
	return v, ok, nil
}

// SetLanguage implements Repo
func (m *Memory) SetLanguage(_ context.Context, clientID, lang string) error {
	m.mu.Lock()
	m.langs[clientID] = lang
	m.mu.Unlock()
	return nil
}
