package session

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// MemoryStore keeps sessions in process memory, bounded by an LRU so an
// abandoned deployment cannot grow without limit. Expiry is checked on read.
// This is the default backend; restarts log everyone out.
type MemoryStore struct {
	cache *lru.Cache
	now   func() time.Time
}

const DefaultMaxSessions = 10000

func NewMemoryStore(maxSessions int) (*MemoryStore, error) {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	cache, err := lru.New(maxSessions)
	if err != nil {
		return nil, err
	}
	return &MemoryStore{
		cache: cache,
		now:   func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *MemoryStore) Get(_ context.Context, sid string) (*Record, error) {
	v, ok := s.cache.Get(sid)
	if !ok {
		return nil, nil
	}
	rec := v.(*Record)
	if rec.expiredAt(s.now()) {
		s.cache.Remove(sid)
		return nil, nil
	}
	copy := *rec
	return &copy, nil
}

func (s *MemoryStore) Save(_ context.Context, rec *Record) error {
	copy := *rec
	s.cache.Add(rec.SID, &copy)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sid string) error {
	s.cache.Remove(sid)
	return nil
}

func (s *MemoryStore) Close() error {
	s.cache.Purge()
	return nil
}

var _ Store = (*MemoryStore)(nil)
