package kvstore

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"
)

var ErrWrongType = errors.New("kvstore: operation against a key holding the wrong kind of value")

type memEntry struct {
	scalar    *string
	hash      map[string]string
	set       map[string]struct{}
	expiresAt time.Time
}

func (e *memEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryStore is an in-process Store used for local development and tests.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]*memEntry
	now  func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]*memEntry{}, now: time.Now}
}

// SetClock overrides the clock used for TTL evaluation.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// lookup returns the live entry for key, reaping it if expired. Caller holds mu.
func (s *MemoryStore) lookup(key string) *memEntry {
	e, ok := s.data[key]
	if !ok {
		return nil
	}
	if e.expired(s.now()) {
		delete(s.data, key)
		return nil
	}
	return e
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.lookup(key)
	if e == nil {
		return "", false, nil
	}
	if e.scalar == nil {
		return "", false, ErrWrongType
	}
	return *e.scalar, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if key == "" {
		return ErrEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLocked(key, value, ttl)
	return nil
}

func (s *MemoryStore) setLocked(key, value string, ttl time.Duration) {
	e := &memEntry{scalar: &value}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.data[key] = e
}

func (s *MemoryStore) Del(_ context.Context, keys ...string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, k := range keys {
		if s.lookup(k) != nil {
			delete(s.data, k)
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) HSet(_ context.Context, key string, fields map[string]string) error {
	if key == "" {
		return ErrEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hsetLocked(key, fields)
}

func (s *MemoryStore) hsetLocked(key string, fields map[string]string) error {
	e := s.lookup(key)
	if e == nil {
		e = &memEntry{hash: map[string]string{}}
		s.data[key] = e
	}
	if e.hash == nil {
		return ErrWrongType
	}
	for f, v := range fields {
		e.hash[f] = v
	}
	return nil
}

func (s *MemoryStore) HGetAll(_ context.Context, key string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.lookup(key)
	if e == nil {
		return map[string]string{}, nil
	}
	if e.hash == nil {
		return nil, ErrWrongType
	}
	out := make(map[string]string, len(e.hash))
	for f, v := range e.hash {
		out[f] = v
	}
	return out, nil
}

func (s *MemoryStore) HIncrBy(_ context.Context, key, field string, delta int64) (int64, error) {
	if key == "" {
		return 0, ErrEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.lookup(key)
	if e == nil {
		e = &memEntry{hash: map[string]string{}}
		s.data[key] = e
	}
	if e.hash == nil {
		return 0, ErrWrongType
	}
	cur := int64(0)
	if raw, ok := e.hash[field]; ok {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, ErrWrongType
		}
		cur = v
	}
	cur += delta
	e.hash[field] = strconv.FormatInt(cur, 10)
	return cur, nil
}

func (s *MemoryStore) SAdd(_ context.Context, key string, members ...string) error {
	if key == "" {
		return ErrEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saddLocked(key, members)
}

func (s *MemoryStore) saddLocked(key string, members []string) error {
	e := s.lookup(key)
	if e == nil {
		e = &memEntry{set: map[string]struct{}{}}
		s.data[key] = e
	}
	if e.set == nil {
		return ErrWrongType
	}
	for _, m := range members {
		e.set[m] = struct{}{}
	}
	return nil
}

func (s *MemoryStore) SRem(_ context.Context, key string, members ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sremLocked(key, members)
}

func (s *MemoryStore) sremLocked(key string, members []string) error {
	e := s.lookup(key)
	if e == nil {
		return nil
	}
	if e.set == nil {
		return ErrWrongType
	}
	for _, m := range members {
		delete(e.set, m)
	}
	if len(e.set) == 0 {
		delete(s.data, key)
	}
	return nil
}

// SMembers returns members sorted so callers get a stable order.
func (s *MemoryStore) SMembers(_ context.Context, key string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.lookup(key)
	if e == nil {
		return []string{}, nil
	}
	if e.set == nil {
		return nil, ErrWrongType
	}
	out := make([]string, 0, len(e.set))
	for m := range e.set {
		out = append(out, m)
	}
	sort.Strings(out)
	return out, nil
}

func (s *MemoryStore) IncrBy(_ context.Context, key string, delta int64) (int64, error) {
	if key == "" {
		return 0, ErrEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.lookup(key)
	cur := int64(0)
	if e != nil {
		if e.scalar == nil {
			return 0, ErrWrongType
		}
		v, err := strconv.ParseInt(*e.scalar, 10, 64)
		if err != nil {
			return 0, ErrWrongType
		}
		cur = v
	}
	cur += delta
	v := strconv.FormatInt(cur, 10)
	if e != nil {
		e.scalar = &v
	} else {
		s.data[key] = &memEntry{scalar: &v}
	}
	return cur, nil
}

func (s *MemoryStore) Expire(_ context.Context, key string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.lookup(key)
	if e == nil {
		return nil
	}
	if ttl <= 0 {
		delete(s.data, key)
		return nil
	}
	e.expiresAt = s.now().Add(ttl)
	return nil
}

// Atomic validates every op against the current state before applying any.
func (s *MemoryStore) Atomic(_ context.Context, ops ...Op) error {
	if err := validateOps(ops); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, op := range ops {
		e := s.lookup(op.key)
		if e == nil {
			continue
		}
		switch op.kind {
		case opHSet:
			if e.hash == nil {
				return ErrWrongType
			}
		case opSAdd, opSRem:
			if e.set == nil {
				return ErrWrongType
			}
		}
	}

	for _, op := range ops {
		switch op.kind {
		case opSet:
			s.setLocked(op.key, op.value, op.ttl)
		case opHSet:
			_ = s.hsetLocked(op.key, op.fields)
		case opDel:
			delete(s.data, op.key)
		case opSAdd:
			_ = s.saddLocked(op.key, op.members)
		case opSRem:
			_ = s.sremLocked(op.key, op.members)
		}
	}
	return nil
}
