// Package kvstore is the key-value system of record: scalar values, hashes,
// sets and counters addressed by string keys, with optional per-key TTL.
//
// Absent keys are not errors: reads return zero values and ok=false.
package kvstore

import (
	"context"
	"errors"
	"time"
)

var ErrEmptyKey = errors.New("kvstore: empty key")

// Store is the minimal command set the repositories rely on. Semantics mirror
// the classic get/set/hset/hgetall/sadd/srem/smembers/del/expire/incrby family.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes a scalar value. ttl <= 0 keeps the key forever.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Del removes keys and returns how many existed.
	Del(ctx context.Context, keys ...string) (int, error)

	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HIncrBy(ctx context.Context, key, field string, delta int64) (int64, error)

	SAdd(ctx context.Context, key string, members ...string) error
	SRem(ctx context.Context, key string, members ...string) error
	SMembers(ctx context.Context, key string) ([]string, error)

	IncrBy(ctx context.Context, key string, delta int64) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// Atomic applies every op or none of them.
	Atomic(ctx context.Context, ops ...Op) error
}

type opKind int

const (
	opSet opKind = iota
	opHSet
	opDel
	opSAdd
	opSRem
)

// Op is one write inside an Atomic batch. A key may appear only once per batch.
type Op struct {
	kind    opKind
	key     string
	value   string
	fields  map[string]string
	members []string
	ttl     time.Duration
}

func SetOp(key, value string, ttl time.Duration) Op {
	return Op{kind: opSet, key: key, value: value, ttl: ttl}
}

func HSetOp(key string, fields map[string]string) Op {
	return Op{kind: opHSet, key: key, fields: fields}
}

func DelOp(key string) Op {
	return Op{kind: opDel, key: key}
}

func SAddOp(key string, members ...string) Op {
	return Op{kind: opSAdd, key: key, members: members}
}

func SRemOp(key string, members ...string) Op {
	return Op{kind: opSRem, key: key, members: members}
}

func (o Op) Key() string { return o.key }

func validateOps(ops []Op) error {
	seen := make(map[string]struct{}, len(ops))
	for _, op := range ops {
		if op.key == "" {
			return ErrEmptyKey
		}
		if _, dup := seen[op.key]; dup {
			return errors.New("kvstore: key " + op.key + " appears twice in one atomic batch")
		}
		seen[op.key] = struct{}{}
	}
	return nil
}
