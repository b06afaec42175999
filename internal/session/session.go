// Package session implements server-side sessions referenced by a signed
// HTTP-only cookie. The cookie carries only a signed opaque identifier; the
// authenticated identity lives in the store.
package session

import (
	"context"
	"time"
)

// Record is the server-side session state for one authenticated user.
type Record struct {
	SID       string    `json:"sid"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (r *Record) expiredAt(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// Store persists session records. Get returns (nil, nil) when no live record
// exists for sid; expired records count as absent.
type Store interface {
	Get(ctx context.Context, sid string) (*Record, error)
	Save(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, sid string) error
	Close() error
}
