package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/nlitvin/pytrail/internal/models"
	"github.com/nlitvin/pytrail/internal/services"
)

// SQLiteStore is the single relational store backing users and progress. It
// implements services.AuthStore and services.ProgressStore.
type SQLiteStore struct {
	db *sql.DB
}

// OpenDSN builds the sqlite DSN for path, with a busy timeout so concurrent
// writers queue instead of failing immediately.
func OpenDSN(path string) string {
	return fmt.Sprintf("file:%s?cache=shared&_busy_timeout=5000&_foreign_keys=1", filepath.ToSlash(path))
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, stmt := range pragmas {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

func isUniqueViolation(err error) bool {
	var serr sqlite3.Error
	return errors.As(err, &serr) && serr.ExtendedCode == sqlite3.ErrConstraintUnique
}

func (s *SQLiteStore) CreateUser(ctx context.Context, u *models.User) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		u.Username, u.Email, u.PasswordHash, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return services.ErrDuplicateUser
		}
		return fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("user insert id: %w", err)
	}
	u.ID = id
	return nil
}

func (s *SQLiteStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, created_at FROM users WHERE username = ?`,
		username)
	return scanUser(row)
}

func (s *SQLiteStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, created_at FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

// ListUsers returns all accounts ordered by id. Used by the useradmin CLI.
func (s *SQLiteStore) ListUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, username, email, password_hash, created_at FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []*models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

// DeleteUserByUsername removes the account and, through the cascade, its
// progress rows. Returns false when no such user exists.
func (s *SQLiteStore) DeleteUserByUsername(ctx context.Context, username string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE username = ?`, username)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete user rows: %w", err)
	}
	return n > 0, nil
}

func (s *SQLiteStore) UpsertProgress(ctx context.Context, rec *models.ProgressRecord) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO progress (user_id, module_id, completed, score, time_spent_sec, last_accessed)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(user_id, module_id) DO UPDATE SET
    completed      = excluded.completed,
    score          = excluded.score,
    time_spent_sec = excluded.time_spent_sec,
    last_accessed  = excluded.last_accessed`,
		rec.UserID, rec.ModuleID, boolToInt64(rec.Completed), rec.Score, rec.TimeSpentSec, rec.LastAccessed)
	if err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListProgressByUser(ctx context.Context, userID int64) ([]*models.ProgressRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT user_id, module_id, completed, score, time_spent_sec, last_accessed
FROM progress WHERE user_id = ? ORDER BY module_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	defer rows.Close()

	var out []*models.ProgressRecord
	for rows.Next() {
		var rec models.ProgressRecord
		var completed int64
		var last time.Time
		if err := rows.Scan(&rec.UserID, &rec.ModuleID, &completed, &rec.Score, &rec.TimeSpentSec, &last); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		rec.Completed = int64ToBool(completed)
		rec.LastAccessed = last
		out = append(out, &rec)
	}
	return out, rows.Err()
}

func boolToInt64(v bool) int64 {
	if v {
		return 1
	}
	return 0
}

func int64ToBool(v int64) bool { return v != 0 }

var (
	_ services.AuthStore     = (*SQLiteStore)(nil)
	_ services.ProgressStore = (*SQLiteStore)(nil)
)
