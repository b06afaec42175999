package session

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const CookieName = "pytrail_session"

// Options carry the deployment-dependent cookie and lifetime settings,
// selected once at startup.
type Options struct {
	TTL          time.Duration
	SigningKey   []byte
	CookieSecure bool
	CookieDomain string
	SameSite     http.SameSite
}

// Manager issues, resolves and destroys sessions. The cookie value is an
// HS256 token wrapping the opaque session id, so a tampered cookie is
// rejected before the store is consulted.
type Manager struct {
	store Store
	opts  Options
	now   func() time.Time
}

type cookieClaims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

func NewManager(store Store, opts Options) *Manager {
	if opts.TTL <= 0 {
		opts.TTL = 24 * time.Hour
	}
	if len(opts.SigningKey) == 0 {
		opts.SigningKey = []byte("pytrail-dev-secret")
	}
	if opts.SameSite == 0 {
		opts.SameSite = http.SameSiteLaxMode
	}
	return &Manager{
		store: store,
		opts:  opts,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func newSID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Issue creates a fresh session for the user and sets the signed cookie.
func (m *Manager) Issue(ctx context.Context, w http.ResponseWriter, userID int64, username string) (*Record, error) {
	now := m.now()
	rec := &Record{
		SID:       newSID(),
		UserID:    userID,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(m.opts.TTL),
	}
	if err := m.store.Save(ctx, rec); err != nil {
		return nil, err
	}
	if err := m.setCookie(w, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Regenerate discards whatever session the request carries and issues a new
// one, so a pre-login session id never survives authentication.
func (m *Manager) Regenerate(ctx context.Context, w http.ResponseWriter, r *http.Request, userID int64, username string) (*Record, error) {
	if old, err := m.Resolve(ctx, r); err == nil && old != nil {
		_ = m.store.Delete(ctx, old.SID)
	}
	return m.Issue(ctx, w, userID, username)
}

// Resolve returns the live session for the request, or (nil, nil) when the
// request carries no valid session. Store failures are returned as errors.
func (m *Manager) Resolve(ctx context.Context, r *http.Request) (*Record, error) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return nil, nil
	}
	sid, ok := m.verifyCookie(c.Value)
	if !ok {
		return nil, nil
	}
	return m.store.Get(ctx, sid)
}

// Touch slides the expiry forward and re-sets the cookie. Called on activity
// so active users are not logged out mid-session.
func (m *Manager) Touch(ctx context.Context, w http.ResponseWriter, rec *Record) error {
	rec.ExpiresAt = m.now().Add(m.opts.TTL)
	if err := m.store.Save(ctx, rec); err != nil {
		return err
	}
	return m.setCookie(w, rec)
}

// Destroy removes the server-side record and expires the client cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var storeErr error
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		if sid, ok := m.verifyCookie(c.Value); ok {
			storeErr = m.store.Delete(ctx, sid)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Domain:   m.opts.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.opts.CookieSecure,
		SameSite: m.opts.SameSite,
	})
	return storeErr
}

func (m *Manager) setCookie(w http.ResponseWriter, rec *Record) error {
	token, err := m.signSID(rec.SID, rec.ExpiresAt)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Domain:   m.opts.CookieDomain,
		Expires:  rec.ExpiresAt,
		HttpOnly: true,
		Secure:   m.opts.CookieSecure,
		SameSite: m.opts.SameSite,
	})
	return nil
}

func (m *Manager) signSID(sid string, expires time.Time) (string, error) {
	claims := cookieClaims{
		SID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(m.now()),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.opts.SigningKey)
}

func (m *Manager) verifyCookie(value string) (string, bool) {
	t, err := jwt.ParseWithClaims(value, &cookieClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.opts.SigningKey, nil
	})
	if err != nil {
		return "", false
	}
	c, ok := t.Claims.(*cookieClaims)
	if !ok || !t.Valid || c.SID == "" {
		return "", false
	}
	return c.SID, true
}
