package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/nlitvin/pytrail/internal/models"
	"github.com/nlitvin/pytrail/internal/services"
	"github.com/nlitvin/pytrail/internal/session"
)

// UserDirectory looks up accounts for the current-user endpoint.
type UserDirectory interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

type Router struct {
	auth        *services.AuthService
	catalog     *services.CatalogService
	progress    *services.ProgressService
	sessions    *session.Manager
	users       UserDirectory
	environment string
	now         func() time.Time
}

func NewRouter(auth *services.AuthService, cat *services.CatalogService, progress *services.ProgressService, sessions *session.Manager, users UserDirectory, environment string) *Router {
	return &Router{
		auth:        auth,
		catalog:     cat,
		progress:    progress,
		sessions:    sessions,
		users:       users,
		environment: environment,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (rt *Router) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/auth/register", rt.handleRegister) // POST
	mux.HandleFunc("/api/auth/login", rt.handleLogin)       // POST
	mux.HandleFunc("/api/auth/logout", rt.handleLogout)     // POST
	mux.HandleFunc("/api/auth/me", rt.handleMe)             // GET
	mux.HandleFunc("/api/modules", rt.handleModules)        // GET
	mux.HandleFunc("/api/modules/", rt.handleModuleScoped)  // GET /api/modules/{id}
	mux.HandleFunc("/api/progress", rt.handleProgress)      // GET, POST
	mux.HandleFunc("/api/health", rt.handleHealth)          // GET
	mux.HandleFunc("/api/", rt.handleUnknown)
}

// POST /api/auth/register — create the account and start a session for it.
func (rt *Router) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, services.NewInvalidError("invalid request body"))
		return
	}
	u, err := rt.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if _, err := rt.sessions.Issue(r.Context(), w, u.ID, u.Username); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u.Public())
}

// POST /api/auth/login — verify credentials, then regenerate the session id
// so a pre-login session cannot be fixed onto the authenticated user.
func (rt *Router) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, services.NewInvalidError("invalid request body"))
		return
	}
	u, err := rt.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if _, err := rt.sessions.Regenerate(r.Context(), w, r, u.ID, u.Username); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u.Public())
}

// POST /api/auth/logout
func (rt *Router) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}
	if _, ok := rt.requireSession(w, r); !ok {
		return
	}
	if err := rt.sessions.Destroy(r.Context(), w, r); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// GET /api/auth/me — return the authenticated identity and refresh the
// session expiry as a side effect.
func (rt *Router) handleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	rec, ok := rt.requireSession(w, r)
	if !ok {
		return
	}
	u, err := rt.users.GetUser(r.Context(), rec.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if u == nil {
		// account removed out of band; the session is orphaned
		_ = rt.sessions.Destroy(r.Context(), w, r)
		writeUnauthorized(w)
		return
	}
	if err := rt.sessions.Touch(r.Context(), w, rec); err != nil {
		slog.Error("touch session", "err", err)
	}
	writeJSON(w, http.StatusOK, u.Public())
}

// GET /api/modules — ordered summaries, metadata only.
func (rt *Router) handleModules(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, rt.catalog.ListModules())
}

// GET /api/modules/{id} — full content payload.
func (rt *Router) handleModuleScoped(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/api/modules/")
	id, err := strconv.Atoi(rest)
	if err != nil {
		writeError(w, r, services.NewNotFoundError("module not found"))
		return
	}
	m, err := rt.catalog.GetModule(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// GET|POST /api/progress
func (rt *Router) handleProgress(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		rt.handleGetProgress(w, r)
	case http.MethodPost:
		rt.handleSaveProgress(w, r)
	default:
		writeMethodNotAllowed(w)
	}
}

func (rt *Router) handleSaveProgress(w http.ResponseWriter, r *http.Request) {
	rec, ok := rt.requireSession(w, r)
	if !ok {
		return
	}
	var req struct {
		ModuleID  int  `json:"moduleId"`
		Completed bool `json:"completed"`
		Score     int  `json:"score"`
		TimeSpent int  `json:"timeSpent"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, services.NewInvalidError("invalid request body"))
		return
	}
	if err := rt.progress.Save(r.Context(), rec.UserID, req.ModuleID, req.Completed, req.Score, req.TimeSpent); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "progress saved"})
}

func (rt *Router) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	rec, ok := rt.requireSession(w, r)
	if !ok {
		return
	}
	views, err := rt.progress.List(r.Context(), rec.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// GET /api/health
func (rt *Router) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"environment": rt.environment,
		"timestamp":   rt.now().Format(time.RFC3339),
	})
}

func (rt *Router) handleUnknown(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorEnvelope{Error: "not found"})
}

// requireSession resolves the request's session, writing the unauthorized
// envelope when none is present. Store failures surface as server errors,
// never as data.
func (rt *Router) requireSession(w http.ResponseWriter, r *http.Request) (*session.Record, bool) {
	rec, err := rt.sessions.Resolve(r.Context(), r)
	if err != nil {
		writeError(w, r, err)
		return nil, false
	}
	if rec == nil {
		writeUnauthorized(w)
		return nil, false
	}
	return rec, true
}
