package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"classdesk/server/internal/auth"
	"classdesk/server/internal/config"
	"classdesk/server/internal/model"
)

const (
	sessionCookieName    = "auth-token"
	landingPath          = "/"
	studentDashboardPath = "/dashboard"
	adminDashboardPath   = "/admin/dashboard"
)

// Store is the repository surface the server consumes.
type Store interface {
	auth.UserStore
	ListUsers(ctx context.Context, limit int) ([]model.User, error)
	CreateUser(ctx context.Context, user model.User) error
	DeleteUser(ctx context.Context, userID string) (bool, error)

	ListSeminars(ctx context.Context) ([]model.Seminar, error)
	CreateSeminar(ctx context.Context, seminar model.Seminar) error
	UpdateSeminar(ctx context.Context, seminar model.Seminar) (bool, error)
	DeleteSeminar(ctx context.Context, id string) (bool, error)

	ListHomework(ctx context.Context) ([]model.Homework, error)
	CreateHomework(ctx context.Context, hw model.Homework) error
	UpdateHomework(ctx context.Context, hw model.Homework) (bool, error)
	DeleteHomework(ctx context.Context, id string) (bool, error)

	ListAssignments(ctx context.Context) ([]model.Assignment, error)
	CreateAssignment(ctx context.Context, a model.Assignment) error
	UpdateAssignment(ctx context.Context, a model.Assignment) (bool, error)
	DeleteAssignment(ctx context.Context, id string) (bool, error)

	ListExams(ctx context.Context) ([]model.Exam, error)
	CreateExam(ctx context.Context, exam model.Exam) error
	UpdateExam(ctx context.Context, exam model.Exam) (bool, error)
	DeleteExam(ctx context.Context, id string) (bool, error)

	ListTodos(ctx context.Context) ([]model.Todo, error)
	CreateTodo(ctx context.Context, todo model.Todo) error
	UpdateTodo(ctx context.Context, todo model.Todo) (bool, error)
	DeleteTodo(ctx context.Context, id string) (bool, error)

	ListNotes(ctx context.Context) ([]model.Note, error)
	CreateNote(ctx context.Context, note model.Note) error
	UpdateNote(ctx context.Context, note model.Note) (bool, error)
	DeleteNote(ctx context.Context, id string) (bool, error)
}

type Server struct {
	cfg   config.Config
	store Store
	authn *auth.Authenticator
}

func NewServer(cfg config.Config, store Store) *Server {
	return &Server{
		cfg:   cfg,
		store: store,
		authn: auth.NewAuthenticator(store, cfg.JWTSecret, cfg.JWTIssuer, cfg.AdminPasskey, cfg.SessionTTL),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/student", s.handleStudentLogin)
		r.Post("/auth/admin", s.handleAdminLogin)
		r.Post("/auth/logout", s.handleLogout)
		r.Get("/auth/me", s.handleGetMe)

		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)

			r.Get("/seminars", s.handleListSeminars)
			r.With(s.requireAdmin).Post("/seminars", s.handleCreateSeminar)
			r.With(s.requireAdmin).Put("/seminars/{id}", s.handleUpdateSeminar)
			r.With(s.requireAdmin).Delete("/seminars/{id}", s.handleDeleteSeminar)

			r.Get("/homework", s.handleListHomework)
			r.With(s.requireAdmin).Post("/homework", s.handleCreateHomework)
			r.With(s.requireAdmin).Put("/homework/{id}", s.handleUpdateHomework)
			r.With(s.requireAdmin).Delete("/homework/{id}", s.handleDeleteHomework)

			r.Get("/assignments", s.handleListAssignments)
			r.With(s.requireAdmin).Post("/assignments", s.handleCreateAssignment)
			r.With(s.requireAdmin).Put("/assignments/{id}", s.handleUpdateAssignment)
			r.With(s.requireAdmin).Delete("/assignments/{id}", s.handleDeleteAssignment)

			r.Get("/tests", s.handleListExams)
			r.With(s.requireAdmin).Post("/tests", s.handleCreateExam)
			r.With(s.requireAdmin).Put("/tests/{id}", s.handleUpdateExam)
			r.With(s.requireAdmin).Delete("/tests/{id}", s.handleDeleteExam)

			// Todos and notes are personal: any authenticated user may create
			// their own. Edits and deletes stay admin-only.
			r.Get("/todos", s.handleListTodos)
			r.Post("/todos", s.handleCreateTodo)
			r.With(s.requireAdmin).Put("/todos/{id}", s.handleUpdateTodo)
			r.With(s.requireAdmin).Delete("/todos/{id}", s.handleDeleteTodo)

			r.Get("/notes", s.handleListNotes)
			r.Post("/notes", s.handleCreateNote)
			r.With(s.requireAdmin).Put("/notes/{id}", s.handleUpdateNote)
			r.With(s.requireAdmin).Delete("/notes/{id}", s.handleDeleteNote)

			r.With(s.requireAdmin).Get("/users", s.handleListUsers)
			r.With(s.requireAdmin).Post("/users", s.handleCreateUser)
			r.With(s.requireAdmin).Delete("/users/{id}", s.handleDeleteUser)
		})
	})

	// Page routes behind the gate. Rendering is the frontend's concern; these
	// exist so the gate has routes to protect.
	r.Group(func(r chi.Router) {
		r.Use(s.routeGate)
		r.Get("/", s.handlePage("login"))
		r.Get("/dashboard", s.handlePage("dashboard"))
		r.Get("/admin/dashboard", s.handlePage("admin_dashboard"))
	})

	return r
}

func (s *Server) handlePage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"page": name})
	}
}

type studentLoginRequest struct {
	RegisterNumber string `json:"registerNumber"`
	Password       string `json:"password"`
}

type adminLoginRequest struct {
	Passkey string `json:"passkey"`
}

type authResponse struct {
	Success bool            `json:"success"`
	User    auth.PublicUser `json:"user"`
}

func (s *Server) handleStudentLogin(w http.ResponseWriter, r *http.Request) {
	var req studentLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if req.RegisterNumber == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing_credentials")
		return
	}

	session, err := s.authn.AuthenticateStudent(r.Context(), req.RegisterNumber, req.Password)
	if err != nil {
		// Unknown register number and wrong password are indistinguishable to
		// the caller, so valid register numbers cannot be enumerated.
		if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, auth.ErrPrincipalNotFound) {
			writeError(w, http.StatusUnauthorized, "invalid_credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}

	s.setSessionCookie(w, session.Token)
	writeJSON(w, http.StatusOK, authResponse{Success: true, User: session.User})
}

func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if req.Passkey == "" {
		writeError(w, http.StatusBadRequest, "missing_passkey")
		return
	}

	session, err := s.authn.AuthenticateAdmin(r.Context(), req.Passkey)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid_credentials")
			return
		}
		if errors.Is(err, auth.ErrNotConfigured) {
			writeError(w, http.StatusInternalServerError, "admin_not_configured")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}

	s.setSessionCookie(w, session.Token)
	writeJSON(w, http.StatusOK, authResponse{Success: true, User: session.User})
}

func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	s.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		writeError(w, http.StatusUnauthorized, "missing_token")
		return
	}

	claims, err := auth.ParseToken(s.cfg.JWTSecret, s.cfg.JWTIssuer, cookie.Value)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid_token")
		return
	}

	user, err := s.authn.LookupUser(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, auth.ErrPrincipalNotFound) {
			writeError(w, http.StatusNotFound, "user_not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Success: true, User: user})
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			writeError(w, http.StatusUnauthorized, "missing_token")
			return
		}

		claims, err := auth.ParseToken(s.cfg.JWTSecret, s.cfg.JWTIssuer, cookie.Value)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromContext(r.Context())
		if claims == nil || claims.Role != auth.RoleAdmin {
			writeError(w, http.StatusForbidden, "admin_only")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type claimsKey struct{}

func withClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

func claimsFromContext(ctx context.Context) *auth.Claims {
	value := ctx.Value(claimsKey{})
	claims, _ := value.(*auth.Claims)
	return claims
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}

func decodeJSON(r *http.Request, out interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(out)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
