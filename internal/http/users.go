package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"classdesk/server/internal/crypto"
	"classdesk/server/internal/model"
)

type createUserRequest struct {
	RegisterNumber string  `json:"register_number"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	DateOfBirth    *string `json:"date_of_birth,omitempty"`
}

type userSummary struct {
	ID             string  `json:"id"`
	RegisterNumber string  `json:"register_number"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	DateOfBirth    *string `json:"date_of_birth,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	users, err := s.store.ListUsers(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}

	summaries := make([]userSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, userSummary{
			ID:             user.ID,
			RegisterNumber: user.RegisterNumber,
			Name:           user.Name,
			Email:          user.Email,
			Role:           user.Role,
			DateOfBirth:    user.DateOfBirth,
			CreatedAt:      user.CreatedAt.Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, summaries)
}

// handleCreateUser registers a student account, hashing the submitted
// password. Admin accounts are provisioned out of band; there is exactly one.
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	req.RegisterNumber = strings.TrimSpace(req.RegisterNumber)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.RegisterNumber == "" || req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "password_hash_failed")
		return
	}

	now := time.Now().UTC()
	user := model.User{
		ID:             uuid.NewString(),
		RegisterNumber: req.RegisterNumber,
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   hash,
		Role:           "student",
		DateOfBirth:    req.DateOfBirth,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.CreateUser(r.Context(), user); err != nil {
		writeError(w, http.StatusBadRequest, "user_create_failed")
		return
	}

	writeJSON(w, http.StatusCreated, userSummary{
		ID:             user.ID,
		RegisterNumber: user.RegisterNumber,
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		DateOfBirth:    user.DateOfBirth,
		CreatedAt:      user.CreatedAt.Format(time.RFC3339),
	})
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	claims := claimsFromContext(r.Context())
	if claims != nil && claims.UserID == userID {
		writeError(w, http.StatusBadRequest, "cannot_delete_self")
		return
	}

	deleted, err := s.store.DeleteUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "user_not_found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
