package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"classdesk/server/internal/model"
)

// Handlers for the class-record collections the dashboards display. Reads are
// open to any authenticated principal; writes are admin-only (enforced by the
// router), with created_by taken from the session claims.

type seminarRequest struct {
	Title                string  `json:"title"`
	Description          *string `json:"description,omitempty"`
	Speaker              string  `json:"speaker"`
	Date                 string  `json:"date"`
	Time                 string  `json:"time"`
	Venue                string  `json:"venue"`
	RegistrationRequired bool    `json:"registration_required"`
	MaxParticipants      *int    `json:"max_participants,omitempty"`
}

type seminarResponse struct {
	ID                   string  `json:"id"`
	Title                string  `json:"title"`
	Description          *string `json:"description,omitempty"`
	Speaker              string  `json:"speaker"`
	Date                 string  `json:"date"`
	Time                 string  `json:"time"`
	Venue                string  `json:"venue"`
	RegistrationRequired bool    `json:"registration_required"`
	MaxParticipants      *int    `json:"max_participants,omitempty"`
	CreatedBy            string  `json:"created_by"`
	CreatedAt            string  `json:"created_at"`
	UpdatedAt            string  `json:"updated_at"`
}

func (s *Server) handleListSeminars(w http.ResponseWriter, r *http.Request) {
	seminars, err := s.store.ListSeminars(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}

	resp := make([]seminarResponse, 0, len(seminars))
	for _, seminar := range seminars {
		resp = append(resp, mapSeminar(seminar))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateSeminar(w http.ResponseWriter, r *http.Request) {
	var req seminarRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if req.Title == "" || req.Speaker == "" || req.Date == "" || req.Time == "" || req.Venue == "" {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}

	now := time.Now().UTC()
	seminar := model.Seminar{
		ID:                   uuid.NewString(),
		Title:                req.Title,
		Description:          req.Description,
		Speaker:              req.Speaker,
		Date:                 req.Date,
		Time:                 req.Time,
		Venue:                req.Venue,
		RegistrationRequired: req.RegistrationRequired,
		MaxParticipants:      req.MaxParticipants,
		CreatedBy:            claimsFromContext(r.Context()).UserID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.store.CreateSeminar(r.Context(), seminar); err != nil {
		writeError(w, http.StatusBadRequest, "seminar_create_failed")
		return
	}

	writeJSON(w, http.StatusCreated, mapSeminar(seminar))
}

func (s *Server) handleUpdateSeminar(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req seminarRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if req.Title == "" || req.Speaker == "" || req.Date == "" || req.Time == "" || req.Venue == "" {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}

	seminar := model.Seminar{
		ID:                   id,
		Title:                req.Title,
		Description:          req.Description,
		Speaker:              req.Speaker,
		Date:                 req.Date,
		Time:                 req.Time,
		Venue:                req.Venue,
		RegistrationRequired: req.RegistrationRequired,
		MaxParticipants:      req.MaxParticipants,
		UpdatedAt:            time.Now().UTC(),
	}
	updated, err := s.store.UpdateSeminar(r.Context(), seminar)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	if !updated {
		writeError(w, http.StatusNotFound, "seminar_not_found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleDeleteSeminar(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.store.DeleteSeminar(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "seminar_not_found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func mapSeminar(seminar model.Seminar) seminarResponse {
	return seminarResponse{
		ID:                   seminar.ID,
		Title:                seminar.Title,
		Description:          seminar.Description,
		Speaker:              seminar.Speaker,
		Date:                 seminar.Date,
		Time:                 seminar.Time,
		Venue:                seminar.Venue,
		RegistrationRequired: seminar.RegistrationRequired,
		MaxParticipants:      seminar.MaxParticipants,
		CreatedBy:            seminar.CreatedBy,
		CreatedAt:            seminar.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            seminar.UpdatedAt.Format(time.RFC3339),
	}
}

type homeworkRequest struct {
	Subject     string  `json:"subject"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	SubjectURL  *string `json:"subject_url,omitempty"`
}

type homeworkResponse struct {
	ID          string  `json:"id"`
	Subject     string  `json:"subject"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	SubjectURL  *string `json:"subject_url,omitempty"`
	CreatedBy   string  `json:"created_by"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func (s *Server) handleListHomework(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListHomework(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}

	resp := make([]homeworkResponse, 0, len(items))
	for _, hw := range items {
		resp = append(resp, homeworkResponse{
			ID:          hw.ID,
			Subject:     hw.Subject,
			Description: hw.Description,
			Date:        hw.Date,
			SubjectURL:  hw.SubjectURL,
			CreatedBy:   hw.CreatedBy,
			CreatedAt:   hw.CreatedAt.Format(time.RFC3339),
			UpdatedAt:   hw.UpdatedAt.Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateHomework(w http.ResponseWriter, r *http.Request) {
	var req homeworkRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if req.Subject == "" || req.Description == "" || req.Date == "" {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}

	now := time.Now().UTC()
	hw := model.Homework{
		ID:          uuid.NewString(),
		Subject:     req.Subject,
		Description: req.Description,
		Date:        req.Date,
		SubjectURL:  req.SubjectURL,
		CreatedBy:   claimsFromContext(r.Context()).UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateHomework(r.Context(), hw); err != nil {
		writeError(w, http.StatusBadRequest, "homework_create_failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": hw.ID})
}

func (s *Server) handleUpdateHomework(w http.ResponseWriter, r *http.Request) {
	var req homeworkRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if req.Subject == "" || req.Description == "" || req.Date == "" {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}

	hw := model.Homework{
		ID:          chi.URLParam(r, "id"),
		Subject:     req.Subject,
		Description: req.Description,
		Date:        req.Date,
		SubjectURL:  req.SubjectURL,
		UpdatedAt:   time.Now().UTC(),
	}
	updated, err := s.store.UpdateHomework(r.Context(), hw)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	if !updated {
		writeError(w, http.StatusNotFound, "homework_not_found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleDeleteHomework(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.store.DeleteHomework(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "homework_not_found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type assignmentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Subject     string `json:"subject"`
}

func (s *Server) handleListAssignments(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListAssignments(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}

	type assignmentResponse struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		DueDate     string `json:"due_date"`
		Subject     string `json:"subject"`
		CreatedAt   string `json:"created_at"`
		UpdatedAt   string `json:"updated_at"`
	}
	resp := make([]assignmentResponse, 0, len(items))
	for _, a := range items {
		resp = append(resp, assignmentResponse{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			DueDate:     a.DueDate,
			Subject:     a.Subject,
			CreatedAt:   a.CreatedAt.Format(time.RFC3339),
			UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if req.Title == "" || req.Description == "" || req.DueDate == "" || req.Subject == "" {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}

	now := time.Now().UTC()
	assignment := model.Assignment{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Subject:     req.Subject,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateAssignment(r.Context(), assignment); err != nil {
		writeError(w, http.StatusBadRequest, "assignment_create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": assignment.ID})
}

func (s *Server) handleUpdateAssignment(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if req.Title == "" || req.Description == "" || req.DueDate == "" || req.Subject == "" {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}

	assignment := model.Assignment{
		ID:          chi.URLParam(r, "id"),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Subject:     req.Subject,
		UpdatedAt:   time.Now().UTC(),
	}
	updated, err := s.store.UpdateAssignment(r.Context(), assignment)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	if !updated {
		writeError(w, http.StatusNotFound, "assignment_not_found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleDeleteAssignment(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.store.DeleteAssignment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "assignment_not_found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type examRequest struct {
	Title       string `json:"title"`
	Subject     string `json:"subject"`
	TestDate    string `json:"test_date"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Syllabus    string `json:"syllabus"`
	Marks       int    `json:"marks"`
}

func (s *Server) handleListExams(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListExams(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}

	type examResponse struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Subject     string `json:"subject"`
		TestDate    string `json:"test_date"`
		Type        string `json:"type"`
		Description string `json:"description"`
		Syllabus    string `json:"syllabus"`
		Marks       int    `json:"marks"`
		CreatedBy   string `json:"created_by"`
		CreatedAt   string `json:"created_at"`
		UpdatedAt   string `json:"updated_at"`
	}
	resp := make([]examResponse, 0, len(items))
	for _, exam := range items {
		resp = append(resp, examResponse{
			ID:          exam.ID,
			Title:       exam.Title,
			Subject:     exam.Subject,
			TestDate:    exam.TestDate,
			Type:        exam.Type,
			Description: exam.Description,
			Syllabus:    exam.Syllabus,
			Marks:       exam.Marks,
			CreatedBy:   exam.CreatedBy,
			CreatedAt:   exam.CreatedAt.Format(time.RFC3339),
			UpdatedAt:   exam.UpdatedAt.Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateExam(w http.ResponseWriter, r *http.Request) {
	var req examRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if req.Title == "" || req.Subject == "" || req.TestDate == "" {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}

	now := time.Now().UTC()
	exam := model.Exam{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Subject:     req.Subject,
		TestDate:    req.TestDate,
		Type:        req.Type,
		Description: req.Description,
		Syllabus:    req.Syllabus,
		Marks:       req.Marks,
		CreatedBy:   claimsFromContext(r.Context()).UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateExam(r.Context(), exam); err != nil {
		writeError(w, http.StatusBadRequest, "test_create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": exam.ID})
}

func (s *Server) handleUpdateExam(w http.ResponseWriter, r *http.Request) {
	var req examRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if req.Title == "" || req.Subject == "" || req.TestDate == "" {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}

	exam := model.Exam{
		ID:          chi.URLParam(r, "id"),
		Title:       req.Title,
		Subject:     req.Subject,
		TestDate:    req.TestDate,
		Type:        req.Type,
		Description: req.Description,
		Syllabus:    req.Syllabus,
		Marks:       req.Marks,
		UpdatedAt:   time.Now().UTC(),
	}
	updated, err := s.store.UpdateExam(r.Context(), exam)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	if !updated {
		writeError(w, http.StatusNotFound, "test_not_found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleDeleteExam(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.store.DeleteExam(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "test_not_found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type todoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
}

func (s *Server) handleListTodos(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListTodos(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}

	type todoResponse struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Priority    string `json:"priority"`
		DueDate     string `json:"due_date"`
		CreatedBy   string `json:"created_by"`
		CreatedAt   string `json:"created_at"`
		UpdatedAt   string `json:"updated_at"`
	}
	resp := make([]todoResponse, 0, len(items))
	for _, todo := range items {
		resp = append(resp, todoResponse{
			ID:          todo.ID,
			Title:       todo.Title,
			Description: todo.Description,
			Priority:    todo.Priority,
			DueDate:     todo.DueDate,
			CreatedBy:   todo.CreatedBy,
			CreatedAt:   todo.CreatedAt.Format(time.RFC3339),
			UpdatedAt:   todo.UpdatedAt.Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	var req todoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if req.Title == "" || req.DueDate == "" {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}

	now := time.Now().UTC()
	todo := model.Todo{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		CreatedBy:   claimsFromContext(r.Context()).UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateTodo(r.Context(), todo); err != nil {
		writeError(w, http.StatusBadRequest, "todo_create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": todo.ID})
}

func (s *Server) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	var req todoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if req.Title == "" || req.DueDate == "" {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}

	todo := model.Todo{
		ID:          chi.URLParam(r, "id"),
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		UpdatedAt:   time.Now().UTC(),
	}
	updated, err := s.store.UpdateTodo(r.Context(), todo)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	if !updated {
		writeError(w, http.StatusNotFound, "todo_not_found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.store.DeleteTodo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "todo_not_found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Subject string `json:"subject"`
	Tags    string `json:"tags"`
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListNotes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}

	type noteResponse struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		Content   string `json:"content"`
		Subject   string `json:"subject"`
		Tags      string `json:"tags"`
		CreatedBy string `json:"created_by"`
		CreatedAt string `json:"created_at"`
		UpdatedAt string `json:"updated_at"`
	}
	resp := make([]noteResponse, 0, len(items))
	for _, note := range items {
		resp = append(resp, noteResponse{
			ID:        note.ID,
			Title:     note.Title,
			Content:   note.Content,
			Subject:   note.Subject,
			Tags:      note.Tags,
			CreatedBy: note.CreatedBy,
			CreatedAt: note.CreatedAt.Format(time.RFC3339),
			UpdatedAt: note.UpdatedAt.Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if req.Title == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}

	now := time.Now().UTC()
	note := model.Note{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Content:   req.Content,
		Subject:   req.Subject,
		Tags:      req.Tags,
		CreatedBy: claimsFromContext(r.Context()).UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.CreateNote(r.Context(), note); err != nil {
		writeError(w, http.StatusBadRequest, "note_create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": note.ID})
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if req.Title == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}

	note := model.Note{
		ID:        chi.URLParam(r, "id"),
		Title:     req.Title,
		Content:   req.Content,
		Subject:   req.Subject,
		Tags:      req.Tags,
		UpdatedAt: time.Now().UTC(),
	}
	updated, err := s.store.UpdateNote(r.Context(), note)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	if !updated {
		writeError(w, http.StatusNotFound, "note_not_found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.store.DeleteNote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "note_not_found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
