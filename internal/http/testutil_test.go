package http

import (
	"context"
	"testing"
	"time"

	"classdesk/server/internal/auth"
	"classdesk/server/internal/config"
	"classdesk/server/internal/crypto"
	"classdesk/server/internal/model"
)

// memStore is an in-memory Store for handler tests.
type memStore struct {
	users       []model.User
	seminars    []model.Seminar
	homework    []model.Homework
	assignments []model.Assignment
	exams       []model.Exam
	todos       []model.Todo
	notes       []model.Note
	err         error
}

func (m *memStore) GetStudentByRegisterNumber(_ context.Context, registerNumber string) (model.User, error) {
	if m.err != nil {
		return model.User{}, m.err
	}
	for _, user := range m.users {
		if user.RegisterNumber == registerNumber && user.Role == "student" {
			return user, nil
		}
	}
	return model.User{}, auth.ErrNoUser
}

func (m *memStore) GetAdminUser(_ context.Context) (model.User, error) {
	if m.err != nil {
		return model.User{}, m.err
	}
	var admins []model.User
	for _, user := range m.users {
		if user.Role == "admin" {
			admins = append(admins, user)
		}
	}
	switch len(admins) {
	case 1:
		return admins[0], nil
	case 0:
		return model.User{}, auth.ErrNoUser
	default:
		return model.User{}, auth.ErrMultipleAdmins
	}
}

func (m *memStore) GetUserByID(_ context.Context, id string) (model.User, error) {
	if m.err != nil {
		return model.User{}, m.err
	}
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return model.User{}, auth.ErrNoUser
}

func (m *memStore) ListUsers(_ context.Context, limit int) ([]model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > len(m.users) {
		limit = len(m.users)
	}
	return m.users[:limit], nil
}

func (m *memStore) CreateUser(_ context.Context, user model.User) error {
	if m.err != nil {
		return m.err
	}
	m.users = append(m.users, user)
	return nil
}

func (m *memStore) DeleteUser(_ context.Context, userID string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for i, user := range m.users {
		if user.ID == userID {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) ListSeminars(_ context.Context) ([]model.Seminar, error) {
	return m.seminars, m.err
}

func (m *memStore) CreateSeminar(_ context.Context, seminar model.Seminar) error {
	if m.err != nil {
		return m.err
	}
	m.seminars = append(m.seminars, seminar)
	return nil
}

func (m *memStore) UpdateSeminar(_ context.Context, seminar model.Seminar) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for i := range m.seminars {
		if m.seminars[i].ID == seminar.ID {
			seminar.CreatedBy = m.seminars[i].CreatedBy
			seminar.CreatedAt = m.seminars[i].CreatedAt
			m.seminars[i] = seminar
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) DeleteSeminar(_ context.Context, id string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for i := range m.seminars {
		if m.seminars[i].ID == id {
			m.seminars = append(m.seminars[:i], m.seminars[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) ListHomework(_ context.Context) ([]model.Homework, error) {
	return m.homework, m.err
}

func (m *memStore) CreateHomework(_ context.Context, hw model.Homework) error {
	if m.err != nil {
		return m.err
	}
	m.homework = append(m.homework, hw)
	return nil
}

func (m *memStore) UpdateHomework(_ context.Context, hw model.Homework) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for i := range m.homework {
		if m.homework[i].ID == hw.ID {
			m.homework[i] = hw
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) DeleteHomework(_ context.Context, id string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for i := range m.homework {
		if m.homework[i].ID == id {
			m.homework = append(m.homework[:i], m.homework[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) ListAssignments(_ context.Context) ([]model.Assignment, error) {
	return m.assignments, m.err
}

func (m *memStore) CreateAssignment(_ context.Context, a model.Assignment) error {
	if m.err != nil {
		return m.err
	}
	m.assignments = append(m.assignments, a)
	return nil
}

func (m *memStore) UpdateAssignment(_ context.Context, a model.Assignment) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for i := range m.assignments {
		if m.assignments[i].ID == a.ID {
			m.assignments[i] = a
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) DeleteAssignment(_ context.Context, id string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for i := range m.assignments {
		if m.assignments[i].ID == id {
			m.assignments = append(m.assignments[:i], m.assignments[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) ListExams(_ context.Context) ([]model.Exam, error) {
	return m.exams, m.err
}

func (m *memStore) CreateExam(_ context.Context, exam model.Exam) error {
	if m.err != nil {
		return m.err
	}
	m.exams = append(m.exams, exam)
	return nil
}

func (m *memStore) UpdateExam(_ context.Context, exam model.Exam) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for i := range m.exams {
		if m.exams[i].ID == exam.ID {
			m.exams[i] = exam
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) DeleteExam(_ context.Context, id string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for i := range m.exams {
		if m.exams[i].ID == id {
			m.exams = append(m.exams[:i], m.exams[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) ListTodos(_ context.Context) ([]model.Todo, error) {
	return m.todos, m.err
}

func (m *memStore) CreateTodo(_ context.Context, todo model.Todo) error {
	if m.err != nil {
		return m.err
	}
	m.todos = append(m.todos, todo)
	return nil
}

func (m *memStore) UpdateTodo(_ context.Context, todo model.Todo) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for i := range m.todos {
		if m.todos[i].ID == todo.ID {
			m.todos[i] = todo
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) DeleteTodo(_ context.Context, id string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for i := range m.todos {
		if m.todos[i].ID == id {
			m.todos = append(m.todos[:i], m.todos[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) ListNotes(_ context.Context) ([]model.Note, error) {
	return m.notes, m.err
}

func (m *memStore) CreateNote(_ context.Context, note model.Note) error {
	if m.err != nil {
		return m.err
	}
	m.notes = append(m.notes, note)
	return nil
}

func (m *memStore) UpdateNote(_ context.Context, note model.Note) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for i := range m.notes {
		if m.notes[i].ID == note.ID {
			m.notes[i] = note
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) DeleteNote(_ context.Context, id string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for i := range m.notes {
		if m.notes[i].ID == id {
			m.notes = append(m.notes[:i], m.notes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

const (
	testStudentID = "33333333-3333-3333-3333-333333333331"
	testAdminID   = "33333333-3333-3333-3333-333333333332"
)

func newTestConfig() config.Config {
	return config.Config{
		HTTPAddr:     ":0",
		JWTSecret:    "test-secret",
		JWTIssuer:    "test-issuer",
		AdminPasskey: "secret123",
		SessionTTL:   24 * time.Hour,
	}
}

func newSeededStore(t *testing.T) *memStore {
	t.Helper()
	hash, err := crypto.HashPassword("password123")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	return &memStore{
		users: []model.User{
			{
				ID:             testStudentID,
				RegisterNumber: "CSEB34",
				Name:           "Student CSEB34",
				Email:          "cseb34@college.edu",
				PasswordHash:   hash,
				Role:           "student",
			},
			{
				ID:             testAdminID,
				RegisterNumber: "ADMIN",
				Name:           "Class Admin",
				Email:          "admin@college.edu",
				Role:           "admin",
			},
		},
	}
}

func mustStudentToken(t *testing.T, cfg config.Config) string {
	t.Helper()
	token, err := auth.NewSessionToken(cfg.JWTSecret, cfg.JWTIssuer, cfg.SessionTTL, auth.Claims{
		UserID:         testStudentID,
		RegisterNumber: "CSEB34",
		Role:           auth.RoleStudent,
	})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	return token
}

func mustAdminToken(t *testing.T, cfg config.Config) string {
	t.Helper()
	token, err := auth.NewSessionToken(cfg.JWTSecret, cfg.JWTIssuer, cfg.SessionTTL, auth.Claims{
		UserID:         testAdminID,
		RegisterNumber: "ADMIN",
		Role:           auth.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	return token
}
