package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"classdesk/server/internal/auth"
	"classdesk/server/internal/model"
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) GetStudentByRegisterNumber(ctx context.Context, registerNumber string) (model.User, error) {
	var user model.User
	row := s.pool.QueryRow(ctx, `
		SELECT id, register_number, name, email, password, role, date_of_birth, created_at, updated_at
		FROM users
		WHERE register_number = $1 AND role = 'student'
	`, registerNumber)
	if err := scanUser(row, &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, auth.ErrNoUser
		}
		return model.User{}, err
	}
	return user, nil
}

// GetAdminUser expects exactly one admin row; zero or several are reported as
// distinct sentinels so the caller can treat both as misconfiguration.
func (s *Store) GetAdminUser(ctx context.Context) (model.User, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, register_number, name, email, password, role, date_of_birth, created_at, updated_at
		FROM users
		WHERE role = 'admin'
		LIMIT 2
	`)
	if err != nil {
		return model.User{}, err
	}
	defer rows.Close()

	var admins []model.User
	for rows.Next() {
		var user model.User
		if err := scanUser(rows, &user); err != nil {
			return model.User{}, err
		}
		admins = append(admins, user)
	}
	if err := rows.Err(); err != nil {
		return model.User{}, err
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

func (s *Store) GetUserByID(ctx context.Context, userID string) (model.User, error) {
	var user model.User
	row := s.pool.QueryRow(ctx, `
		SELECT id, register_number, name, email, password, role, date_of_birth, created_at, updated_at
		FROM users
		WHERE id = $1
	`, userID)
	if err := scanUser(row, &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, auth.ErrNoUser
		}
		return model.User{}, err
	}
	return user, nil
}

func (s *Store) ListUsers(ctx context.Context, limit int) ([]model.User, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, register_number, name, email, password, role, date_of_birth, created_at, updated_at
		FROM users
		ORDER BY register_number
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var user model.User
		if err := scanUser(rows, &user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *Store) CreateUser(ctx context.Context, user model.User) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO users (id, register_number, name, email, password, role, date_of_birth, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, user.ID, user.RegisterNumber, user.Name, user.Email, user.PasswordHash, user.Role, user.DateOfBirth, user.CreatedAt, user.UpdatedAt)
	return err
}

func (s *Store) DeleteUser(ctx context.Context, userID string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanUser(row pgx.Row, user *model.User) error {
	return row.Scan(
		&user.ID,
		&user.RegisterNumber,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.DateOfBirth,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}
