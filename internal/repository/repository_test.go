package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"classdesk/server/internal/auth"
	"classdesk/server/internal/db"
	"classdesk/server/internal/model"
)

func openTestDB(t *testing.T) *pgxpool.Pool {
	url := os.Getenv("CLASSDESK_TEST_DB")
	if url == "" {
		url = os.Getenv("DATABASE_URL")
	}
	if url == "" {
		t.Skip("CLASSDESK_TEST_DB or DATABASE_URL not set")
		return nil
	}
	pool, err := db.NewPool(context.Background(), url)
	if err != nil {
		t.Skipf("db unavailable: %v", err)
		return nil
	}
	return pool
}

func TestUserRoundTrip(t *testing.T) {
	pool := openTestDB(t)
	defer pool.Close()

	store := NewStore(pool)
	ctx := context.Background()
	now := time.Now().UTC()

	user := model.User{
		ID:             uuid.NewString(),
		RegisterNumber: "IT" + uuid.NewString()[:6],
		Name:           "Repo Test Student",
		Email:          uuid.NewString() + "@example.edu",
		PasswordHash:   "$2a$12$abcdefghijklmnopqrstuvABCDEFGHIJKLMNOPQRSTUVWXYZ012345",
		Role:           "student",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("create error: %v", err)
	}
	defer store.DeleteUser(ctx, user.ID)

	got, err := store.GetStudentByRegisterNumber(ctx, user.RegisterNumber)
	if err != nil {
		t.Fatalf("lookup error: %v", err)
	}
	if got.ID != user.ID || got.PasswordHash != user.PasswordHash {
		t.Fatalf("row mismatch: %+v", got)
	}

	got, err = store.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("lookup by id error: %v", err)
	}
	if got.Email != user.Email {
		t.Fatalf("row mismatch: %+v", got)
	}

	deleted, err := store.DeleteUser(ctx, user.ID)
	if err != nil || !deleted {
		t.Fatalf("delete failed: deleted=%v err=%v", deleted, err)
	}
	deleted, err = store.DeleteUser(ctx, user.ID)
	if err != nil || deleted {
		t.Fatalf("second delete should be a no-op: deleted=%v err=%v", deleted, err)
	}

	if _, err := store.GetStudentByRegisterNumber(ctx, user.RegisterNumber); !errors.Is(err, auth.ErrNoUser) {
		t.Fatalf("expected ErrNoUser after delete, got %v", err)
	}
}

func TestAdminLookupIgnoresStudents(t *testing.T) {
	pool := openTestDB(t)
	defer pool.Close()

	store := NewStore(pool)
	ctx := context.Background()
	now := time.Now().UTC()

	user := model.User{
		ID:             uuid.NewString(),
		RegisterNumber: "IT" + uuid.NewString()[:6],
		Name:           "Not An Admin",
		Email:          uuid.NewString() + "@example.edu",
		PasswordHash:   "$2a$12$abcdefghijklmnopqrstuvABCDEFGHIJKLMNOPQRSTUVWXYZ012345",
		Role:           "student",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("create error: %v", err)
	}
	defer store.DeleteUser(ctx, user.ID)

	admin, err := store.GetAdminUser(ctx)
	if err == nil && admin.Role != "admin" {
		t.Fatalf("admin lookup returned a non-admin row: %+v", admin)
	}
	if err != nil && !errors.Is(err, auth.ErrNoUser) && !errors.Is(err, auth.ErrMultipleAdmins) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSeminarRoundTrip(t *testing.T) {
	pool := openTestDB(t)
	defer pool.Close()

	store := NewStore(pool)
	ctx := context.Background()
	now := time.Now().UTC()

	owner := model.User{
		ID:             uuid.NewString(),
		RegisterNumber: "IT" + uuid.NewString()[:6],
		Name:           "Seminar Owner",
		Email:          uuid.NewString() + "@example.edu",
		PasswordHash:   "$2a$12$abcdefghijklmnopqrstuvABCDEFGHIJKLMNOPQRSTUVWXYZ012345",
		Role:           "student",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := store.CreateUser(ctx, owner); err != nil {
		t.Fatalf("create owner error: %v", err)
	}
	defer store.DeleteUser(ctx, owner.ID)

	seminar := model.Seminar{
		ID:        uuid.NewString(),
		Title:     "Repository Round Trip",
		Speaker:   "Test Speaker",
		Date:      "2026-09-15",
		Time:      "10:00",
		Venue:     "Hall A",
		CreatedBy: owner.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := store.CreateSeminar(ctx, seminar); err != nil {
		t.Fatalf("create seminar error: %v", err)
	}
	defer store.DeleteSeminar(ctx, seminar.ID)

	seminar.Venue = "Hall B"
	seminar.UpdatedAt = time.Now().UTC()
	updated, err := store.UpdateSeminar(ctx, seminar)
	if err != nil || !updated {
		t.Fatalf("update failed: updated=%v err=%v", updated, err)
	}

	listed, err := store.ListSeminars(ctx)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	found := false
	for _, s := range listed {
		if s.ID == seminar.ID {
			found = true
			if s.Venue != "Hall B" {
				t.Fatalf("update not visible: %+v", s)
			}
		}
	}
	if !found {
		t.Fatalf("created seminar missing from list")
	}

	deleted, err := store.DeleteSeminar(ctx, seminar.ID)
	if err != nil || !deleted {
		t.Fatalf("delete failed: deleted=%v err=%v", deleted, err)
	}
}
