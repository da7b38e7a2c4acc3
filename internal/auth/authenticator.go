package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"classdesk/server/internal/crypto"
	"classdesk/server/internal/model"
)

var (
	// ErrInvalidCredentials is returned for a wrong password or passkey.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPrincipalNotFound is returned when no user matches the register number.
	// The HTTP layer maps it to the same response as ErrInvalidCredentials so
	// callers cannot enumerate registration numbers.
	ErrPrincipalNotFound = errors.New("principal not found")
	// ErrNotConfigured signals a deployment problem: the passkey matched but the
	// store holds zero or more than one admin row.
	ErrNotConfigured = errors.New("admin principal not configured")
)

// UserStore is the slice of the repository the authenticator needs.
// GetAdminUser must report ErrNoUser for zero admin rows and
// ErrMultipleAdmins for more than one; it never picks an arbitrary row.
type UserStore interface {
	GetStudentByRegisterNumber(ctx context.Context, registerNumber string) (model.User, error)
	GetAdminUser(ctx context.Context) (model.User, error)
	GetUserByID(ctx context.Context, id string) (model.User, error)
}

// ErrNoUser is the sentinel a UserStore returns when no row matches.
var ErrNoUser = errors.New("user not found")

// ErrMultipleAdmins is the sentinel a UserStore returns when the users table
// holds more than one admin row.
var ErrMultipleAdmins = errors.New("multiple admin users")

// PublicUser is the projection of a user that may leave the server. It never
// carries the password hash.
type PublicUser struct {
	ID             string  `json:"id"`
	RegisterNumber string  `json:"register_number"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Role           Role    `json:"role"`
	DateOfBirth    *string `json:"date_of_birth,omitempty"`
}

type Session struct {
	Token string
	User  PublicUser
}

type Authenticator struct {
	store        UserStore
	jwtSecret    string
	jwtIssuer    string
	adminPasskey string
	sessionTTL   time.Duration
}

func NewAuthenticator(store UserStore, jwtSecret, jwtIssuer, adminPasskey string, sessionTTL time.Duration) *Authenticator {
	return &Authenticator{
		store:        store,
		jwtSecret:    jwtSecret,
		jwtIssuer:    jwtIssuer,
		adminPasskey: adminPasskey,
		sessionTTL:   sessionTTL,
	}
}

func (a *Authenticator) AuthenticateStudent(ctx context.Context, registerNumber, password string) (Session, error) {
	user, err := a.store.GetStudentByRegisterNumber(ctx, registerNumber)
	if err != nil {
		if errors.Is(err, ErrNoUser) {
			return Session{}, ErrPrincipalNotFound
		}
		return Session{}, fmt.Errorf("student lookup: %w", err)
	}

	if err := crypto.CheckPassword(user.PasswordHash, password); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	return a.issueSession(user)
}

func (a *Authenticator) AuthenticateAdmin(ctx context.Context, passkey string) (Session, error) {
	if a.adminPasskey == "" {
		return Session{}, ErrNotConfigured
	}
	if subtle.ConstantTimeCompare([]byte(passkey), []byte(a.adminPasskey)) != 1 {
		return Session{}, ErrInvalidCredentials
	}

	admin, err := a.store.GetAdminUser(ctx)
	if err != nil {
		if errors.Is(err, ErrNoUser) || errors.Is(err, ErrMultipleAdmins) {
			return Session{}, ErrNotConfigured
		}
		return Session{}, fmt.Errorf("admin lookup: %w", err)
	}

	return a.issueSession(admin)
}

// LookupUser refreshes the public view of a previously authenticated principal.
func (a *Authenticator) LookupUser(ctx context.Context, id string) (PublicUser, error) {
	user, err := a.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNoUser) {
			return PublicUser{}, ErrPrincipalNotFound
		}
		return PublicUser{}, fmt.Errorf("user lookup: %w", err)
	}
	return publicView(user)
}

func (a *Authenticator) issueSession(user model.User) (Session, error) {
	view, err := publicView(user)
	if err != nil {
		return Session{}, err
	}

	token, err := NewSessionToken(a.jwtSecret, a.jwtIssuer, a.sessionTTL, Claims{
		UserID:         user.ID,
		RegisterNumber: user.RegisterNumber,
		Role:           view.Role,
	})
	if err != nil {
		return Session{}, fmt.Errorf("sign session token: %w", err)
	}

	return Session{Token: token, User: view}, nil
}

func publicView(user model.User) (PublicUser, error) {
	role, err := ParseRole(user.Role)
	if err != nil {
		return PublicUser{}, fmt.Errorf("stored user %s: %w", user.ID, err)
	}
	return PublicUser{
		ID:             user.ID,
		RegisterNumber: user.RegisterNumber,
		Name:           user.Name,
		Email:          user.Email,
		Role:           role,
		DateOfBirth:    user.DateOfBirth,
	}, nil
}
