package model

import "time"

type User struct {
	ID             string
	RegisterNumber string
	Name           string
	Email          string
	PasswordHash   string
	Role           string
	DateOfBirth    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Seminar struct {
	ID                   string
	Title                string
	Description          *string
	Speaker              string
	Date                 string
	Time                 string
	Venue                string
	RegistrationRequired bool
	MaxParticipants      *int
	CreatedBy            string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type Homework struct {
	ID          string
	Subject     string
	Description string
	Date        string
	SubjectURL  *string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Assignment struct {
	ID          string
	Title       string
	Description string
	DueDate     string
	Subject     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Exam struct {
	ID          string
	Title       string
	Subject     string
	TestDate    string
	Type        string
	Description string
	Syllabus    string
	Marks       int
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Todo struct {
	ID          string
	Title       string
	Description string
	Priority    string
	DueDate     string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Note struct {
	ID        string
	Title     string
	Content   string
	Subject   string
	Tags      string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
