package repository

import (
	"context"

	"classdesk/server/internal/model"
)

func (s *Store) ListSeminars(ctx context.Context) ([]model.Seminar, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, title, description, speaker, date, time, venue, registration_required, max_participants, created_by, created_at, updated_at
		FROM seminars
		ORDER BY date, time
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seminars []model.Seminar
	for rows.Next() {
		var seminar model.Seminar
		if err := rows.Scan(
			&seminar.ID,
			&seminar.Title,
			&seminar.Description,
			&seminar.Speaker,
			&seminar.Date,
			&seminar.Time,
			&seminar.Venue,
			&seminar.RegistrationRequired,
			&seminar.MaxParticipants,
			&seminar.CreatedBy,
			&seminar.CreatedAt,
			&seminar.UpdatedAt,
		); err != nil {
			return nil, err
		}
		seminars = append(seminars, seminar)
	}
	return seminars, rows.Err()
}

func (s *Store) CreateSeminar(ctx context.Context, seminar model.Seminar) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO seminars (id, title, description, speaker, date, time, venue, registration_required, max_participants, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, seminar.ID, seminar.Title, seminar.Description, seminar.Speaker, seminar.Date, seminar.Time, seminar.Venue,
		seminar.RegistrationRequired, seminar.MaxParticipants, seminar.CreatedBy, seminar.CreatedAt, seminar.UpdatedAt)
	return err
}

func (s *Store) UpdateSeminar(ctx context.Context, seminar model.Seminar) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE seminars
		SET title = $1, description = $2, speaker = $3, date = $4, time = $5, venue = $6,
		    registration_required = $7, max_participants = $8, updated_at = $9
		WHERE id = $10
	`, seminar.Title, seminar.Description, seminar.Speaker, seminar.Date, seminar.Time, seminar.Venue,
		seminar.RegistrationRequired, seminar.MaxParticipants, seminar.UpdatedAt, seminar.ID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) DeleteSeminar(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM seminars WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) ListHomework(ctx context.Context) ([]model.Homework, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, subject, description, date, subject_url, created_by, created_at, updated_at
		FROM homework
		ORDER BY date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Homework
	for rows.Next() {
		var hw model.Homework
		if err := rows.Scan(
			&hw.ID,
			&hw.Subject,
			&hw.Description,
			&hw.Date,
			&hw.SubjectURL,
			&hw.CreatedBy,
			&hw.CreatedAt,
			&hw.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, hw)
	}
	return items, rows.Err()
}

func (s *Store) CreateHomework(ctx context.Context, hw model.Homework) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO homework (id, subject, description, date, subject_url, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, hw.ID, hw.Subject, hw.Description, hw.Date, hw.SubjectURL, hw.CreatedBy, hw.CreatedAt, hw.UpdatedAt)
	return err
}

func (s *Store) UpdateHomework(ctx context.Context, hw model.Homework) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE homework
		SET subject = $1, description = $2, date = $3, subject_url = $4, updated_at = $5
		WHERE id = $6
	`, hw.Subject, hw.Description, hw.Date, hw.SubjectURL, hw.UpdatedAt, hw.ID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) DeleteHomework(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM homework WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) ListAssignments(ctx context.Context) ([]model.Assignment, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, title, description, due_date, subject, created_at, updated_at
		FROM assignments
		ORDER BY due_date
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Assignment
	for rows.Next() {
		var a model.Assignment
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Description,
			&a.DueDate,
			&a.Subject,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (s *Store) CreateAssignment(ctx context.Context, a model.Assignment) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO assignments (id, title, description, due_date, subject, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, a.ID, a.Title, a.Description, a.DueDate, a.Subject, a.CreatedAt, a.UpdatedAt)
	return err
}

func (s *Store) UpdateAssignment(ctx context.Context, a model.Assignment) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE assignments
		SET title = $1, description = $2, due_date = $3, subject = $4, updated_at = $5
		WHERE id = $6
	`, a.Title, a.Description, a.DueDate, a.Subject, a.UpdatedAt, a.ID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) DeleteAssignment(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) ListExams(ctx context.Context) ([]model.Exam, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, title, subject, test_date, type, description, syllabus, marks, created_by, created_at, updated_at
		FROM tests
		ORDER BY test_date
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Exam
	for rows.Next() {
		var exam model.Exam
		if err := rows.Scan(
			&exam.ID,
			&exam.Title,
			&exam.Subject,
			&exam.TestDate,
			&exam.Type,
			&exam.Description,
			&exam.Syllabus,
			&exam.Marks,
			&exam.CreatedBy,
			&exam.CreatedAt,
			&exam.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, exam)
	}
	return items, rows.Err()
}

func (s *Store) CreateExam(ctx context.Context, exam model.Exam) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO tests (id, title, subject, test_date, type, description, syllabus, marks, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, exam.ID, exam.Title, exam.Subject, exam.TestDate, exam.Type, exam.Description, exam.Syllabus, exam.Marks,
		exam.CreatedBy, exam.CreatedAt, exam.UpdatedAt)
	return err
}

func (s *Store) UpdateExam(ctx context.Context, exam model.Exam) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE tests
		SET title = $1, subject = $2, test_date = $3, type = $4, description = $5, syllabus = $6, marks = $7, updated_at = $8
		WHERE id = $9
	`, exam.Title, exam.Subject, exam.TestDate, exam.Type, exam.Description, exam.Syllabus, exam.Marks, exam.UpdatedAt, exam.ID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) DeleteExam(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM tests WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) ListTodos(ctx context.Context) ([]model.Todo, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, title, description, priority, due_date, created_by, created_at, updated_at
		FROM todos
		ORDER BY due_date
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Todo
	for rows.Next() {
		var todo model.Todo
		if err := rows.Scan(
			&todo.ID,
			&todo.Title,
			&todo.Description,
			&todo.Priority,
			&todo.DueDate,
			&todo.CreatedBy,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, todo)
	}
	return items, rows.Err()
}

func (s *Store) CreateTodo(ctx context.Context, todo model.Todo) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO todos (id, title, description, priority, due_date, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, todo.ID, todo.Title, todo.Description, todo.Priority, todo.DueDate, todo.CreatedBy, todo.CreatedAt, todo.UpdatedAt)
	return err
}

func (s *Store) UpdateTodo(ctx context.Context, todo model.Todo) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE todos
		SET title = $1, description = $2, priority = $3, due_date = $4, updated_at = $5
		WHERE id = $6
	`, todo.Title, todo.Description, todo.Priority, todo.DueDate, todo.UpdatedAt, todo.ID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) DeleteTodo(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) ListNotes(ctx context.Context) ([]model.Note, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, title, content, subject, tags, created_by, created_at, updated_at
		FROM notes
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Note
	for rows.Next() {
		var note model.Note
		if err := rows.Scan(
			&note.ID,
			&note.Title,
			&note.Content,
			&note.Subject,
			&note.Tags,
			&note.CreatedBy,
			&note.CreatedAt,
			&note.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, note)
	}
	return items, rows.Err()
}

func (s *Store) CreateNote(ctx context.Context, note model.Note) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO notes (id, title, content, subject, tags, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, note.ID, note.Title, note.Content, note.Subject, note.Tags, note.CreatedBy, note.CreatedAt, note.UpdatedAt)
	return err
}

func (s *Store) UpdateNote(ctx context.Context, note model.Note) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE notes
		SET title = $1, content = $2, subject = $3, tags = $4, updated_at = $5
		WHERE id = $6
	`, note.Title, note.Content, note.Subject, note.Tags, note.UpdatedAt, note.ID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) DeleteNote(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
