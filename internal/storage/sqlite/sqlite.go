package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"polls-api/internal/domain/models"
	"polls-api/internal/storage"

	"github.com/mattn/go-sqlite3"
)

// pubDateLayout keeps a fixed width so pub_date sorts correctly as text.
const pubDateLayout = "2006-01-02T15:04:05.000000000Z"

type Storage struct {
	db *sql.DB
}

func New(storagePath string) (*Storage, error) {
	const op = "storage.sqlite.New"

	db, err := sql.Open("sqlite3", dsn(storagePath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS questions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			question_text TEXT NOT NULL,
			pub_date TEXT NOT NULL,
			author TEXT NOT NULL DEFAULT 'anonymous'
		);
		CREATE INDEX IF NOT EXISTS idx_questions_pub_date ON questions(pub_date);

		CREATE TABLE IF NOT EXISTS choices (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			question_id INTEGER NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
			choice_text TEXT NOT NULL,
			votes INTEGER NOT NULL DEFAULT 0,
			UNIQUE (question_id, choice_text)
		);

		CREATE TABLE IF NOT EXISTS admins (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE NOT NULL,
			pass_hash BLOB NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// dsn turns foreign key enforcement on, which cascading deletes rely on.
func dsn(storagePath string) string {
	sep := "?"
	if strings.Contains(storagePath, "?") {
		sep = "&"
	}

	return storagePath + sep + "_foreign_keys=on"
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) SaveQuestion(ctx context.Context, q models.Question) (int64, error) {
	const op = "storage.sqlite.SaveQuestion"

	stmt, err := s.db.PrepareContext(ctx, `INSERT INTO questions (question_text, pub_date, author) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, q.QuestionText, formatPubDate(q.PubDate), q.Author)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to get last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) Question(ctx context.Context, id int64) (models.Question, error) {
	const op = "storage.sqlite.Question"

	row := s.db.QueryRowContext(ctx, `SELECT id, question_text, pub_date, author FROM questions WHERE id = ?`, id)

	q, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Question{}, fmt.Errorf("%s: %w", op, storage.ErrQuestionNotFound)
		}
		return models.Question{}, fmt.Errorf("%s: %w", op, err)
	}

	return q, nil
}

// Questions returns every question, newest pub_date first.
func (s *Storage) Questions(ctx context.Context) ([]models.Question, error) {
	const op = "storage.sqlite.Questions"

	rows, err := s.db.QueryContext(ctx, `SELECT id, question_text, pub_date, author FROM questions ORDER BY pub_date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	qs, err := scanQuestions(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return qs, nil
}

// PublishedQuestions returns at most limit questions with pub_date <= now,
// newest first.
func (s *Storage) PublishedQuestions(ctx context.Context, now time.Time, limit int) ([]models.Question, error) {
	const op = "storage.sqlite.PublishedQuestions"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_text, pub_date, author FROM questions
		WHERE pub_date <= ?
		ORDER BY pub_date DESC, id DESC
		LIMIT ?`, formatPubDate(now), limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	qs, err := scanQuestions(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return qs, nil
}

// RemoveQuestion deletes the question along with all of its choices.
func (s *Storage) RemoveQuestion(ctx context.Context, id int64) error {
	const op = "storage.sqlite.RemoveQuestion"

	res, err := s.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := mustAffect(res, storage.ErrQuestionNotFound); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) SaveChoice(ctx context.Context, c models.Choice) (int64, error) {
	const op = "storage.sqlite.SaveChoice"

	stmt, err := s.db.PrepareContext(ctx, `INSERT INTO choices (question_id, choice_text, votes) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, c.QuestionID, c.ChoiceText, c.Votes)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) {
			switch sqliteErr.ExtendedCode {
			case sqlite3.ErrConstraintUnique:
				return 0, fmt.Errorf("%s: %w", op, storage.ErrChoiceExists)
			case sqlite3.ErrConstraintForeignKey:
				return 0, fmt.Errorf("%s: %w", op, storage.ErrQuestionNotFound)
			}
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to get last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) Choice(ctx context.Context, id int64) (models.Choice, error) {
	const op = "storage.sqlite.Choice"

	var c models.Choice
	err := s.db.QueryRowContext(ctx, `SELECT id, question_id, choice_text, votes FROM choices WHERE id = ?`, id).
		Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Choice{}, fmt.Errorf("%s: %w", op, storage.ErrChoiceNotFound)
		}
		return models.Choice{}, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (s *Storage) Choices(ctx context.Context, questionID int64) ([]models.Choice, error) {
	const op = "storage.sqlite.Choices"

	rows, err := s.db.QueryContext(ctx, `SELECT id, question_id, choice_text, votes FROM choices WHERE question_id = ? ORDER BY id`, questionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return choices, nil
}

func (s *Storage) RemoveChoice(ctx context.Context, id int64) error {
	const op = "storage.sqlite.RemoveChoice"

	res, err := s.db.ExecContext(ctx, `DELETE FROM choices WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := mustAffect(res, storage.ErrChoiceNotFound); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Vote increments the vote counter of a choice in place.
func (s *Storage) Vote(ctx context.Context, choiceID int64) error {
	const op = "storage.sqlite.Vote"

	res, err := s.db.ExecContext(ctx, `UPDATE choices SET votes = votes + 1 WHERE id = ?`, choiceID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := mustAffect(res, storage.ErrChoiceNotFound); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) SaveAdmin(ctx context.Context, name string, passHash []byte) (int64, error) {
	const op = "storage.sqlite.SaveAdmin"

	stmt, err := s.db.PrepareContext(ctx, `INSERT INTO admins (name, pass_hash) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, name, passHash)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrAdminExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to get last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) AdminByName(ctx context.Context, name string) (models.Admin, error) {
	const op = "storage.sqlite.AdminByName"

	stmt, err := s.db.PrepareContext(ctx, `SELECT id, name, pass_hash FROM admins WHERE name = ?`)
	if err != nil {
		return models.Admin{}, fmt.Errorf("%s: %w", op, err)
	}
	defer stmt.Close()

	var admin models.Admin
	err = stmt.QueryRowContext(ctx, name).Scan(&admin.ID, &admin.Name, &admin.PassHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Admin{}, fmt.Errorf("%s: %w", op, storage.ErrAdminNotFound)
		}
		return models.Admin{}, fmt.Errorf("%s: %w", op, err)
	}

	return admin, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (models.Question, error) {
	var (
		q       models.Question
		pubDate string
	)

	if err := row.Scan(&q.ID, &q.QuestionText, &pubDate, &q.Author); err != nil {
		return models.Question{}, err
	}

	t, err := time.Parse(pubDateLayout, pubDate)
	if err != nil {
		return models.Question{}, fmt.Errorf("malformed pub_date %q: %w", pubDate, err)
	}
	q.PubDate = t

	return q, nil
}

func scanQuestions(rows *sql.Rows) ([]models.Question, error) {
	defer rows.Close()

	qs := []models.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		qs = append(qs, q)
	}

	return qs, rows.Err()
}

func formatPubDate(t time.Time) string {
	return t.UTC().Format(pubDateLayout)
}

func mustAffect(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}

	return nil
}
