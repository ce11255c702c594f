package poll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"polls-api/internal/domain/models"
	"polls-api/internal/lib/logger/sl"
	"polls-api/internal/storage"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidQuestion  = errors.New("invalid question")
	ErrInvalidChoice    = errors.New("invalid choice")
	ErrQuestionNotFound = errors.New("question not found")
	ErrChoiceNotFound   = errors.New("choice not found")
	ErrChoiceExists     = errors.New("choice with this text already exists for the question")
)

const DefaultLatestLimit = 5

type Storage interface {
	SaveQuestion(ctx context.Context, q models.Question) (int64, error)
	Question(ctx context.Context, id int64) (models.Question, error)
	Questions(ctx context.Context) ([]models.Question, error)
	PublishedQuestions(ctx context.Context, now time.Time, limit int) ([]models.Question, error)
	RemoveQuestion(ctx context.Context, id int64) error
	SaveChoice(ctx context.Context, c models.Choice) (int64, error)
	Choices(ctx context.Context, questionID int64) ([]models.Choice, error)
	RemoveChoice(ctx context.Context, id int64) error
	Vote(ctx context.Context, choiceID int64) error
}

type Service struct {
	log      *slog.Logger
	storage  Storage
	validate *validator.Validate
	now      func() time.Time
}

func New(log *slog.Logger, storage Storage) *Service {
	return &Service{
		log:      log,
		storage:  storage,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

// Now is the clock used for pub date defaults and listings.
func (s *Service) Now() time.Time {
	return s.now()
}

func (s *Service) CreateQuestion(ctx context.Context, q models.Question) (models.Question, error) {
	const op = "service.poll.CreateQuestion"

	log := s.log.With(slog.String("op", op))

	if q.Author == "" {
		q.Author = models.DefaultAuthor
	}
	if q.PubDate.IsZero() {
		q.PubDate = s.now()
	}
	q.Choices = nil

	if err := s.validate.Struct(q); err != nil {
		log.Info("question rejected", sl.Error(err))
		return models.Question{}, fmt.Errorf("%s: %w: %s", op, ErrInvalidQuestion, err.Error())
	}

	// Send to storage layer
	id, err := s.storage.SaveQuestion(ctx, q)
	if err != nil {
		log.Error("failed to save question", sl.Error(err))
		return models.Question{}, fmt.Errorf("%s: %w", op, err)
	}
	q.ID = id

	log.Debug("question created", slog.Int64("id", id))

	return q, nil
}

// Question returns the question with its choices attached.
func (s *Service) Question(ctx context.Context, id int64) (models.Question, error) {
	const op = "service.poll.Question"

	log := s.log.With(slog.String("op", op))

	q, err := s.storage.Question(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrQuestionNotFound) {
			return models.Question{}, fmt.Errorf("%s: %w", op, ErrQuestionNotFound)
		}
		log.Error("failed to get question", sl.Error(err))
		return models.Question{}, fmt.Errorf("%s: %w", op, err)
	}

	q.Choices, err = s.storage.Choices(ctx, id)
	if err != nil {
		log.Error("failed to get choices", sl.Error(err))
		return models.Question{}, fmt.Errorf("%s: %w", op, err)
	}

	return q, nil
}

func (s *Service) Questions(ctx context.Context) ([]models.Question, error) {
	const op = "service.poll.Questions"

	qs, err := s.storage.Questions(ctx)
	if err != nil {
		s.log.Error("failed to get questions", slog.String("op", op), sl.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return qs, nil
}

// Latest returns up to limit already published questions, newest first.
// A non-positive limit falls back to DefaultLatestLimit.
func (s *Service) Latest(ctx context.Context, limit int) ([]models.Question, error) {
	const op = "service.poll.Latest"

	if limit <= 0 {
		limit = DefaultLatestLimit
	}

	qs, err := s.storage.PublishedQuestions(ctx, s.now(), limit)
	if err != nil {
		s.log.Error("failed to get latest questions", slog.String("op", op), sl.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return qs, nil
}

func (s *Service) RemoveQuestion(ctx context.Context, id int64) error {
	const op = "service.poll.RemoveQuestion"

	log := s.log.With(slog.String("op", op))

	err := s.storage.RemoveQuestion(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrQuestionNotFound) {
			return fmt.Errorf("%s: %w", op, ErrQuestionNotFound)
		}
		log.Error("failed to remove question", sl.Error(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Debug("question removed", slog.Int64("id", id))

	return nil
}

func (s *Service) AddChoice(ctx context.Context, c models.Choice) (models.Choice, error) {
	const op = "service.poll.AddChoice"

	log := s.log.With(slog.String("op", op))

	c.Votes = 0

	if err := s.validate.Struct(c); err != nil {
		log.Info("choice rejected", sl.Error(err))
		return models.Choice{}, fmt.Errorf("%s: %w: %s", op, ErrInvalidChoice, err.Error())
	}

	id, err := s.storage.SaveChoice(ctx, c)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrChoiceExists):
			return models.Choice{}, fmt.Errorf("%s: %w", op, ErrChoiceExists)
		case errors.Is(err, storage.ErrQuestionNotFound):
			return models.Choice{}, fmt.Errorf("%s: %w", op, ErrQuestionNotFound)
		}
		log.Error("failed to save choice", sl.Error(err))
		return models.Choice{}, fmt.Errorf("%s: %w", op, err)
	}
	c.ID = id

	return c, nil
}

func (s *Service) RemoveChoice(ctx context.Context, id int64) error {
	const op = "service.poll.RemoveChoice"

	err := s.storage.RemoveChoice(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrChoiceNotFound) {
			return fmt.Errorf("%s: %w", op, ErrChoiceNotFound)
		}
		s.log.Error("failed to remove choice", slog.String("op", op), sl.Error(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Service) Vote(ctx context.Context, choiceID int64) error {
	const op = "service.poll.Vote"

	err := s.storage.Vote(ctx, choiceID)
	if err != nil {
		if errors.Is(err, storage.ErrChoiceNotFound) {
			return fmt.Errorf("%s: %w", op, ErrChoiceNotFound)
		}
		s.log.Error("failed to vote", slog.String("op", op), sl.Error(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
