package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"polls-api/internal/domain/models"
	"polls-api/internal/lib/jwt"
	"polls-api/internal/lib/logger/sl"
	"polls-api/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAdminExists        = errors.New("admin name already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Storage interface {
	SaveAdmin(ctx context.Context, name string, passHash []byte) (int64, error)
	AdminByName(ctx context.Context, name string) (models.Admin, error)
}

type Service struct {
	log      *slog.Logger
	storage  Storage
	tokenTTL time.Duration
}

func New(log *slog.Logger, storage Storage, ttl time.Duration) *Service {
	return &Service{
		log:      log,
		storage:  storage,
		tokenTTL: ttl,
	}
}

func (s *Service) Register(ctx context.Context, name, password string) (int64, error) {
	const op = "service.admin.Register"

	log := s.log.With(slog.String("op", op))

	// Hashing password
	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate hash from password", sl.Error(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	// Send to data layer
	id, err := s.storage.SaveAdmin(ctx, name, passHash)
	if err != nil {
		if errors.Is(err, storage.ErrAdminExists) {
			log.Warn("admin already exists", slog.String("name", name))
			return 0, fmt.Errorf("%s: %w", op, ErrAdminExists)
		}
		log.Error("failed to register admin", sl.Error(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("admin registered", slog.Int64("id", id))

	return id, nil
}

func (s *Service) Login(ctx context.Context, name, password, secret string) (string, error) {
	const op = "service.admin.Login"

	log := s.log.With(slog.String("op", op))

	admin, err := s.storage.AdminByName(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrAdminNotFound) {
			log.Info("unknown admin", slog.String("name", name))
			return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		log.Error("failed to get admin", sl.Error(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	// Checking if password correct
	if err := bcrypt.CompareHashAndPassword(admin.PassHash, []byte(password)); err != nil {
		log.Info("incorrect password", slog.String("name", name))
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := jwt.NewToken(admin, s.tokenTTL, secret)
	if err != nil {
		log.Error("failed to create new token", sl.Error(err))
		return "", fmt.Errorf("%s: failed to create new token: %w", op, err)
	}

	return token, nil
}
