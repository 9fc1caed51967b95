package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/metrics"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// Error variables
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidDuration = errors.New("duration must be a number")
	ErrInvalidDate     = errors.New("invalid date")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserSummaryDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string) (*models.UserDB, error)
	AppendExercise(ctx context.Context, userID uuid.UUID, exercise models.Exercise) error
}

// UserService handles user registration and listing.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// Register creates a user with an empty log, or returns the existing user
// when the username is already taken. Safe to retry: calling twice with the
// same username yields the same identifier. The read-then-insert is not
// atomic; a concurrent duplicate insert is rejected by the store's unique
// index and propagates as a store error.
func (svc *UserService) Register(ctx context.Context, username string) (*models.UserDB, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "username", username, "err", err)
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user, err = svc.writer.Save(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return nil, err
	}

	metrics.UsersCreatedTotal.Inc()
	return user, nil
}

// List returns all users projected to id and username.
func (svc *UserService) List(ctx context.Context) ([]models.UserSummaryDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}
