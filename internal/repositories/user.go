package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/middlewares"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user document with its embedded log, or nil if the
// identifier does not resolve.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, log, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByUsername returns the user document by exact username match, or nil
// if no such user exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, log, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// List returns all users projected to id and username, logs omitted.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserSummaryDB, error) {
	const query = `
		SELECT user_id, username
		FROM users
		ORDER BY created_at
	`

	var users []models.UserSummaryDB
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// execer prefers the per-request transaction when one is present.
func (r *UserWriteRepository) execer(ctx context.Context) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

// Save inserts a new user with an empty log and returns the stored document.
// Username uniqueness is left to the unique index: a concurrent duplicate
// insert surfaces as a constraint violation from the store.
func (r *UserWriteRepository) Save(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (username)
		VALUES ($1)
		RETURNING user_id, username, log, created_at, updated_at
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.execer(ctx), &user, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// AppendExercise pushes one exercise onto the user's embedded log.
func (r *UserWriteRepository) AppendExercise(ctx context.Context, userID uuid.UUID, exercise models.Exercise) error {
	const query = `
		UPDATE users
		SET log = log || $2::jsonb, updated_at = NOW()
		WHERE user_id = $1
	`

	entry, err := json.Marshal(exercise)
	if err != nil {
		return err
	}

	res, err := r.execer(ctx).ExecContext(ctx, query, userID, entry)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, string(entry)},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
