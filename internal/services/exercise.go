package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/metrics"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// dateLayout is the calendar-day input format for exercise dates and
// log query bounds.
const dateLayout = "2006-01-02"

// LogCache caches user documents for the log query path.
type LogCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) // Returns cached document or nil
	Set(ctx context.Context, user *models.UserDB) error                // Caches a document
	Delete(ctx context.Context, userID uuid.UUID) error                // Invalidates a document
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ExerciseService handles exercise appends and log queries.
type ExerciseService struct {
	readRepo    UserReader
	writeRepo   UserWriter
	cacheRepo   LogCache
	kafkaWriter KafkaWriter
}

// NewExerciseService creates a new ExerciseService. The cache and Kafka
// writer may be nil, in which case caching and event publishing are skipped.
func NewExerciseService(
	readRepo UserReader,
	writeRepo UserWriter,
	cacheRepo LogCache,
	kafkaWriter KafkaWriter,
) *ExerciseService {
	return &ExerciseService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		cacheRepo:   cacheRepo,
		kafkaWriter: kafkaWriter,
	}
}

// parseDate accepts a calendar day or a full RFC3339 timestamp.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// Add validates and appends one exercise to the user's log. The duration
// must parse as a base-10 integer; the date defaults to now when omitted.
// Returns the owning user and the appended entry.
func (svc *ExerciseService) Add(
	ctx context.Context,
	userID, description, duration, date string,
) (*models.UserDB, *models.Exercise, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, nil, ErrUserNotFound
	}

	n, err := strconv.ParseInt(duration, 10, 64)
	if err != nil {
		return nil, nil, ErrInvalidDuration
	}

	resolvedDate := time.Now().UTC()
	if date != "" {
		resolvedDate, err = parseDate(date)
		if err != nil {
			return nil, nil, ErrInvalidDate
		}
	}

	user, err := svc.readRepo.GetByID(ctx, uid)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	exercise := models.Exercise{
		Description: description,
		Duration:    n,
		Date:        resolvedDate,
	}

	if err := svc.writeRepo.AppendExercise(ctx, uid, exercise); err != nil {
		logger.Log.Errorw("failed to append exercise", "userID", userID, "err", err)
		return nil, nil, err
	}

	// The cached document is stale now; drop it so the next log query
	// reads the appended entry.
	if svc.cacheRepo != nil {
		if err := svc.cacheRepo.Delete(ctx, uid); err != nil {
			logger.Log.Errorw("failed to invalidate log cache", "userID", userID, "err", err)
		}
	}

	metrics.ExercisesAppendedTotal.Inc()
	svc.publishExercise(ctx, user, exercise)

	return user, &exercise, nil
}

// publishExercise publishes an append event to Kafka, fire-and-forget.
func (svc *ExerciseService) publishExercise(ctx context.Context, user *models.UserDB, exercise models.Exercise) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "userID", user.UserID)
		return
	}

	event := models.ExerciseEvent{
		EventID:     uuid.NewString(),
		UserID:      user.UserID.String(),
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date.Format(time.RFC3339),
		Timestamp:   time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal exercise event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish exercise event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("exercise event published", "event_id", event.EventID, "userID", event.UserID)
	}
}

// GetLog returns the user and its exercise log filtered by the optional
// from/to/limit parameters. An unparseable bound or limit is ignored, not
// rejected; bounds are inclusive; the limit takes a prefix of the filtered
// sequence in original insertion order.
func (svc *ExerciseService) GetLog(
	ctx context.Context,
	userID, from, to, limit string,
) (*models.UserDB, []models.Exercise, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, nil, ErrUserNotFound
	}

	user, err := svc.getUserDocument(ctx, uid)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	log := make([]models.Exercise, len(user.Log))
	copy(log, user.Log)

	if from != "" {
		if fromDate, err := time.Parse(dateLayout, from); err == nil {
			log = filterLog(log, func(e models.Exercise) bool {
				return !e.Date.Before(fromDate)
			})
		}
	}

	if to != "" {
		if toDate, err := time.Parse(dateLayout, to); err == nil {
			log = filterLog(log, func(e models.Exercise) bool {
				return !e.Date.After(toDate)
			})
		}
	}

	if limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			if n < 0 {
				n = 0
			}
			if n < len(log) {
				log = log[:n]
			}
		}
	}

	return user, log, nil
}

// getUserDocument reads through the cache when one is configured.
func (svc *ExerciseService) getUserDocument(ctx context.Context, uid uuid.UUID) (*models.UserDB, error) {
	if svc.cacheRepo != nil {
		user, err := svc.cacheRepo.Get(ctx, uid)
		if err != nil {
			logger.Log.Errorw("log cache read failed", "userID", uid, "err", err)
		} else if user != nil {
			return user, nil
		}
	}

	user, err := svc.readRepo.GetByID(ctx, uid)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", uid, "err", err)
		return nil, err
	}

	if user != nil && svc.cacheRepo != nil {
		if err := svc.cacheRepo.Set(ctx, user); err != nil {
			logger.Log.Errorw("log cache write failed", "userID", uid, "err", err)
		}
	}

	return user, nil
}

func filterLog(log []models.Exercise, keep func(models.Exercise) bool) []models.Exercise {
	filtered := log[:0]
	for _, e := range log {
		if keep(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
