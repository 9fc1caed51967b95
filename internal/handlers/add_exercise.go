package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/sbilibin2017/exercise-tracker/internal/services"
)

// responseDateLayout renders dates the way JS Date.toDateString does,
// calendar day only, no time component.
const responseDateLayout = "Mon Jan 02 2006"

// ExerciseAdder defines the interface that the service must implement.
type ExerciseAdder interface {
	Add(ctx context.Context, userID, description, duration, date string) (*models.UserDB, *models.Exercise, error)
}

// stringOrNumber accepts a JSON string or number and keeps its textual form,
// so `"duration": 30` and `"duration": "30"` are treated alike.
type stringOrNumber string

func (s *stringOrNumber) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*s = ""
	case string:
		*s = stringOrNumber(v)
	case float64:
		*s = stringOrNumber(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return fmt.Errorf("expected string or number, got %T", raw)
	}
	return nil
}

// AddExerciseRequest represents the JSON body for appending an exercise
// swagger:model AddExerciseRequest
type AddExerciseRequest struct {
	// Description
	// required: true
	// default: test run
	Description string `json:"description"`

	// Duration, accepted as a number or a numeric string
	// required: true
	// default: 30
	Duration stringOrNumber `json:"duration"`

	// Date in YYYY-MM-DD form; defaults to now when omitted
	// default: 2023-01-15
	Date string `json:"date"`
}

// AddExerciseResponse represents a successfully appended exercise
// swagger:model AddExerciseResponse
type AddExerciseResponse struct {
	// Owning user's username
	Username string `json:"username"`

	// Description
	// default: test run
	Description string `json:"description"`

	// Duration as a number
	// default: 30
	Duration int64 `json:"duration"`

	// Date rendered as a calendar day
	// default: Sun Jan 15 2023
	Date string `json:"date"`

	// Owning user's identifier
	ID string `json:"id"`
}

// AddExerciseErrorResponse represents an error response for exercise appends
// swagger:model AddExerciseErrorResponse
type AddExerciseErrorResponse struct {
	// Error message
	// default: Description and duration are required
	Error string `json:"error"`
}

// NewAddExerciseHandler returns an HTTP handler for appending an exercise
// to a user's log.
// @Summary Append an exercise
// @Description Appends one exercise to the user's log and persists the updated document. The date defaults to the current moment when omitted.
// @Tags exercises
// @Accept json
// @Produce json
// @Param id path string true "User identifier"
// @Param addExerciseRequest body handlers.AddExerciseRequest true "Exercise append request"
// @Success 200 {object} handlers.AddExerciseResponse "Appended exercise"
// @Failure 400 {object} handlers.AddExerciseErrorResponse "Missing or invalid fields"
// @Failure 404 {object} handlers.AddExerciseErrorResponse "User not found"
// @Failure 500 {object} handlers.AddExerciseErrorResponse "Internal server error"
// @Router /api/users/{id}/exercises [post]
func NewAddExerciseHandler(svc ExerciseAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID := chi.URLParam(r, "id")

		var req AddExerciseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddExerciseErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		if req.Description == "" || req.Duration == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddExerciseErrorResponse{
				Error: "Description and duration are required",
			})
			return
		}

		user, exercise, err := svc.Add(r.Context(), userID, req.Description, string(req.Duration), req.Date)
		if err != nil {
			switch err {
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AddExerciseErrorResponse{
					Error: "User not found",
				})
			case services.ErrInvalidDuration:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AddExerciseErrorResponse{
					Error: "Duration must be a number",
				})
			case services.ErrInvalidDate:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AddExerciseErrorResponse{
					Error: "Invalid date",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AddExerciseErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AddExerciseResponse{
			Username:    user.Username,
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        exercise.Date.Format(responseDateLayout),
			ID:          user.UserID.String(),
		})
	}
}
