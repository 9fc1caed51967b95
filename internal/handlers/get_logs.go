package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/sbilibin2017/exercise-tracker/internal/services"
)

// LogGetter defines the interface that the service must implement.
type LogGetter interface {
	GetLog(ctx context.Context, userID, from, to, limit string) (*models.UserDB, []models.Exercise, error)
}

// LogEntry represents one exercise in the log response
// swagger:model LogEntry
type LogEntry struct {
	// Description
	// default: test run
	Description string `json:"description"`

	// Duration
	// default: 30
	Duration int64 `json:"duration"`

	// Date rendered as a calendar day
	// default: Sun Jan 15 2023
	Date string `json:"date"`
}

// GetLogsResponse represents a filtered exercise log
// swagger:model GetLogsResponse
type GetLogsResponse struct {
	// Username
	Username string `json:"username"`

	// Number of entries after filtering and truncation
	Count int `json:"count"`

	// User identifier
	ID string `json:"id"`

	// Filtered log entries in insertion order
	Log []LogEntry `json:"log"`
}

// GetLogsErrorResponse represents an error response for the log query
// swagger:model GetLogsErrorResponse
type GetLogsErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewGetLogsHandler returns an HTTP handler for querying a user's exercise
// log. The from/to bounds are inclusive; unparseable bounds and limits are
// ignored rather than rejected.
// @Summary Query a user's exercise log
// @Description Returns the user's log filtered by optional inclusive date bounds and truncated to the first N entries.
// @Tags exercises
// @Produce json
// @Param id path string true "User identifier"
// @Param from query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param to query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} handlers.GetLogsResponse "Filtered log"
// @Failure 404 {object} handlers.GetLogsErrorResponse "User not found"
// @Failure 500 {object} handlers.GetLogsErrorResponse "Internal server error"
// @Router /api/users/{id}/logs [get]
func NewGetLogsHandler(svc LogGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID := chi.URLParam(r, "id")
		query := r.URL.Query()

		user, log, err := svc.GetLog(r.Context(), userID, query.Get("from"), query.Get("to"), query.Get("limit"))
		if err != nil {
			switch err {
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GetLogsErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GetLogsErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		entries := make([]LogEntry, 0, len(log))
		for _, e := range log {
			entries = append(entries, LogEntry{
				Description: e.Description,
				Duration:    e.Duration,
				Date:        e.Date.Format(responseDateLayout),
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GetLogsResponse{
			Username: user.Username,
			Count:    len(entries),
			ID:       user.UserID.String(),
			Log:      entries,
		})
	}
}
