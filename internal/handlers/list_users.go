package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.UserSummaryDB, error)
}

// UserListItem represents one user in the listing
// swagger:model UserListItem
type UserListItem struct {
	// User identifier
	ID string `json:"id"`

	// Username
	// default: fcc_test
	Username string `json:"username"`
}

// ListUsersErrorResponse represents an error response for the user listing
// swagger:model ListUsersErrorResponse
type ListUsersErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListUsersHandler returns an HTTP handler that lists all users.
// @Summary List users
// @Description Returns all users projected to id and username; exercise logs are omitted.
// @Tags users
// @Produce json
// @Success 200 {array} handlers.UserListItem "All users"
// @Failure 500 {object} handlers.ListUsersErrorResponse "Internal server error"
// @Router /api/users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListUsersErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		items := make([]UserListItem, 0, len(users))
		for _, u := range users {
			items = append(items, UserListItem{
				ID:       u.UserID.String(),
				Username: u.Username,
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(items)
	}
}
