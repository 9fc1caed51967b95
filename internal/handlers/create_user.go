package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// UserRegisterer defines the interface that the service must implement.
type UserRegisterer interface {
	Register(ctx context.Context, username string) (*models.UserDB, error)
}

// CreateUserRequest represents the JSON body for creating a user
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Username
	// required: true
	// default: fcc_test
	Username string `json:"username"`
}

// CreateUserResponse represents a created or fetched user
// swagger:model CreateUserResponse
type CreateUserResponse struct {
	// Username
	// default: fcc_test
	Username string `json:"username"`

	// User identifier
	ID string `json:"id"`
}

// CreateUserErrorResponse represents an error response for user creation
// swagger:model CreateUserErrorResponse
type CreateUserErrorResponse struct {
	// Error message
	// default: Username is required
	Error string `json:"error"`
}

// NewCreateUserHandler returns an HTTP handler for creating a user.
// Calling it twice with the same username returns the same identifier.
// @Summary Create or fetch a user
// @Description Creates a user with an empty exercise log. If the username is already registered, returns the existing user unchanged.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User creation request"
// @Success 200 {object} handlers.CreateUserResponse "Created or existing user"
// @Failure 400 {object} handlers.CreateUserErrorResponse "Missing username / invalid request"
// @Failure 500 {object} handlers.CreateUserErrorResponse "Internal server error"
// @Router /api/users [post]
func NewCreateUserHandler(svc UserRegisterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateUserErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		if req.Username == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateUserErrorResponse{
				Error: "Username is required",
			})
			return
		}

		user, err := svc.Register(r.Context(), req.Username)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CreateUserErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CreateUserResponse{
			Username: user.Username,
			ID:       user.UserID.String(),
		})
	}
}
