package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user document in the database.
// The exercise log is embedded in the row as a JSONB array.
type UserDB struct {
	UserID    uuid.UUID   `json:"id" db:"user_id"`            // Primary key
	Username  string      `json:"username" db:"username"`     // Unique username
	Log       ExerciseLog `json:"log" db:"log"`               // Append-only exercise log
	CreatedAt time.Time   `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// UserSummaryDB is the id/username projection returned by the user listing.
type UserSummaryDB struct {
	UserID   uuid.UUID `json:"id" db:"user_id"`
	Username string    `json:"username" db:"username"`
}
