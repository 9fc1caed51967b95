package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Exercise is a single logged activity entry. Entries are owned by exactly
// one user and are never mutated after insertion.
type Exercise struct {
	Description string    `json:"description"`
	Duration    int64     `json:"duration"`
	Date        time.Time `json:"date"`
}

// ExerciseLog is a user's ordered exercise log, persisted as a JSONB array.
type ExerciseLog []Exercise

// Value implements driver.Valuer so the log can be written as JSONB.
func (l ExerciseLog) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for reading the JSONB column.
func (l *ExerciseLog) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into ExerciseLog", src)
	}
}
