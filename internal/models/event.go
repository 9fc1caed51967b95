package models

// ExerciseEvent is published to Kafka after a successful exercise append.
type ExerciseEvent struct {
	EventID     string `json:"event_id"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int64  `json:"duration"`
	Date        string `json:"date"`
	Timestamp   int64  `json:"timestamp"`
}
