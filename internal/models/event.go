package models

import "time"

// Event represents a recorded change to the task collection or user accounts.
type Event struct {
	ID        string    `json:"_id"`
	Type      string    `json:"type"`  // e.g., "task.create", "user.register"
	Level     string    `json:"level"` // e.g., "info", "warn"
	Message   string    `json:"message"`
	TaskID    *string   `json:"taskId,omitempty"` // Nullable for account events
	CreatedAt time.Time `json:"createdAt"`
}
