package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents a user account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// InterviewSession stores one scored practice answer: the question asked,
// the transcript the candidate gave, and the analysis result.
type InterviewSession struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	Field      string          `json:"field"`
	Question   string          `json:"question,omitempty"`
	Transcript json.RawMessage `json:"transcript"`
	Result     json.RawMessage `json:"result"`
	Rating     float64         `json:"rating"`
	CreatedAt  time.Time       `json:"created_at"`
}

// SessionInput holds the fields needed to record a new session
type SessionInput struct {
	UserID     uuid.UUID
	Field      string
	Question   string
	Transcript any
	Result     any
	Rating     float64
}
