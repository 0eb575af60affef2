package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateSession stores a scored interview answer and returns its ID
func (db *DB) CreateSession(ctx context.Context, input *SessionInput) (uuid.UUID, error) {
	transcriptJSON, err := json.Marshal(input.Transcript)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal transcript: %w", err)
	}
	resultJSON, err := json.Marshal(input.Result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO interview_sessions (user_id, field, question, transcript, result, rating)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		input.UserID, input.Field, input.Question, transcriptJSON, resultJSON, input.Rating,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// GetSession retrieves a session by ID, scoped to the owning user.
// Returns nil if not found.
func (db *DB) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*InterviewSession, error) {
	var s InterviewSession
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, field, COALESCE(question, ''), transcript, result, rating, created_at
		 FROM interview_sessions WHERE id = $1 AND user_id = $2`,
		sessionID, userID,
	).Scan(&s.ID, &s.UserID, &s.Field, &s.Question, &s.Transcript, &s.Result, &s.Rating, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

// SessionFilters holds optional filters for listing sessions
type SessionFilters struct {
	Field string
	Limit int
}

// ListSessions retrieves a user's sessions, newest first. The transcript
// column is omitted to keep listings light.
func (db *DB) ListSessions(ctx context.Context, userID uuid.UUID, filters SessionFilters) ([]InterviewSession, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, user_id, field, COALESCE(question, ''), result, rating, created_at
		FROM interview_sessions WHERE user_id = $1`
	args := []any{userID}
	argNum := 2

	if filters.Field != "" {
		query += fmt.Sprintf(" AND field ILIKE $%d", argNum)
		args = append(args, "%"+filters.Field+"%")
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []InterviewSession
	for rows.Next() {
		var s InterviewSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.Field, &s.Question, &s.Result, &s.Rating, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// DeleteSession deletes a session, scoped to the owning user
func (db *DB) DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM interview_sessions WHERE id = $1 AND user_id = $2`,
		sessionID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("session not found: %s", sessionID)
	}
	return nil
}
