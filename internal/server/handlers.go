package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/interview-coach/internal/analysis"
	"github.com/jonathan/interview-coach/internal/db"
	"github.com/jonathan/interview-coach/internal/server/middleware"
	"github.com/jonathan/interview-coach/internal/types"
)

// AnalyzeRequest represents the request body for /analyze
type AnalyzeRequest struct {
	Field      string           `json:"field"`
	Question   string           `json:"question,omitempty"`
	Transcript types.Transcript `json:"transcript"`
}

// requireAuth wraps a handler with bearer-token authentication
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return middleware.RequireUser(s.jwtService)(next)
}

// handleUpdatePassword handles password update requests for the
// authenticated user.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	s.authHandler.UpdatePasswordWithUserID(w, r, userID)
}

// handleGetQuestions returns a question set for the requested field
func (s *Server) handleGetQuestions(w http.ResponseWriter, r *http.Request) {
	field := strings.TrimSpace(r.URL.Query().Get("field"))
	if field == "" {
		writeError(w, http.StatusBadRequest, "field query parameter is required")
		return
	}

	count := 0
	if countStr := r.URL.Query().Get("count"); countStr != "" {
		n, err := strconv.Atoi(countStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "count must be a positive integer")
			return
		}
		count = n
	}

	// Falls back to the built-in bank when no LLM client is configured
	// or generation fails.
	set := s.generator.GenerateOrFallback(r.Context(), field, count)
	writeJSON(w, http.StatusOK, set)
}

// handleAnalyze scores a transcript and returns the analysis result.
// Anonymous requests are allowed; when a valid bearer token is present
// the session is also persisted and its ID returned in X-Session-Id.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Field) == "" {
		writeError(w, http.StatusBadRequest, "field is required")
		return
	}

	result := analysis.Analyze(req.Transcript, req.Field)

	if userID, ok := s.authenticatedUser(r); ok {
		sessionID, err := s.db.CreateSession(r.Context(), &db.SessionInput{
			UserID:     userID,
			Field:      req.Field,
			Question:   req.Question,
			Transcript: req.Transcript,
			Result:     result,
			Rating:     result.Rating,
		})
		if err != nil {
			// Persistence failure must not block the analysis response.
			log.Printf("Failed to persist session for user %s: %v", userID, err)
		} else {
			w.Header().Set("X-Session-Id", sessionID.String())
		}
	}

	writeJSON(w, http.StatusOK, result)
}

// authenticatedUser returns the user ID from a bearer token if one is
// present and valid. Missing or invalid tokens are not an error here.
func (s *Server) authenticatedUser(r *http.Request) (uuid.UUID, bool) {
	token, ok := middleware.BearerToken(r)
	if !ok {
		return uuid.Nil, false
	}
	userID, err := s.jwtService.VerifyToken(token)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

// handleListSessions returns the authenticated user's session history
func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	filters := db.SessionFilters{
		Field: r.URL.Query().Get("field"),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		filters.Limit = n
	}

	sessions, err := s.db.ListSessions(r.Context(), userID, filters)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list sessions")
		return
	}
	if sessions == nil {
		sessions = []db.InterviewSession{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"sessions": sessions})
}

// handleGetSession returns one of the authenticated user's sessions
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid session ID")
		return
	}

	session, err := s.db.GetSession(r.Context(), userID, sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get session")
		return
	}
	if session == nil {
		err := &ErrSessionNotFound{SessionID: sessionID}
		writeError(w, HTTPStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// handleDeleteSession deletes one of the authenticated user's sessions
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid session ID")
		return
	}

	// Verify existence first so a missing session maps to 404.
	session, err := s.db.GetSession(r.Context(), userID, sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get session")
		return
	}
	if session == nil {
		notFound := &ErrSessionNotFound{SessionID: sessionID}
		writeError(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	if err := s.db.DeleteSession(r.Context(), userID, sessionID); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Session deleted"})
}
