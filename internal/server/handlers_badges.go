package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/badge-engine/internal/types"
)

// calculateBadgesRequest optionally narrows calculation to a project
// subset. An empty body means the full snapshot.
type calculateBadgesRequest struct {
	ProjectIDs []string `json:"project_ids" validate:"omitempty,dive,uuid"`
}

type calculateBadgesResponse struct {
	UserID string                       `json:"user_id"`
	Badges []types.UserBadgeWithDetails `json:"badges"`
}

func (s *Server) handleCalculateBadges(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.apiErrorResponse(w, invalidRequestError("invalid user id", err))
		return
	}

	projectIDs, err := s.parseProjectFilter(r)
	if err != nil {
		s.apiErrorResponse(w, err)
		return
	}

	badges, err := s.calculator.CalculateForUser(r.Context(), userID, projectIDs)
	if err != nil {
		s.apiErrorResponse(w, upstreamError("badge calculation failed", err))
		return
	}
	if badges == nil {
		badges = []types.UserBadgeWithDetails{}
	}

	s.jsonResponse(w, http.StatusOK, calculateBadgesResponse{
		UserID: userID.String(),
		Badges: badges,
	})
}

// parseProjectFilter reads the optional request body and returns the
// project IDs to restrict calculation to, nil for no restriction.
func (s *Server) parseProjectFilter(r *http.Request) ([]uuid.UUID, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, invalidRequestError("failed to read request body", err)
	}
	if len(body) == 0 {
		return nil, nil
	}

	var req calculateBadgesRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, invalidRequestError("invalid JSON body", err)
	}
	if err := s.validate.Struct(&req); err != nil {
		return nil, invalidRequestError("invalid project_ids", err)
	}
	if len(req.ProjectIDs) == 0 {
		return nil, nil
	}

	projectIDs := make([]uuid.UUID, 0, len(req.ProjectIDs))
	for _, raw := range req.ProjectIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, invalidRequestError("invalid project id", errors.New(raw))
		}
		projectIDs = append(projectIDs, id)
	}
	return projectIDs, nil
}
