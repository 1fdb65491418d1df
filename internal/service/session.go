package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
)

// SessionService handles user sessions, assessments and per-step progress
type SessionService struct {
	sessionRepo    domain.SessionRepository
	assessmentRepo domain.AssessmentRepository
	progressRepo   domain.ProgressRepository
}

// NewSessionService creates a new session service
func NewSessionService(
	sessionRepo domain.SessionRepository,
	assessmentRepo domain.AssessmentRepository,
	progressRepo domain.ProgressRepository,
) *SessionService {
	return &SessionService{
		sessionRepo:    sessionRepo,
		assessmentRepo: assessmentRepo,
		progressRepo:   progressRepo,
	}
}

// CreateSession creates a fresh session with a server-generated id.
func (s *SessionService) CreateSession(ctx context.Context, req domain.UserSessionCreate) (*domain.UserSession, error) {
	now := time.Now().UTC()
	session := &domain.UserSession{
		ID:            uuid.NewString(),
		CreatedAt:     now,
		UpdatedAt:     now,
		CurrentStep:   req.CurrentStep,
		IsComplete:    false,
		UserResponses: req.UserResponses,
	}
	if session.UserResponses == nil {
		session.UserResponses = map[string]any{}
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// GetSession retrieves a session by id
func (s *SessionService) GetSession(ctx context.Context, id string) (*domain.UserSession, error) {
	return s.sessionRepo.Get(ctx, id)
}

// UpdateSession applies a partial update; omitted fields keep their values.
func (s *SessionService) UpdateSession(ctx context.Context, id string, update domain.UserSessionUpdate) (*domain.UserSession, error) {
	return s.sessionRepo.Update(ctx, id, update, time.Now().UTC())
}

// CreateAssessment records the circumstances questionnaire for a session.
// Submissions are append-only; a repeat submission creates a new record.
func (s *SessionService) CreateAssessment(ctx context.Context, req domain.AssessmentCreate) (*domain.AssessmentResponse, error) {
	assessment := &domain.AssessmentResponse{
		ID:                   uuid.NewString(),
		SessionID:            req.SessionID,
		Relationship:         req.Relationship,
		Location:             req.Location,
		Religion:             req.Religion,
		Budget:               req.Budget,
		Preference:           req.Preference,
		Timeline:             req.Timeline,
		SpecialCircumstances: req.SpecialCircumstances,
		CreatedAt:            time.Now().UTC(),
	}
	if err := s.assessmentRepo.Create(ctx, assessment); err != nil {
		return nil, fmt.Errorf("failed to create assessment: %w", err)
	}
	return assessment, nil
}

// GetAssessment returns the stored assessment for a session
func (s *SessionService) GetAssessment(ctx context.Context, sessionID string) (*domain.AssessmentResponse, error) {
	return s.assessmentRepo.GetBySession(ctx, sessionID)
}

// SaveProgress upserts the progress record for one (session, step) pair.
// Repeated saves overwrite tasks and data, never duplicate the record.
func (s *SessionService) SaveProgress(ctx context.Context, save domain.StepProgressSave) (*domain.StepProgress, error) {
	return s.progressRepo.Upsert(ctx, save, time.Now().UTC())
}

// ListProgress returns all step progress saved under a session.
func (s *SessionService) ListProgress(ctx context.Context, sessionID string) ([]domain.StepProgress, error) {
	return s.progressRepo.ListBySession(ctx, sessionID)
}
