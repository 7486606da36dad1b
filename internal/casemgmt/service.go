// Package casemgmt implements the admin supervision workflow over
// consultations: pending cases are claimed into supervision and resolved
// with notes. It only ever touches the case-management fields; the triage
// pipeline's own output is read-only here.
package casemgmt

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"wecare/internal/triage"
)

var ErrInvalidTransition = errors.New("invalid case status transition")

type Service interface {
	ListCases(ctx context.Context, status triage.Status, priority triage.Priority) ([]triage.Consultation, error)
	GetCase(ctx context.Context, id uuid.UUID) (*triage.Consultation, error)
	Claim(ctx context.Context, caseID, adminID uuid.UUID) (*triage.Consultation, error)
	Resolve(ctx context.Context, caseID, adminID uuid.UUID, notes string) (*triage.Consultation, error)
}

type service struct {
	repo triage.Repository
}

func NewService(repo triage.Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListCases(ctx context.Context, status triage.Status, priority triage.Priority) ([]triage.Consultation, error) {
	return s.repo.ListCases(ctx, status, priority)
}

func (s *service) GetCase(ctx context.Context, id uuid.UUID) (*triage.Consultation, error) {
	return s.repo.GetByID(ctx, id)
}

// Claim moves a pending case under the supervision of the calling admin.
func (s *service) Claim(ctx context.Context, caseID, adminID uuid.UUID) (*triage.Consultation, error) {
	c, err := s.repo.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c.Status != triage.StatusPending {
		return nil, fmt.Errorf("%w: cannot claim a %s case", ErrInvalidTransition, c.Status)
	}

	c.Status = triage.StatusUnderSupervision
	c.SupervisingAdminID = &adminID
	if err := s.repo.UpdateCase(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Resolve closes a case under supervision. Resolution notes are required.
func (s *service) Resolve(ctx context.Context, caseID, adminID uuid.UUID, notes string) (*triage.Consultation, error) {
	if notes == "" {
		return nil, fmt.Errorf("resolution notes are required")
	}

	c, err := s.repo.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c.Status != triage.StatusUnderSupervision {
		return nil, fmt.Errorf("%w: cannot resolve a %s case", ErrInvalidTransition, c.Status)
	}

	c.Status = triage.StatusSolved
	c.SupervisingAdminID = &adminID
	c.SupervisionNotes = notes
	if err := s.repo.UpdateCase(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
