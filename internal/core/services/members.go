package services

import (
	"context"
	"fmt"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
	"github.com/civica-labs/ratsdata-cli/internal/core/ports/driving"
)

// Ensure MemberService implements the interface.
var _ driving.MemberService = (*MemberService)(nil)

// MemberService answers queries over the joined membership rows.
type MemberService struct {
	dataset driving.DatasetService
}

// NewMemberService creates a new member service.
func NewMemberService(dataset driving.DatasetService) *MemberService {
	return &MemberService{dataset: dataset}
}

// Load returns every joined membership row.
func (s *MemberService) Load(ctx context.Context) ([]domain.MemberRow, error) {
	rows, err := s.dataset.MemberRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}
	return rows, nil
}

// Query returns the rows matching q, preserving source order. A nil
// organization set means no filter; an empty non-nil set selects nothing.
func (s *MemberService) Query(ctx context.Context, q domain.MemberQuery) ([]domain.MemberRow, error) {
	rows, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	if q.Organizations != nil {
		rows = domain.FilterByCategory(rows,
			func(r domain.MemberRow) string { return r.Organization }, q.Organizations)
	}
	return rows, nil
}
