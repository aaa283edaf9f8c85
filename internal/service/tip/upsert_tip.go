package tip

import (
	"context"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
)

// UpsertTip creates a tip when input carries no ID or a zero ID and
// replaces the identified tip otherwise. The referenced topic must exist
// in both cases. The returned flag reports whether a tip was created.
func (s *Service) UpsertTip(ctx context.Context, input UpsertTipInput) (*domain.Tip, bool, error) {
	if input.TipID != nil && *input.TipID == 0 {
		input.TipID = nil
	}
	if err := input.Validate(); err != nil {
		return nil, false, err
	}

	if input.TipID == nil {
		created, err := s.CreateTip(ctx, input.create())
		return created, err == nil, err
	}

	updated, err := s.UpdateTip(ctx, input.update())
	return updated, false, err
}
