package service

import (
	"context"

	"go.uber.org/zap"
)

// NotifyOverdue reports every unreturned borrowing due by tomorrow. It never mutates the ledger.
func (s *Service) NotifyOverdue(ctx context.Context) (int, error) {
	until := s.today().AddDays(1)
	items, err := s.repo.ListOverdue(ctx, until)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		s.notify(ctx, msgNoOverdue)
		return 0, nil
	}
	for _, o := range items {
		s.notify(ctx, overdueMessage(o))
	}
	s.log.Info("overdue sweep", zap.Int("borrowings", len(items)), zap.Stringer("until", until))
	return len(items), nil
}
