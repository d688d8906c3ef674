package service

import (
	"context"
	"time"

	"fixwize-backend/internal/domain"
	"fixwize-backend/internal/repository"
)

type activityService struct {
	actRepo repository.ActivityRepository
}

func NewActivityService(actRepo repository.ActivityRepository) ActivityService {
	return &activityService{actRepo: actRepo}
}

func (s *activityService) Record(ctx context.Context, entry *domain.ActivityLogEntry) error {
	return s.actRepo.Create(ctx, entry)
}

func (s *activityService) Search(ctx context.Context, orgID int32, filter domain.ActivityFilter) ([]domain.ActivityLogEntry, error) {
	if filter.Window == "" {
		filter.Window = domain.ActivityWindowAll
	}
	return s.actRepo.Search(ctx, orgID, filter, time.Now())
}
