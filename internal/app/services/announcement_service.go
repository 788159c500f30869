package services

import (
	"context"

	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/app/repositories"
	"github.com/yigit/unidash/internal/pkg/helpers"
	"github.com/yigit/unidash/internal/pkg/latency"
)

// AnnouncementService lists announcements
type AnnouncementService interface {
	List(ctx context.Context, page, limit int) ([]*models.Announcement, models.Pagination, error)
}

type announcementServiceImpl struct {
	announcementRepo *repositories.AnnouncementRepository
	sim              *latency.Simulator
}

// NewAnnouncementService creates a new announcement service instance
func NewAnnouncementService(announcementRepo *repositories.AnnouncementRepository, sim *latency.Simulator) AnnouncementService {
	return &announcementServiceImpl{
		announcementRepo: announcementRepo,
		sim:              sim,
	}
}

func (s *announcementServiceImpl) List(ctx context.Context, page, limit int) ([]*models.Announcement, models.Pagination, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, models.Pagination{}, err
	}

	announcements, pagination := helpers.Paginate(s.announcementRepo.All(), page, limit)
	return announcements, pagination, nil
}
