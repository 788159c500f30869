package repositories

import (
	"github.com/yigit/unidash/internal/app/models"
)

// AnnouncementRepository handles announcement lookups
type AnnouncementRepository struct {
	announcements []*models.Announcement
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(ds *models.Dataset) *AnnouncementRepository {
	return &AnnouncementRepository{announcements: ds.Announcements}
}

// All returns every announcement in generation order.
func (r *AnnouncementRepository) All() []*models.Announcement {
	return r.announcements
}
