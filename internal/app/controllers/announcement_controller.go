package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unidash/internal/app/models/dto"
	"github.com/yigit/unidash/internal/app/services"
	"github.com/yigit/unidash/internal/middleware"
	"github.com/yigit/unidash/internal/pkg/helpers"
)

// AnnouncementController handles announcement endpoints
type AnnouncementController struct {
	announcementService services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{announcementService: announcementService}
}

// ListAnnouncements godoc
// @Summary List announcements
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.Response{data=[]models.Announcement,pagination=models.Pagination}
// @Router /announcements [get]
func (ac *AnnouncementController) ListAnnouncements(c *gin.Context) {
	page, limit, err := helpers.ParsePaginationParams(c, helpers.DefaultAnnouncementPageSize)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	announcements, pagination, err := ac.announcementService.List(c.Request.Context(), page, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(announcements, pagination))
}
