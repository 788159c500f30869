package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unidash/internal/app/models/dto"
	"github.com/yigit/unidash/internal/app/services"
	"github.com/yigit/unidash/internal/middleware"
)

// NavigationController serves the sidebar menu of the caller
type NavigationController struct {
	navigationService services.NavigationService
}

// NewNavigationController creates a new NavigationController
func NewNavigationController(navigationService services.NavigationService) *NavigationController {
	return &NavigationController{navigationService: navigationService}
}

// GetMenu godoc
// @Summary Get the caller's navigation menu
// @Tags navigation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=[]models.MenuItem}
// @Router /navigation [get]
func (nc *NavigationController) GetMenu(c *gin.Context) {
	role, _ := middleware.CurrentRole(c)

	items, err := nc.navigationService.Menu(c.Request.Context(), role)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(items, ""))
}
