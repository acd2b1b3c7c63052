package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eren/bootcamphub/internal/app/models/dto"
	"github.com/eren/bootcamphub/internal/app/services"
	"github.com/eren/bootcamphub/internal/middleware"
)

// BootcampController handles bootcamp read operations
type BootcampController struct {
	bootcampService services.BootcampService
}

// NewBootcampController creates a new BootcampController
func NewBootcampController(bootcampService services.BootcampService) *BootcampController {
	return &BootcampController{
		bootcampService: bootcampService,
	}
}

// GetAllBootcamps retrieves all bootcamps with resolved associations
// @Summary Get all bootcamps
// @Description Retrieves every bootcamp with its students, instructors, projects and sponsors resolved
// @Tags bootcamps
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.BootcampDetails} "Bootcamps retrieved successfully"
// @Failure 503 {object} dto.ErrorResponse "Site data unavailable"
// @Router /bootcamps [get]
func (c *BootcampController) GetAllBootcamps(ctx *gin.Context) {
	bootcamps, err := c.bootcampService.GetAllBootcampDetails()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      bootcamps,
		Timestamp: time.Now(),
	})
}

// GetBootcampByID retrieves one bootcamp with resolved associations
// @Summary Get bootcamp details
// @Description Retrieves one bootcamp by id with its associations resolved
// @Tags bootcamps
// @Produce json
// @Param id path string true "Bootcamp ID"
// @Success 200 {object} dto.APIResponse{data=models.BootcampDetails} "Bootcamp retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Bootcamp not found"
// @Failure 503 {object} dto.ErrorResponse "Site data unavailable"
// @Router /bootcamps/{id} [get]
func (c *BootcampController) GetBootcampByID(ctx *gin.Context) {
	id := ctx.Param("id")

	bootcamp, err := c.bootcampService.GetBootcampDetails(id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      bootcamp,
		Timestamp: time.Now(),
	})
}
