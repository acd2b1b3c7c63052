package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eren/bootcamphub/internal/app/models/dto"
	"github.com/eren/bootcamphub/internal/app/services"
	"github.com/eren/bootcamphub/internal/middleware"
)

// DirectoryController handles the site-wide listing pages
type DirectoryController struct {
	directoryService services.DirectoryService
}

// NewDirectoryController creates a new DirectoryController
func NewDirectoryController(directoryService services.DirectoryService) *DirectoryController {
	return &DirectoryController{
		directoryService: directoryService,
	}
}

// GetAllStudents retrieves the site-wide student listing
// @Summary Get all students
// @Description Retrieves every student across all bootcamps, annotated with their bootcamp
// @Tags directory
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentEntry} "Students retrieved successfully"
// @Failure 503 {object} dto.ErrorResponse "Site data unavailable"
// @Router /students [get]
func (c *DirectoryController) GetAllStudents(ctx *gin.Context) {
	students, err := c.directoryService.ListStudents()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}

// GetAllInstructors retrieves the site-wide instructor listing
// @Summary Get all instructors
// @Description Retrieves every instructor across all bootcamps, annotated with their bootcamp
// @Tags directory
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.InstructorEntry} "Instructors retrieved successfully"
// @Failure 503 {object} dto.ErrorResponse "Site data unavailable"
// @Router /instructors [get]
func (c *DirectoryController) GetAllInstructors(ctx *gin.Context) {
	instructors, err := c.directoryService.ListInstructors()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      instructors,
		Timestamp: time.Now(),
	})
}

// GetAllProjects retrieves the site-wide project listing
// @Summary Get all projects
// @Description Retrieves every project across all bootcamps, annotated with their bootcamp
// @Tags directory
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ProjectEntry} "Projects retrieved successfully"
// @Failure 503 {object} dto.ErrorResponse "Site data unavailable"
// @Router /projects [get]
func (c *DirectoryController) GetAllProjects(ctx *gin.Context) {
	projects, err := c.directoryService.ListProjects()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      projects,
		Timestamp: time.Now(),
	})
}

// GetAllSponsors retrieves the site-wide sponsor listing
// @Summary Get all sponsors
// @Description Retrieves every sponsor across all bootcamps, annotated with their bootcamp
// @Tags directory
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.SponsorEntry} "Sponsors retrieved successfully"
// @Failure 503 {object} dto.ErrorResponse "Site data unavailable"
// @Router /sponsors [get]
func (c *DirectoryController) GetAllSponsors(ctx *gin.Context) {
	sponsors, err := c.directoryService.ListSponsors()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sponsors,
		Timestamp: time.Now(),
	})
}
