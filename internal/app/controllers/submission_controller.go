package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eren/bootcamphub/internal/app/models/dto"
	"github.com/eren/bootcamphub/internal/app/services"
	"github.com/eren/bootcamphub/internal/middleware"
)

// SubmissionController handles the public contribution endpoints
type SubmissionController struct {
	submissionService services.SubmissionService
}

// NewSubmissionController creates a new SubmissionController
func NewSubmissionController(submissionService services.SubmissionService) *SubmissionController {
	return &SubmissionController{
		submissionService: submissionService,
	}
}

// SubmitProfile handles a student profile submission
// @Summary Submit a student profile
// @Description Opens a pull request adding the student to the site data
// @Tags submissions
// @Accept json
// @Produce json
// @Param request body dto.ProfileSubmissionRequest true "Profile information"
// @Success 201 {object} dto.APIResponse{data=dto.SubmissionResponse} "Submission published for review"
// @Failure 400 {object} dto.ErrorResponse "Invalid submission data"
// @Failure 404 {object} dto.ErrorResponse "Referenced bootcamp not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to publish submission"
// @Router /profiles [post]
func (c *SubmissionController) SubmitProfile(ctx *gin.Context) {
	var req dto.ProfileSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid profile data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.submissionService.SubmitProfile(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// SubmitProject handles a project submission
// @Summary Submit a project
// @Description Opens a pull request adding the project to the site data
// @Tags submissions
// @Accept json
// @Produce json
// @Param request body dto.ProjectSubmissionRequest true "Project information"
// @Success 201 {object} dto.APIResponse{data=dto.SubmissionResponse} "Submission published for review"
// @Failure 400 {object} dto.ErrorResponse "Invalid submission data"
// @Failure 404 {object} dto.ErrorResponse "Referenced bootcamp not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to publish submission"
// @Router /projects [post]
func (c *SubmissionController) SubmitProject(ctx *gin.Context) {
	var req dto.ProjectSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid project data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.submissionService.SubmitProject(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}
