package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eren/bootcamphub/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	bootcampController *controllers.BootcampController,
	directoryController *controllers.DirectoryController,
	submissionController *controllers.SubmissionController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Bootcamp routes (public access)
	bootcamps := v1.Group("/bootcamps")
	{
		bootcamps.GET("", bootcampController.GetAllBootcamps)
		bootcamps.GET("/:id", bootcampController.GetBootcampByID)
	}

	// Site-wide directory routes (public access)
	v1.GET("/students", directoryController.GetAllStudents)
	v1.GET("/instructors", directoryController.GetAllInstructors)
	v1.GET("/projects", directoryController.GetAllProjects)
	v1.GET("/sponsors", directoryController.GetAllSponsors)

	// Contribution routes: each submission becomes a pull request
	v1.POST("/profiles", submissionController.SubmitProfile)
	v1.POST("/projects", submissionController.SubmitProject)
}
