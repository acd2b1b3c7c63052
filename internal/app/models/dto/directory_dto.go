package dto

import "github.com/eren/bootcamphub/internal/app/models"

// Directory entries are site-wide listings flattened from all bootcamps.
// Each entry carries the bootcamp it was first seen under.

// StudentEntry is a student annotated with its bootcamp
type StudentEntry struct {
	models.Student
	BootcampID       string `json:"bootcampId" example:"b1"`
	BootcampLocation string `json:"bootcampLocation" example:"Istanbul"`
}

// InstructorEntry is an instructor annotated with its bootcamp
type InstructorEntry struct {
	models.Instructor
	BootcampID       string `json:"bootcampId" example:"b1"`
	BootcampLocation string `json:"bootcampLocation" example:"Istanbul"`
}

// ProjectEntry is a project annotated with its bootcamp
type ProjectEntry struct {
	models.Project
	BootcampID       string `json:"bootcampId" example:"b1"`
	BootcampLocation string `json:"bootcampLocation" example:"Istanbul"`
}

// SponsorEntry is a sponsor annotated with its bootcamp
type SponsorEntry struct {
	models.Sponsor
	BootcampID       string `json:"bootcampId" example:"b1"`
	BootcampLocation string `json:"bootcampLocation" example:"Istanbul"`
}
