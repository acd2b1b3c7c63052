package models

// Project defines a bootcamp project as stored in projects.json.
type Project struct {
	ID          string `json:"id" example:"p1"`                       // Unique identifier for the project
	Name        string `json:"name" example:"Campus Navigator"`       // Project name
	Description string `json:"description" example:"Indoor navigation for campuses"` // What the project does
	GithubURL   string `json:"githubUrl,omitempty"`                   // Optional source repository
	DemoURL     string `json:"demoUrl,omitempty"`                     // Optional live demo
	Image       string `json:"image,omitempty"`                       // Optional screenshot path
}
