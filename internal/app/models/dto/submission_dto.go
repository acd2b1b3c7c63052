package dto

// ProfileSubmissionRequest carries a visitor-submitted student profile.
// Image, when present, is an inline data URI (data:image/<ext>;base64,...).
type ProfileSubmissionRequest struct {
	Name       string `json:"name" binding:"required" example:"Alice Demir"`
	Location   string `json:"location" binding:"required" example:"Ankara"`
	Role       string `json:"role" binding:"required" example:"Backend Developer"`
	BootcampID string `json:"bootcampId" binding:"required" example:"b1"`
	Bio        string `json:"bio,omitempty"`
	Image      string `json:"image,omitempty"`
	GithubURL  string `json:"githubUrl,omitempty" example:"https://github.com/alice"`
}

// ProjectSubmissionRequest carries a visitor-submitted project.
type ProjectSubmissionRequest struct {
	Name        string `json:"name" binding:"required" example:"Campus Navigator"`
	Description string `json:"description" binding:"required"`
	BootcampID  string `json:"bootcampId" binding:"required" example:"b1"`
	GithubURL   string `json:"githubUrl" binding:"required" example:"https://github.com/alice/campus-navigator"`
	DemoURL     string `json:"demoUrl,omitempty"`
	Image       string `json:"image,omitempty"`
}

// SubmissionResponse reports the outcome of a successful submission
type SubmissionResponse struct {
	EntityID       string `json:"entityId" example:"6f1c2a34-..."`
	PullRequestURL string `json:"pullRequestUrl" example:"https://github.com/acme/site/pull/42"`
}
