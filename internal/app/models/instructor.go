package models

// Instructor defines an instructor as stored in instructors.json.
type Instructor struct {
	ID          string `json:"id" example:"i1"`                  // Unique identifier for the instructor
	Name        string `json:"name" example:"Kerem Aydin"`       // Full name
	Location    string `json:"location" example:"Izmir"`         // Where the instructor is based
	Expertise   string `json:"expertise" example:"Distributed Systems"` // Main teaching area
	Company     string `json:"company,omitempty"`                // Optional current employer
	Bio         string `json:"bio,omitempty"`                    // Optional short biography
	Image       string `json:"image,omitempty"`                  // Optional profile image path
	GithubURL   string `json:"githubUrl,omitempty"`              // Optional GitHub profile
	LinkedinURL string `json:"linkedinUrl,omitempty"`            // Optional LinkedIn profile
}
