package models

// Student defines a bootcamp participant as stored in students.json.
// A student is not tied to one bootcamp; the association lives in the
// owning bootcamp's studentIds array.
type Student struct {
	ID        string `json:"id" example:"s1"`                              // Unique identifier for the student
	Name      string `json:"name" example:"Alice Demir"`                   // Full name
	Location  string `json:"location" example:"Ankara"`                    // Where the student is based
	Role      string `json:"role" example:"Backend Developer"`             // Role or track during the bootcamp
	Bio       string `json:"bio,omitempty"`                                // Optional short biography
	Image     string `json:"image,omitempty" example:"/uploads/s1.png"`    // Optional profile image path
	GithubURL string `json:"githubUrl,omitempty" example:"https://github.com/alice"` // Optional external profile link
}
