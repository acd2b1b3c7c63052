package models

// Bootcamp defines a single bootcamp edition as stored in bootcamps.json.
// Associated entities are referenced by id only; the resolved objects live
// on BootcampDetails, never on the stored record.
type Bootcamp struct {
	ID       string `json:"id" example:"b1"`                          // Unique identifier for the bootcamp
	Location string `json:"location" example:"Istanbul"`              // City the bootcamp ran in
	Date     string `json:"date" example:"2025-06-15"`                // Start date of the bootcamp
	Image    string `json:"image,omitempty" example:"/uploads/b1.png"` // Optional cover image path

	StudentIDs    []string `json:"studentIds,omitempty"`    // IDs of participating students
	InstructorIDs []string `json:"instructorIds,omitempty"` // IDs of teaching instructors
	ProjectIDs    []string `json:"projectIds,omitempty"`    // IDs of projects built during the bootcamp
	SponsorIDs    []string `json:"sponsorIds,omitempty"`    // IDs of sponsoring organizations
}

// BootcampDetails is the read-only joined view of a bootcamp: the base record
// plus the resolved entities behind its id arrays. Recomputed on every read,
// never persisted. The resolved slices are always non-nil.
type BootcampDetails struct {
	Bootcamp

	Students    []Student    `json:"students"`
	Instructors []Instructor `json:"instructors"`
	Projects    []Project    `json:"projects"`
	Sponsors    []Sponsor    `json:"sponsors"`
}
