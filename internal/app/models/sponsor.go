package models

// Sponsor defines a sponsoring organization as stored in sponsors.json.
type Sponsor struct {
	ID      string `json:"id" example:"sp1"`              // Unique identifier for the sponsor
	Name    string `json:"name" example:"Acme Cloud"`     // Organization name
	Type    string `json:"type" example:"gold"`           // Sponsorship tier or kind
	Logo    string `json:"logo,omitempty"`                // Optional logo path
	Website string `json:"website,omitempty"`             // Optional website URL
}
