// Package datauri parses inline image payloads submitted through the
// contribution forms as data URIs (data:image/<ext>;base64,<payload>).
package datauri

import "regexp"

// imagePattern matches exactly the prefix the contribution forms produce.
// Anything else is treated as "no image", not as an error.
var imagePattern = regexp.MustCompile(`^data:image/([A-Za-z-+/]+);base64,(.+)$`)

// Image is a decoded-from-URI image reference. Payload stays base64 encoded;
// the change publisher ships it as file content verbatim.
type Image struct {
	// Subtype is the image subtype from the URI, used as the file extension
	Subtype string
	// Payload is the base64 payload without the prefix
	Payload string
}

// ParseImage extracts the subtype and base64 payload from a data URI.
// Returns ok=false when the value does not match the expected pattern.
func ParseImage(value string) (Image, bool) {
	matches := imagePattern.FindStringSubmatch(value)
	if len(matches) != 3 {
		return Image{}, false
	}

	return Image{Subtype: matches[1], Payload: matches[2]}, true
}
