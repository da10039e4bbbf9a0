package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// hexColourRegex matches CSS hex colours, short or long form.
var hexColourRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColour validates a stored sector colour. Only hex notation is
// accepted so stored values can be embedded in SVG attributes verbatim.
func ValidateColour(colour string) error {
	if colour == "" {
		return New(ErrCodeInvalidColour, "colour cannot be empty")
	}
	if !hexColourRegex.MatchString(colour) {
		return New(ErrCodeInvalidColour, "invalid hex colour: %q (expected #rgb or #rrggbb)", colour)
	}
	return nil
}

// ValidateSectorID validates a sector identifier as produced by the slug
// rules: lowercase alphanumerics and hyphens, never empty.
func ValidateSectorID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "sector id cannot be empty")
	}
	for _, r := range id {
		if r != '-' && !unicode.IsLower(r) && !unicode.IsDigit(r) {
			return New(ErrCodeInvalidInput, "invalid sector id: %q", id)
		}
	}
	return nil
}

// ValidateOutputPath validates a user-supplied output path. It rejects
// empty paths and embedded null bytes; everything else is left to the OS.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidInput, "output path contains invalid characters")
	}
	return nil
}
