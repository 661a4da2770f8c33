package analyzer

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// SegmentType classifies the shape of a path segment.
type SegmentType int

const (
	TypeUnknown SegmentType = iota
	TypeNumeric
	TypeUUID
	TypeMD5
	TypeSHA1
	TypeSlug
)

var (
	reNumeric = regexp.MustCompile(`^\d+$`)
	reHex32   = regexp.MustCompile(`^[a-fA-F0-9]{32}$`)
	reHex40   = regexp.MustCompile(`^[a-fA-F0-9]{40}$`)
	reSlug    = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	reLetter  = regexp.MustCompile(`[A-Za-z]`)
)

// DetectType returns the shape of a single identifier-like token.
// Numeric, UUID and hash shapes are checked before the looser slug
// rule; a slug must mix letters with hyphens or underscores, so plain
// words like "users" stay Unknown and can serve as route keywords.
func DetectType(id string) SegmentType {
	if id == "" {
		return TypeUnknown
	}

	if reNumeric.MatchString(id) {
		return TypeNumeric
	}

	// MD5 before UUID: 32 hex chars without dashes is a hash, not a
	// compact UUID.
	if reHex32.MatchString(id) {
		return TypeMD5
	}
	if reHex40.MatchString(id) {
		return TypeSHA1
	}

	if strings.Contains(id, "-") {
		if _, err := uuid.Parse(id); err == nil {
			return TypeUUID
		}
	}

	if reSlug.MatchString(id) &&
		strings.ContainsAny(id, "-_") &&
		reLetter.MatchString(id) {
		return TypeSlug
	}

	return TypeUnknown
}
