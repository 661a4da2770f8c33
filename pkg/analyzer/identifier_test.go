package analyzer

import "testing"

func TestDetectType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected SegmentType
	}{
		{"Numeric simple", "123", TypeNumeric},
		{"Numeric long", "9999999999", TypeNumeric},
		{"UUID v4", "550e8400-e29b-41d4-a716-446655440000", TypeUUID},
		{"UUID v1", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", TypeUUID},
		{"MD5 hash", "5d41402abc4b2a76b9719d911017c592", TypeMD5},
		{"SHA1 hash", "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d", TypeSHA1},
		{"Hyphenated slug", "blue-shirt-9", TypeSlug},
		{"Underscored slug", "my_first_post", TypeSlug},
		{"Plain word is not a slug", "users", TypeUnknown},
		{"Version tag", "v1", TypeUnknown},
		{"Hyphens without letters", "--1--2", TypeUnknown},
		{"Unparseable junk", "a b c!", TypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DetectType(tt.input)
			if result != tt.expected {
				t.Errorf("DetectType(%s) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDetectTypeEmpty(t *testing.T) {
	if result := DetectType(""); result != TypeUnknown {
		t.Errorf("Expected TypeUnknown for empty string, got %v", result)
	}
}
