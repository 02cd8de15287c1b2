package util

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const buildIDLength = 21

// NewBuildID returns a fresh identifier for a graph build run.
func NewBuildID() (string, error) {
	return gonanoid.New(buildIDLength)
}

// IsBuildID reports whether s has the shape of an id returned by NewBuildID.
func IsBuildID(s string) bool {
	if len(s) != buildIDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-':
		default:
			return false
		}
	}
	return true
}
