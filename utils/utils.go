package utils

import (
	rndm "math/rand"
	"regexp"
)

// --- ID Generators ---

var digitRunes = []rune("0123456789")

// IDLength is the length of every record id in the store.
const IDLength = 22

// GenerateID creates a random numeric string of length n.
func GenerateID(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = digitRunes[rndm.Intn(len(digitRunes))]
	}
	return string(b)
}

var idPattern = regexp.MustCompile(`^[0-9]{22}$`)

// ValidID reports whether id matches the record id format. Handlers
// check this before touching the store.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// --- Image Validation ---

var SupportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}
