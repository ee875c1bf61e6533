package utils

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// referenceAlphabet excludes ambiguous characters (0/O, 1/I) so reference
// IDs survive being read over the phone.
const referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateReferenceID generates an opaque inquiry reference.
// Format: MM-XXXXXXXX
// Example: MM-K4T7WQ2H
func GenerateReferenceID() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString("MM-")
	for _, c := range b {
		sb.WriteByte(referenceAlphabet[int(c)%len(referenceAlphabet)])
	}
	return sb.String(), nil
}

// GenerateUploadName produces a collision-resistant object name for the
// image host, keeping the original extension.
func GenerateUploadName(original string) (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	ext := ""
	if i := strings.LastIndex(original, "."); i >= 0 {
		ext = strings.ToLower(original[i:])
	}
	return fmt.Sprintf("magnet_%x%s", b, ext), nil
}
