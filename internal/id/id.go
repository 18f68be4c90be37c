// Package id generates random identifiers with NanoID.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Opaque identifiers use letters and digits only, so that Markdown and HTML
// processing never escapes or splits them.
const (
	opaqueAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	opaqueSize     = 12
)

// Opaque creates prefix followed by a random uppercase alphanumeric NanoID,
// e.g. "WPHOLD3K9ZQ0M1B7XA".
//
// Returns an error if the system has insufficient entropy for secure random generation.
func Opaque(prefix string) (string, error) {
	n, err := gonanoid.Generate(opaqueAlphabet, opaqueSize)
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + n, nil
}
