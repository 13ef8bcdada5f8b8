package models

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// Household represents a flat whose members share expenses.
type Household struct {
	// Code is the shared flat code (format ABC-DEF-GHI) that identifies the household.
	Code string

	// Name is the display name of the household (e.g., "Storgatan 12").
	Name string

	// Members is the list of member e-mails, sorted.
	// Derived from the users whose flat code equals Code.
	Members []string

	// CreatedAt is the Unix timestamp when the household was created.
	CreatedAt int64
}

const flatCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewFlatCode generates a random flat code in the ABC-DEF-GHI format.
func NewFlatCode() (string, error) {
	var b strings.Builder
	alphabetSize := big.NewInt(int64(len(flatCodeAlphabet)))
	for i := 0; i < 9; i++ {
		if i > 0 && i%3 == 0 {
			b.WriteByte('-')
		}
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		b.WriteByte(flatCodeAlphabet[n.Int64()])
	}
	return b.String(), nil
}
