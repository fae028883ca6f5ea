// Package ticketcode generates the short codes printed on booked tickets.
package ticketcode

import (
	"math/rand/v2"
	"strings"
)

const (
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	Length   = 8
)

// New returns Length characters drawn independently and uniformly from Alphabet.
// Codes are not guaranteed to be unique.
func New() string {
	var sb strings.Builder

	sb.Grow(Length)

	for range Length {
		sb.WriteByte(Alphabet[rand.IntN(len(Alphabet))]) //nolint:gosec
	}

	return sb.String()
}
