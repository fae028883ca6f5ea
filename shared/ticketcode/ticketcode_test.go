package ticketcode_test

import (
	"busticket/shared/ticketcode"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

func TestNew_Format(t *testing.T) {
	for range 500 {
		code := ticketcode.New()

		assert.Regexp(t, codePattern, code)
	}
}

func TestNew_UsesWholeAlphabet(t *testing.T) {
	seen := map[rune]bool{}

	for range 2000 {
		for _, r := range ticketcode.New() {
			seen[r] = true
		}
	}

	for _, r := range ticketcode.Alphabet {
		assert.True(t, seen[r], "character %q never generated", r)
	}

	assert.Len(t, seen, len(ticketcode.Alphabet))
}
