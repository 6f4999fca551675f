package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromNames(t *testing.T) {
	cases := []struct {
		bride, groom, want string
	}{
		{"Jane", "John", "jane-john"},
		{"  Jane  ", " John!! ", "jane-john"},
		{"Mary-Anne", "D'Souza", "mary-anne-d-souza"},
		{"Inês", "José", "ines-jose"},
		{"Ana & Co.", "Rui", "ana-co-rui"},
		{"", "", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FromNames(tc.bride, tc.groom), "%q + %q", tc.bride, tc.groom)
	}
}

func TestMake_OnlyLowercaseAlphanumericAndHyphens(t *testing.T) {
	got := Make("--Top 10 Goa Beach Venues (2026)!--")
	assert.Equal(t, "top-10-goa-beach-venues-2026", got)
	assert.Regexp(t, `^[a-z0-9]+(-[a-z0-9]+)*$`, got)
}
