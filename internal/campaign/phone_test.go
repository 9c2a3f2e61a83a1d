package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"formatted local number", "(32) 99999-9999", "5532999999999"},
		{"bare eleven digits", "32999999999", "5532999999999"},
		{"already has country code", "553299999999912", "553299999999912"},
		{"short landline", "3299999999", "553299999999"},
		{"empty", "", ""},
		{"no digits at all", "n/a", ""},
		{"whitespace and symbols", " +55 (32) 9 9999-9999 ", "5532999999999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.raw))
		})
	}
}
