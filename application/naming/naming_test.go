package naming_test

import (
	"testing"

	"pagebind/application/naming"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Click Me For Fun!", "click_me_for_fun"},
		{" Re--Set ", "re_set"},
		{"Sign In link", "sign_in_link"},
		{"Save & Continue", "save_continue"},
		{"Go", "go"},
		{"already_normal", "already_normal"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, naming.Normalize(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Click Me For Fun!",
		" Re--Set ",
		"Sign In link",
		"a - b _ c",
		"Déjà Vu",
		"   ",
	}
	for _, in := range inputs {
		once := naming.Normalize(in)
		assert.Equal(t, once, naming.Normalize(once), "input %q", in)
	}
}
