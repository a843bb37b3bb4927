package brand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikeMatchesTermsLiterally(t *testing.T) {
	tests := []struct {
		name string
		term string
		want string
	}{
		{"plain term untouched", "鮮乳坊", "鮮乳坊"},
		{"percent escaped", "100%鮮乳", `100\%鮮乳`},
		{"underscore escaped", "milk_tea", `milk\_tea`},
		{"backslash doubled", `a\b`, `a\\b`},
		{"all metacharacters", `%_\`, `\%\_\\`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, escapeLike(tc.term))
		})
	}
}
