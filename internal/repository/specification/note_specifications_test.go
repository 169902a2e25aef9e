package specification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text", in: "zettel", want: "zettel"},
		{name: "percent", in: "100%", want: `100\%`},
		{name: "underscore", in: "snake_case", want: `snake\_case`},
		{name: "backslash first", in: `a\%`, want: `a\\\%`},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeLike(tt.in))
		})
	}
}
