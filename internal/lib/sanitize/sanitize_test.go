package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_Sanitize(t *testing.T) {
	s := New()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "script removed", in: "<script>alert(1)</script>hello", want: "hello"},
		{name: "formatting kept", in: "<p><b>bold</b> text</p>", want: "<p><b>bold</b> text</p>"},
		{name: "event handler dropped", in: `<p onclick="steal()">hi</p>`, want: "<p>hi</p>"},
		{name: "plain text untouched", in: "just words", want: "just words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Sanitize(tt.in))
		})
	}
}
