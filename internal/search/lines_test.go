package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty", content: "", want: nil},
		{name: "single line", content: "Rust:", want: []string{"Rust:"}},
		{name: "trailing newline", content: "a\nb\n", want: []string{"a", "b"}},
		{name: "crlf", content: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "lone cr", content: "a\rb", want: []string{"a", "b"}},
		{name: "mixed", content: "a\nb\r\nc\rd", want: []string{"a", "b", "c", "d"}},
		{name: "blank lines kept", content: "a\n\n\nb", want: []string{"a", "", "", "b"}},
		{name: "cr then crlf", content: "a\r\r\nb", want: []string{"a", "", "b"}},
		{name: "only newline", content: "\n", want: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.content))
		})
	}
}
