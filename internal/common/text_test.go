package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexWholeWord(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		phrase string
		want   int
	}{
		{name: "at start", text: "tuna steak", phrase: "tuna", want: 0},
		{name: "mid text", text: "1 canned tuna", phrase: "tuna", want: 9},
		{name: "multi word", text: "crumbled goat cheese", phrase: "goat cheese", want: 9},
		{name: "embedded substring rejected", text: "pineapple", phrase: "apple", want: -1},
		{name: "prefix substring rejected", text: "corncob", phrase: "corn", want: -1},
		{name: "punctuation boundary", text: "tomato, diced", phrase: "tomato", want: 0},
		{name: "second occurrence is whole word", text: "peanut pea", phrase: "pea", want: 7},
		{name: "underscore is a word char", text: "corn_meal", phrase: "corn", want: -1},
		{name: "no occurrence", text: "goat cheese", phrase: "tuna", want: -1},
		{name: "empty phrase", text: "anything", phrase: "", want: -1},
		{name: "empty text", text: "", phrase: "tuna", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IndexWholeWord(tt.text, tt.phrase))
		})
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "canned tuna", want: "Canned Tuna"},
		{input: "2 cups chopped tomato", want: "2 Cups Chopped Tomato"},
		{input: "TUNA", want: "Tuna"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Title(tt.input))
	}
}
