package inflect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlural(t *testing.T) {
	inf := New()

	tests := []struct {
		word string
		want string
	}{
		{word: "tomato", want: "tomatoes"},
		{word: "potato", want: "potatoes"},
		{word: "carrot", want: "carrots"},
		{word: "leaf", want: "leaves"},
		{word: "loaf", want: "loaves"},
		{word: "berry", want: "berries"},
		{word: "tomatoes", want: "tomatoes"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, inf.Plural(tt.word))
		})
	}
}

func TestSingular(t *testing.T) {
	inf := New()

	tests := []struct {
		word string
		want string
	}{
		{word: "tomatoes", want: "tomato"},
		{word: "leaves", want: "leaf"},
		{word: "loaves", want: "loaf"},
		{word: "berries", want: "berry"},
		{word: "peas", want: "pea"},
		{word: "tomato", want: "tomato"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, inf.Singular(tt.word))
		})
	}
}

func TestPlural_phraseInflectsLastWord(t *testing.T) {
	inf := New()

	assert.Equal(t, "goat cheeses", inf.Plural("goat cheese"))
	assert.Equal(t, "bay leaves", inf.Plural("bay leaf"))
}
