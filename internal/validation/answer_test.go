package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Apollo 13", "apollo 13"},
		{"  The   Beatles ", "beatles"},
		{"An apple", "apple"},
		{"Maya Angelou!", "maya angelou"},
		{"Escher's", "eschers"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAnswer(tt.in))
		})
	}
}

func TestIsCorrectAnswer(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		given    string
		want     bool
	}{
		{"exact", "Muhammad Ali", "Muhammad Ali", true},
		{"case and punctuation", "Muhammad Ali", "muhammad ali.", true},
		{"article", "The Palace of Versailles", "palace of versailles", true},
		{"contained", "Muhammad Ali", "Ali", true},
		{"contains expected", "Everest", "Mount Everest", true},
		{"single letter", "Muhammad Ali", "a", false},
		{"single digit", "Apollo 13", "3", false},
		{"short word", "Apollo 13", "13", false},
		{"partial word", "Muhammad Ali", "hamm", false},
		{"typo", "Lake Victoria", "Lake Victorai", true},
		{"wrong", "Brazil", "Uruguay", false},
		{"blank", "Brazil", "   ", false},
		{"far off", "Agra", "Paris", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCorrectAnswer(tt.expected, tt.given))
		})
	}
}

func TestContainsWords(t *testing.T) {
	assert.True(t, containsWords("palace of versailles", "of versailles"))
	assert.False(t, containsWords("palace of versailles", "ace of"))
	assert.False(t, containsWords("ali", "muhammad ali"))
	assert.False(t, containsWords("muhammad ali", "a"))
}

func TestEditDistance(t *testing.T) {
	assert.Equal(t, 0, editDistance([]rune("abc"), []rune("abc")))
	assert.Equal(t, 3, editDistance([]rune(""), []rune("abc")))
	assert.Equal(t, 3, editDistance([]rune("kitten"), []rune("sitting")))
	assert.Equal(t, 1, editDistance([]rune("héllo"), []rune("hello")))
}
