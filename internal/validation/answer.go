// Package validation compares free-text quiz answers.
package validation

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// similarityThreshold is the largest edit distance, relative to the
// longer answer, still accepted as a typo.
const similarityThreshold = 0.2

// minPartialLength is the shortest answer, in runes, accepted as part of
// a longer one.
const minPartialLength = 3

var articles = []string{"the ", "a ", "an "}

// NormalizeAnswer lowercases an answer and strips punctuation, a leading
// article and redundant whitespace.
func NormalizeAnswer(answer string) string {
	answer = strings.ToLower(strings.TrimSpace(answer))

	for _, article := range articles {
		if strings.HasPrefix(answer, article) {
			answer = answer[len(article):]
			break
		}
	}

	answer = strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}
		return r
	}, answer)

	return strings.Join(strings.Fields(answer), " ")
}

// IsCorrectAnswer reports whether given is close enough to expected
func IsCorrectAnswer(expected, given string) bool {
	want := NormalizeAnswer(expected)
	got := NormalizeAnswer(given)

	if got == "" {
		return want == ""
	}
	if want == got {
		return true
	}
	if containsWords(want, got) || containsWords(got, want) {
		return true
	}

	a, b := []rune(want), []rune(got)
	longest := max(len(a), len(b))
	return float64(editDistance(a, b))/float64(longest) < similarityThreshold
}

// containsWords reports whether part is a run of whole words inside full
func containsWords(full, part string) bool {
	if utf8.RuneCountInString(part) < minPartialLength {
		return false
	}

	words, sub := strings.Fields(full), strings.Fields(part)
	for i := 0; i+len(sub) <= len(words); i++ {
		if slices.Equal(words[i:i+len(sub)], sub) {
			return true
		}
	}
	return false
}

// editDistance is the Levenshtein distance using two rolling rows
func editDistance(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
