// Package parser splits free-form vocabulary notes into word pairs.
//
// Every line is expected to hold a word or phrase in one script followed by
// its translation in another, e.g. "Dukes up поднять кулаки".
package parser

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"vocabot/internal/domain"
)

// ErrAmbiguousLine is returned when a line has no script boundary
var ErrAmbiguousLine = errors.New("no boundary between word and translation")

type script int

const (
	scriptNeutral script = iota
	scriptLatin
	scriptCyrillic
)

var (
	spaces   = regexp.MustCompile(` +`)
	stripped = strings.NewReplacer("!", "", "?", "", "*", "", "'", "", "`", "", "_", "", "/", "")
)

// Parse splits text into recognized pairs and unrecognized lines.
// Unrecognized lines carry the whole line as Source and an empty Target.
// Blank lines are dropped and all output is lowercased.
func Parse(text string) (recognized, unrecognized []domain.WordPair) {
	text = stripped.Replace(spaces.ReplaceAllString(text, " "))

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		pair, err := SplitLine(line)
		if err != nil {
			unrecognized = append(unrecognized, pair)
			continue
		}
		recognized = append(recognized, pair)
	}

	return recognized, unrecognized
}

// SplitLine splits line at the first word whose script differs from the
// first word's. On ErrAmbiguousLine the returned pair holds the trimmed
// line as Source.
func SplitLine(line string) (domain.WordPair, error) {
	words := strings.Fields(strings.ToLower(line))
	if len(words) == 0 {
		return domain.WordPair{}, ErrAmbiguousLine
	}

	first := classify(words[0])
	for i := 1; i < len(words); i++ {
		if classify(words[i]) != first {
			return domain.WordPair{
				Source: strings.Join(words[:i], " "),
				Target: strings.Join(words[i:], " "),
			}, nil
		}
	}

	return domain.WordPair{Source: strings.Join(words, " ")}, ErrAmbiguousLine
}

// classify reports the script of a word. Words without letters, or with
// letters of both scripts, are neutral.
func classify(word string) script {
	var latin, cyrillic bool
	for _, r := range word {
		switch {
		case unicode.Is(unicode.Latin, r):
			latin = true
		case unicode.Is(unicode.Cyrillic, r):
			cyrillic = true
		}
	}

	switch {
	case latin && !cyrillic:
		return scriptLatin
	case cyrillic && !latin:
		return scriptCyrillic
	default:
		return scriptNeutral
	}
}
