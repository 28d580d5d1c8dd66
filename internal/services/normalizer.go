package services

import (
	"strings"
	"unicode"
)

// TokenSet is an unordered set of normalized tokens. Only membership and
// size matter downstream.
type TokenSet map[string]struct{}

// Lemmatizer maps a word to its base form. Satisfied by *golem.Lemmatizer;
// the dictionary behind it is expensive to load, so the caller loads it once
// at startup and injects it here.
type Lemmatizer interface {
	Lemma(word string) string
}

type NormalizerService interface {
	Normalize(text string) TokenSet
}

type normalizerService struct {
	lemmatizer Lemmatizer
}

func NewNormalizerService(lemmatizer Lemmatizer) NormalizerService {
	return &normalizerService{lemmatizer: lemmatizer}
}

// Normalize lower-cases the text, splits it into word-like tokens, keeps
// only purely alphabetic tokens and collapses each to its lemma. Numbers,
// punctuation and mixed tokens ("python3") are discarded entirely.
func (n *normalizerService) Normalize(text string) TokenSet {
	tokens := make(TokenSet)
	if text == "" {
		return tokens
	}

	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	for _, word := range words {
		if !isAlphabetic(word) {
			continue
		}
		tokens[n.lemmatizer.Lemma(word)] = struct{}{}
	}

	return tokens
}

func isAlphabetic(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
