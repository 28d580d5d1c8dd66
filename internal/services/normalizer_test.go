package services

import (
	"reflect"
	"testing"
)

// stubLemmatizer maps a few known inflections and leaves everything else
// untouched, standing in for the real dictionary-backed lemmatizer.
type stubLemmatizer struct {
	lemmas map[string]string
}

func (s *stubLemmatizer) Lemma(word string) string {
	if lemma, ok := s.lemmas[word]; ok {
		return lemma
	}
	return word
}

func newStubLemmatizer() *stubLemmatizer {
	return &stubLemmatizer{lemmas: map[string]string{
		"skills":  "skill",
		"skilled": "skill",
		"running": "run",
		"ran":     "run",
	}}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	normalizer := NewNormalizerService(newStubLemmatizer())

	tests := []struct {
		name   string
		text   string
		expect TokenSet
	}{
		{
			name:   "empty text yields empty set",
			text:   "",
			expect: tokenSet(),
		},
		{
			name:   "whitespace only yields empty set",
			text:   "  \n\t ",
			expect: tokenSet(),
		},
		{
			name:   "plain words are kept lower cased",
			text:   "Python Developer",
			expect: tokenSet("python", "developer"),
		},
		{
			name:   "inflections collapse to their lemma",
			text:   "skills skilled running ran",
			expect: tokenSet("skill", "run"),
		},
		{
			name:   "numbers and punctuation are discarded",
			text:   "sql, 2024! (remote)",
			expect: tokenSet("sql", "remote"),
		},
		{
			name:   "mixed alphanumeric tokens are discarded entirely",
			text:   "python3 web2py go",
			expect: tokenSet("go"),
		},
		{
			name:   "duplicates collapse",
			text:   "go go GO Go",
			expect: tokenSet("go"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := normalizer.Normalize(tt.text)
			if !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestNormalizeIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	normalizer := NewNormalizerService(newStubLemmatizer())

	upper := normalizer.Normalize("Experience")
	lower := normalizer.Normalize("experience")

	if !reflect.DeepEqual(upper, lower) {
		t.Fatalf("expected identical token sets, got %v and %v", upper, lower)
	}
	if _, ok := upper["experience"]; !ok {
		t.Fatalf("expected token %q in %v", "experience", upper)
	}
}
