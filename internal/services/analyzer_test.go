package services

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// stubExtractorService serves canned texts per path, or an error for paths
// registered as unreadable.
type stubExtractorService struct {
	texts  map[string]string
	broken map[string]error
}

func (s *stubExtractorService) ExtractText(filePath string) (string, error) {
	if err, ok := s.broken[filePath]; ok {
		return "", err
	}
	return s.texts[filePath], nil
}

func newAnalyzer(extractor ExtractorService) AnalyzerService {
	return NewAnalyzerService(
		extractor,
		NewNormalizerService(newStubLemmatizer()),
		NewMatcherService(),
		NewScoreAggregator(),
	)
}

func TestAnalyzeFullMatch(t *testing.T) {
	t.Parallel()

	resumeText := "experienced python developer with skills in sql and linux"
	extractor := &stubExtractorService{texts: map[string]string{
		"resume.pdf": resumeText,
		"jd.pdf":     "python developer with sql skills",
	}}

	result, err := newAnalyzer(extractor).Analyze("resume.pdf", "jd.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Every JD lemma appears in the resume, so keyword is 100 and the
	// skill bonus caps. "experienced" carries the literal "experience"
	// substring for the format check.
	if result.Keyword != 100 {
		t.Fatalf("expected keyword 100, got %d", result.Keyword)
	}
	if result.Skill != 100 {
		t.Fatalf("expected skill 100, got %d", result.Skill)
	}
	if result.Format != 90 {
		t.Fatalf("expected format 90, got %d", result.Format)
	}

	// 57 raw characters: 100 - 57/1500 truncates to 99.
	if result.Readability != 99 {
		t.Fatalf("expected readability 99, got %d", result.Readability)
	}

	wantOverall := (result.Keyword + result.Skill + result.Readability + result.Format) / 4
	if result.Overall != wantOverall {
		t.Fatalf("expected overall %d, got %d", wantOverall, result.Overall)
	}
}

func TestAnalyzeEmptyJobDescription(t *testing.T) {
	t.Parallel()

	extractor := &stubExtractorService{texts: map[string]string{
		"resume.pdf": "golang engineer",
		"jd.pdf":     "",
	}}

	result, err := newAnalyzer(extractor).Analyze("resume.pdf", "jd.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Keyword != 0 {
		t.Fatalf("expected keyword 0, got %d", result.Keyword)
	}
	if result.Skill != 10 {
		t.Fatalf("expected skill 10, got %d", result.Skill)
	}
	if result.Format != 70 {
		t.Fatalf("expected format 70, got %d", result.Format)
	}
}

func TestAnalyzeReadabilityFloor(t *testing.T) {
	t.Parallel()

	extractor := &stubExtractorService{texts: map[string]string{
		"resume.pdf": strings.Repeat("x", 150000),
		"jd.pdf":     "python developer",
	}}

	result, err := newAnalyzer(extractor).Analyze("resume.pdf", "jd.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Readability != 30 {
		t.Fatalf("expected readability floor 30, got %d", result.Readability)
	}
	if result.Keyword != 0 {
		t.Fatalf("expected keyword 0, got %d", result.Keyword)
	}
}

func TestAnalyzeExtractionFailure(t *testing.T) {
	t.Parallel()

	parseErr := errors.New("malformed PDF")

	tests := []struct {
		name       string
		resumePath string
		jdPath     string
	}{
		{name: "corrupt resume", resumePath: "broken.pdf", jdPath: "jd.pdf"},
		{name: "corrupt jd", resumePath: "resume.pdf", jdPath: "broken.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			extractor := &stubExtractorService{
				texts:  map[string]string{"resume.pdf": "text", "jd.pdf": "text"},
				broken: map[string]error{"broken.pdf": parseErr},
			}

			result, err := newAnalyzer(extractor).Analyze(tt.resumePath, tt.jdPath)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, ErrProcessing) {
				t.Fatalf("expected ErrProcessing, got %v", err)
			}
			if result != nil {
				t.Fatalf("expected no result on failure, got %+v", result)
			}
		})
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	t.Parallel()

	extractor := &stubExtractorService{texts: map[string]string{
		"resume.pdf": "experienced go developer running kubernetes clusters",
		"jd.pdf":     "go developer with kubernetes skills",
	}}

	analyzer := newAnalyzer(extractor)

	first, err := analyzer.Analyze("resume.pdf", "jd.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := analyzer.Analyze("resume.pdf", "jd.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}
