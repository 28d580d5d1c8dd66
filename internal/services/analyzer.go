package services

import (
	"errors"
	"fmt"

	"github.com/resumatch/ats-scorer/internal/models"
)

// ErrProcessing marks a pipeline run that failed because one of the input
// documents could not be read. No partial score is ever produced.
var ErrProcessing = errors.New("document processing failed")

// AnalyzerService runs the full scoring pipeline for one résumé/JD pair:
// extract both documents, normalize both texts, compute keyword overlap
// and aggregate the composite score. It holds no mutable state and is safe
// for concurrent use.
type AnalyzerService interface {
	Analyze(resumePath, jdPath string) (*models.ScoreResult, error)
}

type analyzerService struct {
	extractor  ExtractorService
	normalizer NormalizerService
	matcher    MatcherService
	scorer     ScoreAggregator
}

func NewAnalyzerService(
	extractor ExtractorService,
	normalizer NormalizerService,
	matcher MatcherService,
	scorer ScoreAggregator,
) AnalyzerService {
	return &analyzerService{
		extractor:  extractor,
		normalizer: normalizer,
		matcher:    matcher,
		scorer:     scorer,
	}
}

// Analyze implements AnalyzerService.
func (a *analyzerService) Analyze(resumePath, jdPath string) (*models.ScoreResult, error) {
	jdText, err := a.extractor.ExtractText(jdPath)
	if err != nil {
		return nil, fmt.Errorf("%w: job description: %v", ErrProcessing, err)
	}

	resumeText, err := a.extractor.ExtractText(resumePath)
	if err != nil {
		return nil, fmt.Errorf("%w: resume: %v", ErrProcessing, err)
	}

	resumeTokens := a.normalizer.Normalize(resumeText)
	jdTokens := a.normalizer.Normalize(jdText)

	overlap := a.matcher.OverlapPercent(resumeTokens, jdTokens)
	result := a.scorer.Aggregate(resumeText, jdText, overlap)

	return &result, nil
}
