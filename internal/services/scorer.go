package services

import (
	"strings"

	"github.com/resumatch/ats-scorer/internal/models"
)

// readabilityDivisor converts résumé length in characters into a linear
// readability penalty.
const readabilityDivisor = 1500

// ScoreAggregator folds the keyword overlap and heuristic signals into
// a composite score. Total over all inputs: empty texts still produce a
// well-defined result.
type ScoreAggregator interface {
	Aggregate(resumeText, jdText string, overlapPercent float64) models.ScoreResult
}

type scoreAggregator struct{}

func NewScoreAggregator() ScoreAggregator {
	return &scoreAggregator{}
}

// Aggregate implements ScoreAggregator.
//
// keyword is the overlap percent itself. skill adds a fixed +10 bonus,
// capped at 100. readability penalizes long résumés linearly down to a
// floor of 30, measured on raw extracted characters. format is a crude
// structural check: 90 when the raw lower-cased résumé contains the
// literal substring "experience", else 70. The substring test is
// deliberately not lemma-based. All values are truncated, not rounded.
func (s *scoreAggregator) Aggregate(resumeText, jdText string, overlapPercent float64) models.ScoreResult {
	keyword := clampScore(int(overlapPercent))

	skill := int(overlapPercent + 10)
	if skill > 100 {
		skill = 100
	}
	skill = clampScore(skill)

	readability := int(100 - float64(len(resumeText))/readabilityDivisor)
	if readability < 30 {
		readability = 30
	}
	readability = clampScore(readability)

	format := 70
	if strings.Contains(strings.ToLower(resumeText), "experience") {
		format = 90
	}
	format = clampScore(format)

	return models.ScoreResult{
		Overall:     (keyword + skill + readability + format) / 4,
		Keyword:     keyword,
		Skill:       skill,
		Readability: readability,
		Format:      format,
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
