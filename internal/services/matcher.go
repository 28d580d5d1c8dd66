package services

// MatcherService computes lexical overlap between token sets.
type MatcherService interface {
	OverlapPercent(resumeTokens, jdTokens TokenSet) float64
}

type matcherService struct{}

func NewMatcherService() MatcherService {
	return &matcherService{}
}

// OverlapPercent returns the share of job-description tokens also present
// in the résumé token set, in [0,100]. An empty JD can never be matched,
// so it yields 0.
func (m *matcherService) OverlapPercent(resumeTokens, jdTokens TokenSet) float64 {
	if len(jdTokens) == 0 {
		return 0
	}

	matched := 0
	for token := range jdTokens {
		if _, ok := resumeTokens[token]; ok {
			matched++
		}
	}

	return float64(matched) / float64(len(jdTokens)) * 100
}
