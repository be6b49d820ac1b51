package report

import (
	"math"

	"talent-pool/internal/domain/candidate"
)

type TopCandidate struct {
	CandidateID            int64
	AveragePopularityScore float64
}

// TopByPopularity returns the candidate with the highest mean popularity score
// over its scored skills. Candidates without any scored skill are skipped. On
// equal means the earlier candidate in cands wins. ok is false when no
// candidate qualifies.
func TopByPopularity(cands []candidate.Candidate) (top TopCandidate, ok bool) {
	var bestAvg float64
	for _, c := range cands {
		avg, scored := averagePopularity(c.Skills)
		if !scored {
			continue
		}
		// strict > keeps the first candidate on ties
		if !ok || avg > bestAvg {
			top = TopCandidate{CandidateID: c.ID}
			bestAvg = avg
			ok = true
		}
	}
	if !ok {
		return TopCandidate{}, false
	}
	top.AveragePopularityScore = RoundHalfUp(bestAvg, 2)
	return top, true
}

func averagePopularity(refs []*candidate.SkillRef) (float64, bool) {
	sum := 0
	n := 0
	for _, r := range refs {
		if r == nil || r.PopularityScore == nil {
			continue
		}
		sum += *r.PopularityScore
		n++
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// RoundHalfUp rounds v to the given number of decimals, with halves rounded
// towards positive infinity.
func RoundHalfUp(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Floor(v*p+0.5) / p
}
