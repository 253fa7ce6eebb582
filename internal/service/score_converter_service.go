package service

import "math"

type ScoreConverterService interface {
	// ToPercentage expresses score as a percentage of maxScore, rounded to two
	// decimals. A zero maxScore yields 0.
	ToPercentage(score, maxScore int) float64
}

type scoreConverterServiceImpl struct{}

func NewScoreConverterService() ScoreConverterService {
	return &scoreConverterServiceImpl{}
}

func (s *scoreConverterServiceImpl) ToPercentage(score, maxScore int) float64 {
	if maxScore <= 0 {
		return 0
	}
	pct := float64(score) / float64(maxScore) * 100
	return math.Round(pct*100) / 100
}
