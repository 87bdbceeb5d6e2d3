package score

import (
	"math"

	"github.com/mindpulse/nowcast-api/consts"
	"github.com/mindpulse/nowcast-api/schema"
)

type weightedTerm struct {
	value  *float64
	weight float64
}

// weightedScore blends the present terms, renormalizing the weights over
// whichever sources are defined. Missing terms are skipped, never counted
// as zero. Returns nil when every term is missing.
func weightedScore(terms []weightedTerm) *float64 {
	numer := 0.0
	denom := 0.0
	for _, t := range terms {
		if t.value == nil {
			continue
		}
		numer += *t.value * t.weight
		denom += t.weight
	}

	if denom == 0 {
		return nil
	}
	score := numer / denom
	return &score
}

// sleepPenalty maps deviation from the ideal sleep duration onto 0-100.
func sleepPenalty(sleepHours *float64) *float64 {
	if sleepHours == nil {
		return nil
	}
	diff := math.Abs(*sleepHours - consts.IdealSleepHours)
	penalty := math.Min(100.0, (diff/consts.SleepPenaltySpan)*100.0)
	return &penalty
}

func scale(value *float64, factor float64) *float64 {
	if value == nil {
		return nil
	}
	v := *value * factor
	return &v
}

func invertMood(mood *float64) *float64 {
	if mood == nil {
		return nil
	}
	v := (10.0 - *mood) * 10.0
	return &v
}

func scaleDistortion(total *float64) *float64 {
	if total == nil {
		return nil
	}
	v := math.Min(100.0, *total*12.0)
	return &v
}

func orMidpoint(score *float64) float64 {
	if score == nil {
		return consts.ScoreMidpoint
	}
	return *score
}

func clip(score float64) float64 {
	return math.Max(0.0, math.Min(100.0, score))
}

// CalculateProxyScores converts one day's aggregated signals into the three
// 0-100 severity proxies. Completed coping challenges lower all three
// proxies before clipping; the clip must stay after that adjustment.
func CalculateProxyScores(signal schema.DailySignal) schema.DailyProxyScore {
	moodInverse := invertMood(signal.Mood)
	distressScaled := scale(signal.Distress, 10.0)
	ruminationScaled := scale(signal.Rumination, 10.0)
	sleepDifficultyScaled := scale(signal.SleepDifficulty, 10.0)
	distortionScaled := scaleDistortion(signal.DistortionTotal)
	sleepPen := sleepPenalty(signal.SleepHours)

	dep := orMidpoint(weightedScore([]weightedTerm{
		{signal.QuestionnairePercent, 0.45},
		{moodInverse, 0.25},
		{ruminationScaled, 0.2},
		{distortionScaled, 0.1},
	}))
	anx := orMidpoint(weightedScore([]weightedTerm{
		{distressScaled, 0.45},
		{ruminationScaled, 0.25},
		{moodInverse, 0.2},
		{distortionScaled, 0.1},
	}))
	ins := orMidpoint(weightedScore([]weightedTerm{
		{sleepDifficultyScaled, 0.6},
		{sleepPen, 0.4},
	}))

	if signal.ChallengeRate != nil {
		dep -= *signal.ChallengeRate * 12.0
		anx -= *signal.ChallengeRate * 10.0
		ins -= *signal.ChallengeRate * 6.0
	}

	return schema.DailyProxyScore{
		Date: signal.Date,
		Dep:  clip(dep),
		Anx:  clip(anx),
		Ins:  clip(ins),
	}
}
