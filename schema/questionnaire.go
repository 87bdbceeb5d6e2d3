package schema

import "fmt"

const (
	PHQ9ItemCount = 9
	PHQ9MaxScore  = 27
)

// PHQ9 interpretation bands. These label the questionnaire surface only
// and are independent of the four nowcast severity buckets.
type PHQ9Band string

const (
	PHQ9Minimal          PHQ9Band = "minimal"
	PHQ9Mild             PHQ9Band = "mild"
	PHQ9Moderate         PHQ9Band = "moderate"
	PHQ9ModeratelySevere PHQ9Band = "moderately_severe"
	PHQ9Severe           PHQ9Band = "severe"
)

// ScorePHQ9 validates the nine item answers (each 0-3) and returns the
// questionnaire total.
func ScorePHQ9(items []int) (int, error) {
	if len(items) != PHQ9ItemCount {
		return 0, fmt.Errorf("PHQ-9 requires exactly %d items", PHQ9ItemCount)
	}

	total := 0
	for i, v := range items {
		if v < 0 || v > 3 {
			return 0, fmt.Errorf("PHQ-9 item %d out of range", i+1)
		}
		total += v
	}
	return total, nil
}

func PHQ9BandOf(total int) PHQ9Band {
	switch {
	case total <= 4:
		return PHQ9Minimal
	case total <= 9:
		return PHQ9Mild
	case total <= 14:
		return PHQ9Moderate
	case total <= 19:
		return PHQ9ModeratelySevere
	default:
		return PHQ9Severe
	}
}
