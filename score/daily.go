package score

import (
	"sort"
	"time"

	"github.com/mindpulse/nowcast-api/schema"
)

// dayAccumulator collects the raw numeric observations of one calendar day
// before they are reduced to means.
type dayAccumulator struct {
	mood            []float64
	sleepHours      []float64
	distress        []float64
	rumination      []float64
	sleepDifficulty []float64
	distortionTotal []float64
	challengeRate   []float64
	questionnaire   []float64
}

func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	m := sum / float64(len(values))
	return &m
}

func dayOf(ts int64) time.Time {
	t := time.Unix(ts, 0).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// challengeRate converts one check-in's challenge counters into a 0-1
// completion rate. A day without an assigned challenge counts as fully
// completed when the user exercised instead.
func challengeRate(e schema.CheckinEvent) float64 {
	if e.ChallengeTotal > 0 {
		rate := float64(e.ChallengeCompleted) / float64(e.ChallengeTotal)
		if rate > 1.0 {
			rate = 1.0
		}
		return rate
	}
	if e.Exercised {
		return 1.0
	}
	return 0.0
}

// AggregateDaily groups a user's raw events by calendar day (UTC) and
// reduces each signal present that day to its arithmetic mean. The last
// known questionnaire score is rescaled to 0-100 and carried forward
// across days without a new questionnaire. Days with zero events produce
// no signal.
func AggregateDaily(events []schema.RawEvent) []schema.DailySignal {
	days := map[time.Time]*dayAccumulator{}

	acc := func(ts int64) *dayAccumulator {
		d := dayOf(ts)
		a, ok := days[d]
		if !ok {
			a = &dayAccumulator{}
			days[d] = a
		}
		return a
	}

	for _, event := range events {
		switch e := event.(type) {
		case schema.CheckinEvent:
			a := acc(e.Timestamp)
			a.mood = append(a.mood, float64(e.MoodScore))
			if e.SleepHours != nil {
				a.sleepHours = append(a.sleepHours, *e.SleepHours)
			}
			a.challengeRate = append(a.challengeRate, challengeRate(e))
		case schema.ChatEvent:
			a := acc(e.Timestamp)
			a.distress = append(a.distress, float64(e.Distress))
			a.rumination = append(a.rumination, float64(e.Rumination))
			a.sleepDifficulty = append(a.sleepDifficulty, float64(e.SleepDifficulty))
			a.distortionTotal = append(a.distortionTotal, float64(e.Distortion.Total()))
		case schema.AssessmentEvent:
			a := acc(e.Timestamp)
			a.questionnaire = append(a.questionnaire, float64(e.TotalScore))
		}
	}

	dates := make([]time.Time, 0, len(days))
	for d := range days {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	// carry is the fold state for the last known questionnaire percent;
	// nil until the user's first questionnaire ever.
	var carry *float64

	signals := make([]schema.DailySignal, 0, len(dates))
	for _, d := range dates {
		a := days[d]

		if q := mean(a.questionnaire); q != nil {
			scaled := (*q / float64(schema.PHQ9MaxScore)) * 100.0
			carry = &scaled
		}

		signals = append(signals, schema.DailySignal{
			Date:                 d,
			Mood:                 mean(a.mood),
			SleepHours:           mean(a.sleepHours),
			Distress:             mean(a.distress),
			Rumination:           mean(a.rumination),
			SleepDifficulty:      mean(a.sleepDifficulty),
			DistortionTotal:      mean(a.distortionTotal),
			ChallengeRate:        mean(a.challengeRate),
			QuestionnairePercent: carry,
		})
	}

	return signals
}
