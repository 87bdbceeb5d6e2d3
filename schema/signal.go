package schema

import "time"

// DailySignal is the per-day reduction of a user's raw events. Nil fields
// mean the signal was absent that day, not zero. It only exists as an
// intermediate of the nowcast pipeline and is never persisted.
type DailySignal struct {
	Date                 time.Time
	Mood                 *float64
	SleepHours           *float64
	Distress             *float64
	Rumination           *float64
	SleepDifficulty      *float64
	DistortionTotal      *float64
	ChallengeRate        *float64
	QuestionnairePercent *float64
}

// DailyProxyScore holds the three 0-100 severity proxies derived from a
// single DailySignal.
type DailyProxyScore struct {
	Date time.Time
	Dep  float64
	Anx  float64
	Ins  float64
}
