package schema

const (
	CheckinCollection    = "checkin"
	ChatEventCollection  = "chatEvent"
	AssessmentCollection = "assessment"
)

// DistortionCounts is the per-conversation tally of cognitive distortion
// categories returned by the indicator extraction service.
type DistortionCounts struct {
	AllOrNothing       int `json:"all_or_nothing_count" bson:"all_or_nothing_count"`
	Catastrophizing    int `json:"catastrophizing_count" bson:"catastrophizing_count"`
	MindReading        int `json:"mind_reading_count" bson:"mind_reading_count"`
	ShouldStatements   int `json:"should_statements_count" bson:"should_statements_count"`
	Personalization    int `json:"personalization_count" bson:"personalization_count"`
	Overgeneralization int `json:"overgeneralization_count" bson:"overgeneralization_count"`
}

func (d DistortionCounts) Total() int {
	return d.AllOrNothing + d.Catastrophizing + d.MindReading +
		d.ShouldStatements + d.Personalization + d.Overgeneralization
}

// RawEvent is the union of the three event kinds the nowcast engine
// consumes. Every event belongs to exactly one user and one calendar day.
type RawEvent interface {
	Owner() string
	UnixTime() int64
}

// CheckinEvent is a daily self-report: mood, sleep and coping challenge
// completion.
type CheckinEvent struct {
	ID                 string   `json:"id" bson:"_id,omitempty"`
	UserID             string   `json:"user_id" bson:"user_id"`
	Timestamp          int64    `json:"ts" bson:"ts"`
	MoodScore          int      `json:"mood_score" bson:"mood_score"`
	SleepHours         *float64 `json:"sleep_hours" bson:"sleep_hours,omitempty"`
	ChallengeCompleted int      `json:"challenge_completed_count" bson:"challenge_completed_count"`
	ChallengeTotal     int      `json:"challenge_total_count" bson:"challenge_total_count"`
	Exercised          bool     `json:"exercised" bson:"exercised"`
}

func (e CheckinEvent) Owner() string   { return e.UserID }
func (e CheckinEvent) UnixTime() int64 { return e.Timestamp }

// ChatEvent holds the psychological indicators extracted from one coaching
// conversation.
type ChatEvent struct {
	ID              string           `json:"id" bson:"_id,omitempty"`
	UserID          string           `json:"user_id" bson:"user_id"`
	Timestamp       int64            `json:"ts" bson:"ts"`
	Distress        int              `json:"distress_0_10" bson:"distress_0_10"`
	Rumination      int              `json:"rumination_0_10" bson:"rumination_0_10"`
	SleepDifficulty int              `json:"sleep_difficulty_0_10" bson:"sleep_difficulty_0_10"`
	Distortion      DistortionCounts `json:"distortion" bson:"distortion"`
}

func (e ChatEvent) Owner() string   { return e.UserID }
func (e ChatEvent) UnixTime() int64 { return e.Timestamp }

// AssessmentEvent is a completed PHQ-9 questionnaire.
type AssessmentEvent struct {
	ID         string `json:"id" bson:"_id,omitempty"`
	UserID     string `json:"user_id" bson:"user_id"`
	Timestamp  int64  `json:"ts" bson:"ts"`
	TotalScore int    `json:"total_score" bson:"total_score"`
}

func (e AssessmentEvent) Owner() string   { return e.UserID }
func (e AssessmentEvent) UnixTime() int64 { return e.Timestamp }
