package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mindpulse/nowcast-api/schema"
)

func TestSeverityBucket(t *testing.T) {
	assert.Equal(t, schema.SeverityMinimal, SeverityBucket(0))
	assert.Equal(t, schema.SeverityMinimal, SeverityBucket(24.9))
	assert.Equal(t, schema.SeverityMild, SeverityBucket(25))
	assert.Equal(t, schema.SeverityMild, SeverityBucket(49.9))
	assert.Equal(t, schema.SeverityModerate, SeverityBucket(50))
	assert.Equal(t, schema.SeverityModerate, SeverityBucket(74.9))
	assert.Equal(t, schema.SeveritySevere, SeverityBucket(75))
	assert.Equal(t, schema.SeveritySevere, SeverityBucket(100))
}

func TestApplyAlertRulesSevereAndHighComposite(t *testing.T) {
	records := ApplyAlertRules([]schema.WeeklyRecord{
		{WeekStart: "2020-06-22", DepWeek: 60, AnxWeek: 80, InsWeek: 70, Composite: 70, ActiveDays: 3},
	})

	record := records[0]
	assert.Nil(t, record.DepDelta)
	assert.Nil(t, record.AnxDelta)
	assert.Nil(t, record.InsDelta)
	assert.Equal(t, schema.SeverityModerate, record.DepSeverity)
	assert.Equal(t, schema.SeveritySevere, record.AnxSeverity)
	assert.Equal(t, schema.SeverityModerate, record.InsSeverity)
	assert.Equal(t, 4, record.AlertRiskScore)
	assert.True(t, record.AlertFlag)
	assert.Equal(t, schema.AlertLevelHigh, record.AlertLevel)
	assert.Equal(t, []string{schema.ReasonSevereBand, schema.ReasonHighComposite}, record.AlertReasons)
}

func TestApplyAlertRulesWorseningDeltaOnly(t *testing.T) {
	records := ApplyAlertRules([]schema.WeeklyRecord{
		{WeekStart: "2020-06-22", DepWeek: 60, AnxWeek: 80, InsWeek: 70, Composite: 70, ActiveDays: 3},
		{WeekStart: "2020-06-29", DepWeek: 66, AnxWeek: 55, InsWeek: 44, Composite: 55, ActiveDays: 2},
	})

	record := records[1]
	assert.Equal(t, 6.0, *record.DepDelta)
	assert.Equal(t, -25.0, *record.AnxDelta)
	assert.Equal(t, -26.0, *record.InsDelta)
	assert.Equal(t, 1, record.AlertRiskScore)
	assert.False(t, record.AlertFlag)
	assert.Equal(t, schema.AlertLevelLow, record.AlertLevel)
	assert.Equal(t, []string{schema.ReasonWorseningDelta}, record.AlertReasons)
}

func TestApplyAlertRulesNoRuleFires(t *testing.T) {
	records := ApplyAlertRules([]schema.WeeklyRecord{
		{WeekStart: "2020-06-22", DepWeek: 20, AnxWeek: 30, InsWeek: 40, Composite: 30, ActiveDays: 1},
	})

	assert.Equal(t, 0, records[0].AlertRiskScore)
	assert.False(t, records[0].AlertFlag)
	assert.Equal(t, schema.AlertLevelLow, records[0].AlertLevel)
	assert.Empty(t, records[0].AlertReasons)
}

func TestApplyAlertRulesMediumLevel(t *testing.T) {
	// one severe band, nothing else: risk 2 flags at medium
	records := ApplyAlertRules([]schema.WeeklyRecord{
		{WeekStart: "2020-06-22", DepWeek: 80, AnxWeek: 20, InsWeek: 20, Composite: 40, ActiveDays: 1},
	})

	assert.Equal(t, 2, records[0].AlertRiskScore)
	assert.True(t, records[0].AlertFlag)
	assert.Equal(t, schema.AlertLevelMedium, records[0].AlertLevel)
	assert.Equal(t, []string{schema.ReasonSevereBand}, records[0].AlertReasons)
}

func TestApplyAlertRulesDeltaThreshold(t *testing.T) {
	// a week-over-week rise of exactly 5.0 triggers
	records := ApplyAlertRules([]schema.WeeklyRecord{
		{WeekStart: "2020-06-22", DepWeek: 30, AnxWeek: 30, InsWeek: 30, Composite: 30},
		{WeekStart: "2020-06-29", DepWeek: 35, AnxWeek: 30, InsWeek: 30, Composite: 31.7},
	})
	assert.Equal(t, []string{schema.ReasonWorseningDelta}, records[1].AlertReasons)

	// a rise just under the threshold does not
	records = ApplyAlertRules([]schema.WeeklyRecord{
		{WeekStart: "2020-06-22", DepWeek: 30, AnxWeek: 30, InsWeek: 30, Composite: 30},
		{WeekStart: "2020-06-29", DepWeek: 34.5, AnxWeek: 30, InsWeek: 30, Composite: 31.5},
	})
	assert.Empty(t, records[1].AlertReasons)
}
