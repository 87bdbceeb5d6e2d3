package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mindpulse/nowcast-api/schema"
)

func TestRollupWeeklyAveragesWithinWeek(t *testing.T) {
	days := []schema.DailyProxyScore{
		{Date: jun22, Dep: 40, Anx: 30, Ins: 20}, // Monday
		{Date: jun24, Dep: 60, Anx: 50, Ins: 40}, // Wednesday
	}

	records := RollupWeekly(days)
	assert.Len(t, records, 1)
	assert.Equal(t, "2020-06-22", records[0].WeekStart)
	assert.Equal(t, 50.0, records[0].DepWeek)
	assert.Equal(t, 40.0, records[0].AnxWeek)
	assert.Equal(t, 30.0, records[0].InsWeek)
	assert.Equal(t, 40.0, records[0].Composite)
	assert.Equal(t, 2, records[0].ActiveDays)
}

func TestRollupWeeklySundayBelongsToSameWeek(t *testing.T) {
	sunday := time.Date(2020, 6, 28, 0, 0, 0, 0, time.UTC)
	nextMonday := time.Date(2020, 6, 29, 0, 0, 0, 0, time.UTC)

	records := RollupWeekly([]schema.DailyProxyScore{
		{Date: jun22, Dep: 10, Anx: 10, Ins: 10},
		{Date: sunday, Dep: 30, Anx: 30, Ins: 30},
		{Date: nextMonday, Dep: 70, Anx: 70, Ins: 70},
	})

	assert.Len(t, records, 2)
	assert.Equal(t, "2020-06-22", records[0].WeekStart)
	assert.Equal(t, 20.0, records[0].DepWeek)
	assert.Equal(t, 2, records[0].ActiveDays)
	assert.Equal(t, "2020-06-29", records[1].WeekStart)
	assert.Equal(t, 70.0, records[1].DepWeek)
	assert.Equal(t, 1, records[1].ActiveDays)
}

func TestRollupWeeklySkipsEmptyWeeks(t *testing.T) {
	// two populated weeks separated by a silent one: the gap week is
	// absent, not zero-filled
	records := RollupWeekly([]schema.DailyProxyScore{
		{Date: jun22, Dep: 40, Anx: 40, Ins: 40},
		{Date: jun22.AddDate(0, 0, 14), Dep: 60, Anx: 60, Ins: 60},
	})

	assert.Len(t, records, 2)
	assert.Equal(t, "2020-06-22", records[0].WeekStart)
	assert.Equal(t, "2020-07-06", records[1].WeekStart)
}

func TestRollupWeeklyEmpty(t *testing.T) {
	assert.Empty(t, RollupWeekly(nil))
}

func TestWeekStartOf(t *testing.T) {
	assert.Equal(t, jun22, weekStartOf(jun22))                                              // Monday
	assert.Equal(t, jun22, weekStartOf(jun24))                                              // Wednesday
	assert.Equal(t, jun22, weekStartOf(time.Date(2020, 6, 28, 0, 0, 0, 0, time.UTC)))       // Sunday
	assert.Equal(t,
		time.Date(2020, 6, 29, 0, 0, 0, 0, time.UTC),
		weekStartOf(time.Date(2020, 6, 29, 0, 0, 0, 0, time.UTC)))
}
