package score

import (
	"sort"
	"time"

	"github.com/mindpulse/nowcast-api/schema"
)

// weekStartOf returns the Monday of the ISO week the date falls in.
func weekStartOf(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}

// RollupWeekly buckets daily proxy scores into ISO weeks and averages each
// populated bucket. Weeks without any active day are absent from the
// result, not zero-filled.
func RollupWeekly(days []schema.DailyProxyScore) []schema.WeeklyRecord {
	weeks := map[time.Time][]schema.DailyProxyScore{}
	for _, day := range days {
		start := weekStartOf(day.Date)
		weeks[start] = append(weeks[start], day)
	}

	starts := make([]time.Time, 0, len(weeks))
	for start := range weeks {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	records := make([]schema.WeeklyRecord, 0, len(starts))
	for _, start := range starts {
		members := weeks[start]

		depSum, anxSum, insSum := 0.0, 0.0, 0.0
		for _, day := range members {
			depSum += day.Dep
			anxSum += day.Anx
			insSum += day.Ins
		}

		n := float64(len(members))
		depWeek := depSum / n
		anxWeek := anxSum / n
		insWeek := insSum / n

		records = append(records, schema.WeeklyRecord{
			WeekStart:  start.Format("2006-01-02"),
			DepWeek:    depWeek,
			AnxWeek:    anxWeek,
			InsWeek:    insWeek,
			Composite:  (depWeek + anxWeek + insWeek) / 3.0,
			ActiveDays: len(members),
		})
	}

	return records
}
