package score

import (
	"github.com/mindpulse/nowcast-api/schema"
)

// ComputeWeeklyDashboard runs the full nowcast pipeline over one user's
// raw events: daily aggregation, daily proxy scoring, weekly roll-up and
// alert rule evaluation. It is a pure function; an empty event list yields
// an empty result, and the output is always sorted by week start.
func ComputeWeeklyDashboard(events []schema.RawEvent) []schema.WeeklyRecord {
	signals := AggregateDaily(events)

	days := make([]schema.DailyProxyScore, 0, len(signals))
	for _, signal := range signals {
		days = append(days, CalculateProxyScores(signal))
	}

	return ApplyAlertRules(RollupWeekly(days))
}
