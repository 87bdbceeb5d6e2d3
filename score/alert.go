package score

import (
	"github.com/mindpulse/nowcast-api/consts"
	"github.com/mindpulse/nowcast-api/schema"
)

// SeverityBucket maps a 0-100 score onto the four fixed severity bands.
func SeverityBucket(score float64) schema.Severity {
	switch {
	case score < 25:
		return schema.SeverityMinimal
	case score < 50:
		return schema.SeverityMild
	case score < 75:
		return schema.SeverityModerate
	default:
		return schema.SeveritySevere
	}
}

func delta(current float64, previous *float64) *float64 {
	if previous == nil {
		return nil
	}
	d := current - *previous
	return &d
}

func deltaWorsened(d *float64) bool {
	return d != nil && *d >= consts.WeekDeltaWorsenThreshold
}

// ApplyAlertRules evaluates every alert rule on each weekly record in
// chronological order. A record only ever references its immediate
// predecessor; the first week's deltas stay nil and never trigger the
// worsening rule.
func ApplyAlertRules(records []schema.WeeklyRecord) []schema.WeeklyRecord {
	var prevDep, prevAnx, prevIns *float64

	for i := range records {
		record := &records[i]

		record.DepDelta = delta(record.DepWeek, prevDep)
		record.AnxDelta = delta(record.AnxWeek, prevAnx)
		record.InsDelta = delta(record.InsWeek, prevIns)

		record.DepSeverity = SeverityBucket(record.DepWeek)
		record.AnxSeverity = SeverityBucket(record.AnxWeek)
		record.InsSeverity = SeverityBucket(record.InsWeek)

		ruleWeekDeltaWorsen := deltaWorsened(record.DepDelta) ||
			deltaWorsened(record.AnxDelta) ||
			deltaWorsened(record.InsDelta)
		ruleAnySevere := record.DepSeverity == schema.SeveritySevere ||
			record.AnxSeverity == schema.SeveritySevere ||
			record.InsSeverity == schema.SeveritySevere
		ruleCompositeHigh := record.Composite >= consts.CompositeHighThreshold

		riskScore := 0
		reasons := []string{}
		if ruleWeekDeltaWorsen {
			riskScore += consts.RiskWeightDeltaWorsen
			reasons = append(reasons, schema.ReasonWorseningDelta)
		}
		if ruleAnySevere {
			riskScore += consts.RiskWeightAnySevere
			reasons = append(reasons, schema.ReasonSevereBand)
		}
		if ruleCompositeHigh {
			riskScore += consts.RiskWeightCompositeHigh
			reasons = append(reasons, schema.ReasonHighComposite)
		}

		record.AlertRiskScore = riskScore
		record.AlertFlag = riskScore >= consts.AlertFlagRiskScore
		switch {
		case riskScore >= consts.AlertHighRiskScore:
			record.AlertLevel = schema.AlertLevelHigh
		case riskScore >= consts.AlertFlagRiskScore:
			record.AlertLevel = schema.AlertLevelMedium
		default:
			record.AlertLevel = schema.AlertLevelLow
		}
		record.AlertReasons = reasons

		prevDep, prevAnx, prevIns = &record.DepWeek, &record.AnxWeek, &record.InsWeek
	}

	return records
}
