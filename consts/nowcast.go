package consts

// Alert rule thresholds for the weekly nowcast dashboard.
const (
	WeekDeltaWorsenThreshold = 5.0
	CompositeHighThreshold   = 65.0

	RiskWeightDeltaWorsen   = 1
	RiskWeightAnySevere     = 2
	RiskWeightCompositeHigh = 2

	AlertFlagRiskScore = 2
	AlertHighRiskScore = 4
)

// Proxy score blending.
const (
	ScoreMidpoint    = 50.0
	IdealSleepHours  = 7.5
	SleepPenaltySpan = 4.5
)
