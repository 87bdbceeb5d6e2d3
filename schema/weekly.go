package schema

const (
	WeeklyDashboardCollection = "weeklyDashboard"
)

type Severity string

const (
	SeverityMinimal  Severity = "minimal"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

type AlertLevel string

const (
	AlertLevelLow    AlertLevel = "low"
	AlertLevelMedium AlertLevel = "medium"
	AlertLevelHigh   AlertLevel = "high"
)

// Alert reason codes, in the fixed order they are reported.
const (
	ReasonWorseningDelta = "worsening_delta"
	ReasonSevereBand     = "severe_band"
	ReasonHighComposite  = "high_composite"
)

// WeeklyRecord is one ISO week (Monday start) of nowcast output for one
// user. Delta fields are nil for the user's first populated week.
type WeeklyRecord struct {
	Owner          string     `json:"-" bson:"owner"`
	WeekStart      string     `json:"week_start_date" bson:"week_start_date"`
	DepWeek        float64    `json:"dep_week_0_100" bson:"dep_week_0_100"`
	AnxWeek        float64    `json:"anx_week_0_100" bson:"anx_week_0_100"`
	InsWeek        float64    `json:"ins_week_0_100" bson:"ins_week_0_100"`
	Composite      float64    `json:"symptom_composite_0_100" bson:"symptom_composite_0_100"`
	ActiveDays     int        `json:"active_days" bson:"active_days"`
	DepDelta       *float64   `json:"dep_week_delta" bson:"dep_week_delta,omitempty"`
	AnxDelta       *float64   `json:"anx_week_delta" bson:"anx_week_delta,omitempty"`
	InsDelta       *float64   `json:"ins_week_delta" bson:"ins_week_delta,omitempty"`
	DepSeverity    Severity   `json:"dep_severity" bson:"dep_severity"`
	AnxSeverity    Severity   `json:"anx_severity" bson:"anx_severity"`
	InsSeverity    Severity   `json:"ins_severity" bson:"ins_severity"`
	AlertRiskScore int        `json:"alert_risk_score" bson:"alert_risk_score"`
	AlertFlag      bool       `json:"alert_flag" bson:"alert_flag"`
	AlertLevel     AlertLevel `json:"alert_level" bson:"alert_level"`
	AlertReasons   []string   `json:"alert_reason_codes" bson:"alert_reason_codes"`
}
