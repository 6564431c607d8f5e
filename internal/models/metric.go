package models

type BetterWhen string

const (
	BetterLower  BetterWhen = "lower"
	BetterHigher BetterWhen = "higher"
)

type MetricDefinition struct {
	MetricKey  string     `json:"key"`
	Label      string     `json:"label"`
	BetterWhen BetterWhen `json:"better_when"`
	Priority   int        `json:"priority"`
}

type ResolvedMetric struct {
	MetricKey    string     `json:"key"`
	Label        string     `json:"label"`
	Value        float64    `json:"value"`
	SourceListID string     `json:"source_list_id"`
	Note         string     `json:"note,omitempty"`
	BetterWhen   BetterWhen `json:"better_when"`
	Priority     int        `json:"-"`
}

// ComparisonRow holds one metric for both sides of a comparison. A nil value means the
// entity has no data for that metric.
type ComparisonRow struct {
	MetricKey  string     `json:"key"`
	Label      string     `json:"label"`
	AValue     *float64   `json:"a_value,omitempty"`
	BValue     *float64   `json:"b_value,omitempty"`
	BetterWhen BetterWhen `json:"better_when"`
}

type Winner string

const (
	WinnerA      Winner = "a"
	WinnerB      Winner = "b"
	WinnerTie    Winner = "tie"
	WinnerNoData Winner = "no_data"
)

type RowOutcome struct {
	MetricKey string  `json:"key"`
	Winner    Winner  `json:"winner"`
	Margin    float64 `json:"margin,omitempty"`
}

type Tally struct {
	WinsA      int `json:"wins_a"`
	WinsB      int `json:"wins_b"`
	Comparable int `json:"comparable"`
}

type Comparison struct {
	Kind     EntityKind      `json:"kind"`
	A        EntitySummary   `json:"a"`
	B        EntitySummary   `json:"b"`
	Rows     []ComparisonRow `json:"rows"`
	Outcomes []RowOutcome    `json:"outcomes"`
	Tally    Tally           `json:"tally"`
	Intro    string          `json:"intro"`
	Summary  string          `json:"summary"`
}
