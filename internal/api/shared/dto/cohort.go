package dto

// Distribution is a histogram of deltas
type Distribution struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// CohortMembership counts users by presence on the base and target dates
type CohortMembership struct {
	UsersOnTargetDate int `json:"users_on_target_date"`
	UsersOnBaseDate   int `json:"users_on_base_date"`
	ComparableUsers   int `json:"comparable_users"`
	NewUsers          int `json:"new_users"`
	MissingUsers      int `json:"missing_users"`
}

// ValueFactorSummary summarizes value factor changes across every comparable user
type ValueFactorSummary struct {
	CohortMembership
	IncreasedUsers       int     `json:"increased_users"`
	DecreasedUsers       int     `json:"decreased_users"`
	UnchangedUsers       int     `json:"unchanged_users"`
	AvgTargetValueFactor float64 `json:"avg_target_value_factor"`
	AvgBaseValueFactor   float64 `json:"avg_base_value_factor"`
	AvgChange            float64 `json:"avg_change"`
	MedianChange         float64 `json:"median_change"`
	MaxIncrease          float64 `json:"max_increase"`
	MaxDecrease          float64 `json:"max_decrease"`
}

// ValueFactorDimension summarizes value factor changes of one country or university
type ValueFactorDimension struct {
	Dimension            string  `json:"dimension"`
	ComparableUsers      int     `json:"comparable_users"`
	AvgTargetValueFactor float64 `json:"avg_target_value_factor"`
	AvgBaseValueFactor   float64 `json:"avg_base_value_factor"`
	AvgChange            float64 `json:"avg_change"`
	MedianChange         float64 `json:"median_change"`
	IncreasedUsers       int     `json:"increased_users"`
	DecreasedUsers       int     `json:"decreased_users"`
	UnchangedUsers       int     `json:"unchanged_users"`
}

// ValueFactorChange is one user's value factor on the base and target dates
type ValueFactorChange struct {
	User              string  `json:"user"`
	Country           *string `json:"country"`
	University        *string `json:"university"`
	GeniusLevel       *string `json:"genius_level,omitempty"`
	BaseValueFactor   float64 `json:"base_value_factor"`
	TargetValueFactor float64 `json:"target_value_factor"`
	Change            float64 `json:"change"`
}

// ValueFactorAnalysis compares value factors between two anchor dates
type ValueFactorAnalysis struct {
	BaseRecordDate   string                 `json:"base_record_date"`
	TargetRecordDate string                 `json:"target_record_date"`
	Summary          ValueFactorSummary     `json:"summary"`
	ByCountry        []ValueFactorDimension `json:"by_country"`
	ByUniversity     []ValueFactorDimension `json:"by_university"`
	TopGainers       []ValueFactorChange    `json:"top_gainers"`
	TopDecliners     []ValueFactorChange    `json:"top_decliners"`
	Distribution     Distribution           `json:"distribution"`
}

// CombinedMetricSummary summarizes the changes of one combined performance figure
type CombinedMetricSummary struct {
	Metric         string  `json:"metric"`
	DisplayName    string  `json:"display_name"`
	AvgTarget      float64 `json:"avg_target"`
	AvgBase        float64 `json:"avg_base"`
	AvgChange      float64 `json:"avg_change"`
	MedianChange   float64 `json:"median_change"`
	MaxIncrease    float64 `json:"max_increase"`
	MaxDecrease    float64 `json:"max_decrease"`
	IncreasedUsers int     `json:"increased_users"`
	DecreasedUsers int     `json:"decreased_users"`
	UnchangedUsers int     `json:"unchanged_users"`
}

// CombinedAnalysis compares combined performance between two anchor dates
type CombinedAnalysis struct {
	BaseRecordDate   string                  `json:"base_record_date"`
	TargetRecordDate string                  `json:"target_record_date"`
	Summary          CohortMembership        `json:"summary"`
	MetricSummaries  []CombinedMetricSummary `json:"metric_summaries"`
	Distributions    map[string]Distribution `json:"distributions"`
}

// CombinedUserChange is one user's combined performance on the base and target dates
type CombinedUserChange struct {
	User            string  `json:"user"`
	Country         *string `json:"country"`
	GeniusLevel     *string `json:"genius_level"`
	BaseAlpha       float64 `json:"base_alpha"`
	TargetAlpha     float64 `json:"target_alpha"`
	AlphaChange     float64 `json:"alpha_change"`
	BasePowerPool   float64 `json:"base_power_pool"`
	TargetPowerPool float64 `json:"target_power_pool"`
	PowerPoolChange float64 `json:"power_pool_change"`
	BaseSelected    float64 `json:"base_selected"`
	TargetSelected  float64 `json:"target_selected"`
	SelectedChange  float64 `json:"selected_change"`
}

// ValueFactorTrendPoint is a user's value factor on one event calendar date
type ValueFactorTrendPoint struct {
	UpdateDate  string   `json:"update_date"`
	DateRange   string   `json:"date_range"`
	ValueFactor *float64 `json:"value_factor"`
}

// CombinedTrendPoint is a user's combined performance on one event calendar date
type CombinedTrendPoint struct {
	UpdateDate                   string   `json:"update_date"`
	DateRange                    string   `json:"date_range"`
	CombinedAlphaPerformance     *float64 `json:"combined_alpha_performance"`
	CombinedPowerPoolPerformance *float64 `json:"combined_power_pool_alpha_performance"`
	CombinedSelectedPerformance  *float64 `json:"combined_selected_alpha_performance"`
}

// UserMetricTrends holds a user's metrics sampled on the event calendar
type UserMetricTrends struct {
	User             string                  `json:"user"`
	ValueFactorTrend []ValueFactorTrendPoint `json:"value_factor_trend"`
	CombinedTrend    []CombinedTrendPoint    `json:"combined_trend"`
}
