package dto

// SummaryStatistics holds the dashboard summary cards
type SummaryStatistics struct {
	TotalUsers       int64   `json:"total_users"`
	UserChange       int64   `json:"user_change"`
	TotalAlpha       int64   `json:"total_alpha"`
	AlphaChange      int64   `json:"alpha_change"`
	TotalWeight      float64 `json:"total_weight"`
	WeightChange     float64 `json:"weight_change"`
	TotalRecords     int64   `json:"total_records"`
	LatestRecordDate *string `json:"latest_record_date"`
}

// CountryWeight is one entry of the country leaderboard
type CountryWeight struct {
	RecordDate          string   `json:"record_date"`
	Country             string   `json:"country"`
	WeightFactor        *float64 `json:"weight_factor"`
	User                *int64   `json:"user"`
	ValueFactor         *float64 `json:"value_factor"`
	SubmissionsCount    *int64   `json:"submissions_count"`
	WeightChange        *float64 `json:"weight_change"`
	WeightChangePercent *float64 `json:"weight_change_percent"`
}

// UserWeight is one entry of the user leaderboard
type UserWeight struct {
	RecordDate          string   `json:"record_date"`
	User                string   `json:"user"`
	WeightFactor        *float64 `json:"weight_factor"`
	ValueFactor         *float64 `json:"value_factor"`
	SubmissionsCount    *int64   `json:"submissions_count"`
	University          *string  `json:"university"`
	Country             *string  `json:"country"`
	WeightChange        *float64 `json:"weight_change"`
	WeightChangePercent *float64 `json:"weight_change_percent"`
}

// CountryWeightTimeSeries is the weight series of one country
type CountryWeightTimeSeries struct {
	Country string    `json:"country"`
	Dates   []string  `json:"dates"`
	Weights []float64 `json:"weights"`
}

// CountrySubmissionTimeSeries is the submission series of one country with day-over-day changes
type CountrySubmissionTimeSeries struct {
	Country                     string   `json:"country"`
	Dates                       []string `json:"dates"`
	SubmissionsCount            []int64  `json:"submissions_count"`
	SuperAlphaSubmissionsCount  []int64  `json:"super_alpha_submissions_count"`
	SubmissionsChange           []int64  `json:"submissions_change"`
	SuperAlphaSubmissionsChange []int64  `json:"super_alpha_submissions_change"`
}

// GeniusCountryTimeSeries is the day-over-day alpha count change of one country
type GeniusCountryTimeSeries struct {
	Country          string   `json:"country"`
	Dates            []string `json:"dates"`
	AlphaCountChange []int64  `json:"alpha_count_change"`
}

// GeniusWeightTimeSeries is the summed consultant weight of one (level, country) group
type GeniusWeightTimeSeries struct {
	GeniusLevel string    `json:"genius_level"`
	Country     string    `json:"country"`
	Dates       []string  `json:"dates"`
	Weights     []float64 `json:"weights"`
}

// UserWeightTimeSeries is the weight series of one user
type UserWeightTimeSeries struct {
	User    string    `json:"user"`
	Dates   []string  `json:"dates"`
	Weights []float64 `json:"weights"`
}

// UserDailyOsmosisTimeSeries is the daily osmosis rank series of one user.
// Ranks are nil on dates without a measurement.
type UserDailyOsmosisTimeSeries struct {
	User             string     `json:"user"`
	Dates            []string   `json:"dates"`
	DailyOsmosisRank []*float64 `json:"daily_osmosis_rank"`
}

// GeniusUserWeightChange is one genius user's weight change across a date range
type GeniusUserWeightChange struct {
	User                string   `json:"user"`
	GeniusLevel         *string  `json:"genius_level"`
	Country             *string  `json:"country"`
	StartWeight         float64  `json:"start_weight"`
	EndWeight           float64  `json:"end_weight"`
	WeightChange        float64  `json:"weight_change"`
	WeightChangePercent *float64 `json:"weight_change_percent"`
	Rank                int      `json:"rank"`
	Percentile          float64  `json:"percentile"`
}

// GeniusLevelWeightChange is the total weight of one genius tier and its change
type GeniusLevelWeightChange struct {
	GeniusLevel         string   `json:"genius_level"`
	TotalUsers          int      `json:"total_users"`
	TotalWeight         float64  `json:"total_weight"`
	WeightChange        float64  `json:"weight_change"`
	WeightChangePercent *float64 `json:"weight_change_percent"`
}

// ConsultantMergedRow joins a consultant snapshot with the genius snapshot of the same date
type ConsultantMergedRow struct {
	User                          string   `json:"user"`
	Country                       *string  `json:"country"`
	University                    *string  `json:"university"`
	GeniusLevel                   *string  `json:"genius_level"`
	BestLevel                     *string  `json:"best_level"`
	WeightFactor                  *float64 `json:"weight_factor"`
	ValueFactor                   *float64 `json:"value_factor"`
	DailyOsmosisRank              *float64 `json:"daily_osmosis_rank"`
	DataFieldsUsed                *int64   `json:"data_fields_used"`
	SubmissionsCount              *int64   `json:"submissions_count"`
	MeanProdCorrelation           *float64 `json:"mean_prod_correlation"`
	MeanSelfCorrelation           *float64 `json:"mean_self_correlation"`
	SuperAlphaSubmissionsCount    *int64   `json:"super_alpha_submissions_count"`
	SuperAlphaMeanProdCorrelation *float64 `json:"super_alpha_mean_prod_correlation"`
	SuperAlphaMeanSelfCorrelation *float64 `json:"super_alpha_mean_self_correlation"`
	AlphaCount                    *int64   `json:"alpha_count"`
	PyramidCount                  *int64   `json:"pyramid_count"`
	CombinedAlphaPerformance      *float64 `json:"combined_alpha_performance"`
	CombinedPowerPoolPerformance  *float64 `json:"combined_power_pool_alpha_performance"`
	CombinedSelectedPerformance   *float64 `json:"combined_selected_alpha_performance"`
	OperatorCount                 *int64   `json:"operator_count"`
	OperatorAvg                   *float64 `json:"operator_avg"`
	FieldCount                    *int64   `json:"field_count"`
	FieldAvg                      *float64 `json:"field_avg"`
	CommunityActivity             *float64 `json:"community_activity"`
	MaxSimulationStreak           *int64   `json:"max_simulation_streak"`
	// RecordCoverage counts the snapshot dates the user appears on up to the record date
	RecordCoverage int64 `json:"record_coverage"`
}

// ConsultantMergedPage is a page of merged consultant rows for one record date
type ConsultantMergedPage struct {
	RecordDate *string               `json:"record_date"`
	Total      int                   `json:"total"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalPages int                   `json:"total_pages"`
	Items      []ConsultantMergedRow `json:"items"`
}
