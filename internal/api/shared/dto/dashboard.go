package dto

// CountryRanking is one country in the dashboard country ranking.
// Change fields are nil when the baseline snapshot lacks the metric.
type CountryRanking struct {
	Country                       string   `json:"country"`
	UserCount                     int64    `json:"user_count"`
	WeightFactor                  float64  `json:"weight_factor"`
	ValueFactor                   *float64 `json:"value_factor"`
	SubmissionsCount              int64    `json:"submissions_count"`
	SuperAlphaSubmissionsCount    int64    `json:"super_alpha_submissions_count"`
	TotalSubmissions              int64    `json:"total_submissions"`
	MeanProdCorrelation           *float64 `json:"mean_prod_correlation"`
	MeanSelfCorrelation           *float64 `json:"mean_self_correlation"`
	SuperAlphaMeanProdCorrelation *float64 `json:"super_alpha_mean_prod_correlation"`
	SuperAlphaMeanSelfCorrelation *float64 `json:"super_alpha_mean_self_correlation"`
	WeightChange                  *float64 `json:"weight_change"`
	ValueChange                   *float64 `json:"value_change"`
	SubmissionsChange             *int64   `json:"submissions_change"`
	SuperAlphaSubmissionsChange   *int64   `json:"super_alpha_submissions_change"`
	TotalSubmissionsChange        *int64   `json:"total_submissions_change"`
	ProdCorrChange                *float64 `json:"prod_corr_change"`
	SelfCorrChange                *float64 `json:"self_corr_change"`
}

// CountryHistory is one dated snapshot of a country
type CountryHistory struct {
	RecordDate                    string   `json:"record_date"`
	UserCount                     int64    `json:"user_count"`
	WeightFactor                  float64  `json:"weight_factor"`
	ValueFactor                   *float64 `json:"value_factor"`
	SubmissionsCount              int64    `json:"submissions_count"`
	SuperAlphaSubmissionsCount    int64    `json:"super_alpha_submissions_count"`
	TotalSubmissions              int64    `json:"total_submissions"`
	MeanProdCorrelation           *float64 `json:"mean_prod_correlation"`
	MeanSelfCorrelation           *float64 `json:"mean_self_correlation"`
	SuperAlphaMeanProdCorrelation *float64 `json:"super_alpha_mean_prod_correlation"`
	SuperAlphaMeanSelfCorrelation *float64 `json:"super_alpha_mean_self_correlation"`
}

// UniversityRanking aggregates the consultants of one university on the current date
type UniversityRanking struct {
	University       string  `json:"university"`
	UserCount        int     `json:"user_count"`
	AvgWeight        float64 `json:"avg_weight"`
	MaxWeight        float64 `json:"max_weight"`
	TotalSubmissions int64   `json:"total_submissions"`
}

// UserWeightRanking ranks a consultant by current weight
type UserWeightRanking struct {
	Rank             int      `json:"rank"`
	User             string   `json:"user"`
	WeightFactor     float64  `json:"weight_factor"`
	ValueFactor      *float64 `json:"value_factor"`
	TotalSubmissions int64    `json:"total_submissions"`
	Country          *string  `json:"country"`
	University       *string  `json:"university"`
}

// UserWeightChangeRanking ranks a consultant by weight change against the baseline
type UserWeightChangeRanking struct {
	Rank          int     `json:"rank"`
	User          string  `json:"user"`
	CurrentWeight float64 `json:"current_weight"`
	WeightChange  float64 `json:"weight_change"`
	Country       *string `json:"country"`
	University    *string `json:"university"`
}

// UserSubmissionsRanking ranks a consultant by total submissions
type UserSubmissionsRanking struct {
	Rank                  int      `json:"rank"`
	User                  string   `json:"user"`
	WeightFactor          *float64 `json:"weight_factor"`
	RegularSubmissions    int64    `json:"regular_submissions"`
	SuperAlphaSubmissions int64    `json:"super_alpha_submissions"`
	TotalSubmissions      int64    `json:"total_submissions"`
	Country               *string  `json:"country"`
	University            *string  `json:"university"`
}

// UserCorrelationRanking ranks a consultant by the mean of the selected correlation pair
type UserCorrelationRanking struct {
	Rank                  int      `json:"rank"`
	User                  string   `json:"user"`
	WeightFactor          *float64 `json:"weight_factor"`
	RegularCorrelation    *float64 `json:"regular_correlation"`
	SuperAlphaCorrelation *float64 `json:"super_alpha_correlation"`
	AvgCorrelation        float64  `json:"avg_correlation"`
	Country               *string  `json:"country"`
	University            *string  `json:"university"`
}
