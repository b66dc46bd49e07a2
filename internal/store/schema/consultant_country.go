package schema

import "time"

// ConsultantCountry represents the leaderboard_consultant_country_or_region table,
// one aggregate snapshot per (country, record_date)
type ConsultantCountry struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	RecordDate time.Time `gorm:"column:record_date;not null;type:date"`
	Country    string    `gorm:"column:country;not null;type:varchar(64)"`
	// UserCount is the number of consultants from the country on that date
	UserCount                     *int64   `gorm:"column:user"`
	WeightFactor                  *float64 `gorm:"column:weight_factor"`
	ValueFactor                   *float64 `gorm:"column:value_factor"`
	SubmissionsCount              *int64   `gorm:"column:submissions_count"`
	SuperAlphaSubmissionsCount    *int64   `gorm:"column:super_alpha_submissions_count"`
	MeanProdCorrelation           *float64 `gorm:"column:mean_prod_correlation"`
	MeanSelfCorrelation           *float64 `gorm:"column:mean_self_correlation"`
	SuperAlphaMeanProdCorrelation *float64 `gorm:"column:super_alpha_mean_prod_correlation"`
	SuperAlphaMeanSelfCorrelation *float64 `gorm:"column:super_alpha_mean_self_correlation"`
	DeleteFlag                    bool     `gorm:"column:delete_flag;not null;default:false"`
}

// TableName specifies the table name for the ConsultantCountry model
func (ConsultantCountry) TableName() string {
	return "leaderboard_consultant_country_or_region"
}
