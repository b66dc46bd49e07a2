package schema

import "time"

// ConsultantUser represents the leaderboard_consultant_user table,
// one snapshot per (user, record_date)
type ConsultantUser struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	RecordDate time.Time `gorm:"column:record_date;not null;type:date"`
	// User is the WQ id of the consultant
	User                          string   `gorm:"column:user;not null;type:varchar(64)"`
	Country                       *string  `gorm:"column:country;type:varchar(64)"`
	University                    *string  `gorm:"column:university;type:varchar(255)"`
	WeightFactor                  *float64 `gorm:"column:weight_factor"`
	ValueFactor                   *float64 `gorm:"column:value_factor"`
	DailyOsmosisRank              *float64 `gorm:"column:daily_osmosis_rank"`
	DataFieldsUsed                *int64   `gorm:"column:data_fields_used"`
	SubmissionsCount              *int64   `gorm:"column:submissions_count"`
	SuperAlphaSubmissionsCount    *int64   `gorm:"column:super_alpha_submissions_count"`
	MeanProdCorrelation           *float64 `gorm:"column:mean_prod_correlation"`
	MeanSelfCorrelation           *float64 `gorm:"column:mean_self_correlation"`
	SuperAlphaMeanProdCorrelation *float64 `gorm:"column:super_alpha_mean_prod_correlation"`
	SuperAlphaMeanSelfCorrelation *float64 `gorm:"column:super_alpha_mean_self_correlation"`
	DeleteFlag                    bool     `gorm:"column:delete_flag;not null;default:false"`
}

// TableName specifies the table name for the ConsultantUser model
func (ConsultantUser) TableName() string {
	return "leaderboard_consultant_user"
}
