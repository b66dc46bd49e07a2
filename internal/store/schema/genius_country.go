package schema

import "time"

// GeniusCountry represents the leaderboard_genius_country_or_region table
type GeniusCountry struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	RecordDate time.Time `gorm:"column:record_date;not null;type:date"`
	Rank       *int64    `gorm:"column:rank"`
	Users      *int64    `gorm:"column:users"`
	AlphaCount *int64    `gorm:"column:alpha_count"`
	Country    string    `gorm:"column:country;not null;type:varchar(64)"`
	DeleteFlag bool      `gorm:"column:delete_flag;not null;default:false"`
}

// TableName specifies the table name for the GeniusCountry model
func (GeniusCountry) TableName() string {
	return "leaderboard_genius_country_or_region"
}
