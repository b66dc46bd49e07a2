package schema

import "time"

// GeniusUser represents the leaderboard_genius_user table, the tier
// classification of one user on one record_date
type GeniusUser struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	RecordDate   time.Time `gorm:"column:record_date;not null;type:date"`
	User         string    `gorm:"column:user;not null;type:varchar(64)"`
	Rank         *int64    `gorm:"column:rank"`
	GeniusLevel  *string   `gorm:"column:genius_level;type:varchar(32)"`
	BestLevel    *string   `gorm:"column:best_level;type:varchar(32)"`
	AlphaCount   *int64    `gorm:"column:alpha_count"`
	PyramidCount *int64    `gorm:"column:pyramid_count"`
	// Combined performance figures
	CombinedAlphaPerformance          *float64 `gorm:"column:combined_alpha_performance"`
	CombinedPowerPoolAlphaPerformance *float64 `gorm:"column:combined_power_pool_alpha_performance"`
	CombinedSelectedAlphaPerformance  *float64 `gorm:"column:combined_selected_alpha_performance"`
	OperatorCount                     *int64   `gorm:"column:operator_count"`
	OperatorAvg                       *float64 `gorm:"column:operator_avg"`
	FieldCount                        *int64   `gorm:"column:field_count"`
	FieldAvg                          *float64 `gorm:"column:field_avg"`
	CommunityActivity                 *float64 `gorm:"column:community_activity"`
	MaxSimulationStreak               *int64   `gorm:"column:max_simulation_streak"`
	Country                           *string  `gorm:"column:country;type:varchar(64)"`
	DeleteFlag                        bool     `gorm:"column:delete_flag;not null;default:false"`
}

// TableName specifies the table name for the GeniusUser model
func (GeniusUser) TableName() string {
	return "leaderboard_genius_user"
}
