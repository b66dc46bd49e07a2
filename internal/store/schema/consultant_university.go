package schema

import "time"

// ConsultantUniversity represents the leaderboard_consultant_university table.
// Only its row count is surfaced.
type ConsultantUniversity struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	RecordDate time.Time `gorm:"column:record_date;not null;type:date"`
	University string    `gorm:"column:university;not null;type:varchar(255)"`
	DeleteFlag bool      `gorm:"column:delete_flag;not null;default:false"`
}

func (ConsultantUniversity) TableName() string {
	return "leaderboard_consultant_university"
}
