package schema

import "time"

// UserFeedback represents the user_feedback table
type UserFeedback struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	UserID       uint64    `gorm:"column:user_id;not null"`
	WQID         string    `gorm:"column:wq_id;not null;type:varchar(64)"`
	Username     string    `gorm:"column:username;not null;type:varchar(128)"`
	Content      string    `gorm:"column:content;not null;type:text"`
	FeedbackType string    `gorm:"column:feedback_type;not null;type:varchar(16)"`
	Page         *string   `gorm:"column:page;type:varchar(200)"`
	Contact      *string   `gorm:"column:contact;type:varchar(200)"`
	Status       string    `gorm:"column:status;not null;default:'new';type:varchar(16)"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the UserFeedback model
func (UserFeedback) TableName() string {
	return "user_feedback"
}
