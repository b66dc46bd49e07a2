package schema

import "time"

// SystemUser represents the system_user table - accounts allowed to log in
type SystemUser struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	WQID       string    `gorm:"column:wq_id;not null;unique;type:varchar(64)"`
	Username   string    `gorm:"column:username;not null;type:varchar(128)"`
	Email      *string   `gorm:"column:email;type:varchar(255)"`
	IsActive   bool      `gorm:"column:is_active;not null;default:true"`
	DeleteFlag bool      `gorm:"column:delete_flag;not null;default:false"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the SystemUser model
func (SystemUser) TableName() string {
	return "system_user"
}
